package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel string `env:"LOG_LEVEL,default=INFO" validate:"required"`

	TwitchToken      string        `env:"TWITCH_AUTH_TOKEN"`
	TwitchUser       string        `env:"TWITCH_AUTH_USER"`
	TwitchChannel    string        `env:"TWITCH_CHANNEL"`
	TwitchEndpoint   string        `env:"TWITCH_ENDPOINT,default=ws://irc-ws.chat.twitch.tv:80" validate:"required,url"`
	ReconnectBackoff time.Duration `env:"RECONNECT_BACKOFF,default=5s"`
	ApprovedUsers    string        `env:"APPROVED_USERS"`

	BadgerFilepath string `env:"BADGER_FILEPATH,default=./data/badger" validate:"required"`
	BlugeFilepath  string `env:"BLUGE_FILEPATH,default=./data/bluge" validate:"required"`
	HistoryPage    int    `env:"HISTORY_PAGE_SIZE,default=50" validate:"gte=1,lte=500"`
	SoundsDir      string `env:"SOUNDS_DIR,default=./Assets/Sounds"`
	ScriptsDir     string `env:"SCRIPTS_DIR,default=./Scripts"`
	PlayerCommand  string `env:"PLAYER_COMMAND,default=ffplay -nodisp -autoexit -loglevel quiet"`
	TTSCommand     string `env:"TTS_COMMAND,default=espeak-ng -v {voice}"`
	TTSVariants    string `env:"TTS_VARIANTS"`

	BufferSize      int           `env:"BUFFER_SIZE,default=256" validate:"gte=1"`
	SinkTimeout     time.Duration `env:"SINK_TIMEOUT,default=2s" validate:"gt=0"`
	MetricInterval  time.Duration `env:"METRIC_INTERVAL,default=5s" validate:"gt=0"`
	ReportInterval  time.Duration `env:"REPORT_INTERVAL,default=1m" validate:"gt=0"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=1s" validate:"gt=0"`

	LatencyThreshold     time.Duration `env:"LATENCY_THRESHOLD,default=500ms" validate:"gt=0"`
	LowCapacityThreshold int           `env:"LOW_CAPACITY_THRESHOLD,default=16" validate:"gte=0"`

	ShowTime        time.Duration `env:"SHOW_TIME,default=5s" validate:"gte=1s,lte=10s"`
	OverlayQueue    int           `env:"OVERLAY_QUEUE_SIZE,default=32" validate:"gte=1"`
	OverlayInterval time.Duration `env:"OVERLAY_RATE_INTERVAL,default=500ms"`
	OverlayBurst    int           `env:"OVERLAY_RATE_BURST,default=3" validate:"gte=1"`

	ControlAddr       string        `env:"CONTROL_ADDR,default=127.0.0.1:8080" validate:"required,hostname_port"`
	JWTSecret         string        `env:"JWT_SECRET"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=12h" validate:"gt=0"`
	OperatorName      string        `env:"OPERATOR_NAME,default=admin" validate:"required"`
	OperatorPassword  string        `env:"OPERATOR_PASSWORD"`
}

// LoadConfig reads an optional .env file then the environment.
func LoadConfig(files ...string) (Config, error) {
	_ = godotenv.Load(files...)

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	return config, nil
}

// TwitchEnabled is false when credentials are missing, the notifier then runs offline.
func (c Config) TwitchEnabled() bool {
	return c.TwitchToken != "" && c.TwitchUser != "" && c.TwitchChannel != ""
}

// ControlEnabled is false without a signing secret and an operator password.
func (c Config) ControlEnabled() bool {
	return c.JWTSecret != "" && c.OperatorPassword != ""
}

func (c Config) ApprovedUserList() []string {
	return SplitList(c.ApprovedUsers)
}

var defaultVariants = []string{"m1", "m3", "f1", "f2", "croak", "whisper"}

// Variants lists the voice variants drawn per user, comma separated in TTS_VARIANTS.
func (c Config) Variants() []string {
	if variants := SplitList(c.TTSVariants); len(variants) > 0 {
		return variants
	}
	return defaultVariants
}

// SplitList splits a comma separated value and drops empty items.
func SplitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
