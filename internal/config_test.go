package internal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("APPROVED_USERS", "Ann, bob,,")

	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	req.NoError(err)
	req.Equal("INFO", config.LogLevel)
	req.Equal(5*time.Second, config.ShowTime)
	req.Equal(256, config.BufferSize)
	req.Equal("ws://irc-ws.chat.twitch.tv:80", config.TwitchEndpoint)
	req.Equal([]string{"Ann", "bob"}, config.ApprovedUserList())
	req.Equal(defaultVariants, config.Variants())
	req.False(config.TwitchEnabled())
	req.False(config.ControlEnabled())
}

func TestLoadConfig_Rejects_Show_Time_Out_Of_Range(t *testing.T) {
	req := require.New(t)
	t.Setenv("SHOW_TIME", "30s")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	req.Error(err)
}

func TestConfig_Twitch_And_Control_Enabled(t *testing.T) {
	req := require.New(t)
	config := Config{
		TwitchToken: "t", TwitchUser: "bot", TwitchChannel: "stream",
		JWTSecret: "secret", OperatorPassword: "pw", TTSVariants: "m1, f2",
	}
	req.True(config.TwitchEnabled())
	req.True(config.ControlEnabled())
	req.Equal([]string{"m1", "f2"}, config.Variants())
}
