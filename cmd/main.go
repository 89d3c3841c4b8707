package main

import (
	"chat-notifier/actions"
	"chat-notifier/auth"
	"chat-notifier/contract"
	"chat-notifier/domain/event"
	"chat-notifier/internal"
	"chat-notifier/observability"
	"chat-notifier/repositories"
	"chat-notifier/runtime"
	"chat-notifier/runtime/workers"
	"chat-notifier/scripts"
	"chat-notifier/services"
	"chat-notifier/sink"
	"chat-notifier/twitch"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and blocks until a signal stops the supervised workers.
// Deferred closes run once every worker, transport included, has returned.
func run() error {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Storage (BadgerDB + Bluge)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	index, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("search index opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing Bluge index...")
		_ = index.Close()
	}()

	commandRepository := repositories.NewCommandRepository(db)
	historyRepository := repositories.NewHistoryRepository(db, index, log, config.HistoryPage)
	operatorRepository := repositories.NewOperatorRepository(db)

	// 3. Assets
	assets, err := runtime.NewAssetLoader(runtime.BuiltinAssets()).LoadAll(config.SoundsDir)
	if err != nil {
		return fmt.Errorf("assets loading failed: %w", err)
	}
	log.Info("Assets loaded", "phrases", len(assets.Phrases), "art", len(assets.Art), "sounds", len(assets.Sounds))

	// 4. Transport, the status hook reaches the orchestrator once it exists
	var orchestrator *runtime.Orchestrator
	var source contract.IChatSource
	if config.TwitchEnabled() {
		client, err := twitch.NewClient(log, twitch.Config{
			Endpoint: config.TwitchEndpoint,
			Token:    config.TwitchToken,
			User:     config.TwitchUser,
			Channel:  config.TwitchChannel,
			Backoff:  config.ReconnectBackoff,
		}, twitch.WithStatusHook(func(channel string, connected bool) {
			orchestrator.ConnectionChanged(channel, connected)
		}))
		if err != nil {
			return err
		}
		source = client
	} else {
		log.Warn("Twitch credentials missing, running without chat transport")
	}

	// 5. Supervision & Orchestration
	supervisor := workers.NewSupervisor(log).WithRestartDelay(config.RestartInterval)
	registry := runtime.NewActionRegistry()
	orchestrator = runtime.NewOrchestrator(log, supervisor, source, commandRepository, registry,
		config.BufferSize, config.SinkTimeout, config.MetricInterval)
	supervisor.WithTelemetry(orchestrator.Telemetry())

	// 6. Sinks & Actions
	audio := sink.NewAudio(log, sink.NewExecRunner(log), strings.Fields(config.PlayerCommand),
		strings.Fields(config.TTSCommand), config.Variants(), assets.Sounds)
	overlay := sink.NewOverlay(log, config.OverlayQueue, config.OverlayInterval, config.OverlayBurst,
		sink.NewConsole(os.Stdout))
	if err := overlay.SetShowTime(config.ShowTime); err != nil {
		return err
	}
	notifier := sink.NewBroadcast(overlay, sink.NewEventNotifier(orchestrator.Emit))

	builtins, err := actions.NewBuiltins(log, notifier, audio, assets)
	if err != nil {
		return err
	}
	if err := builtins.Register(registry); err != nil {
		return err
	}
	if err := orchestrator.Restore(actions.DefaultCommands(), config.ApprovedUserList()); err != nil {
		return err
	}

	host := scripts.NewHost(log, config.ScriptsDir, scripts.Bindings{
		Notifier: notifier,
		Player:   audio,
		SoundDir: config.SoundsDir,
	})
	if _, err := host.Reload(); err != nil {
		log.Warn("Some scripts could not be loaded", "error", err)
	}
	orchestrator.Add(sink.NewHistory(historyRepository), host)

	// 7. Telemetry
	counter := event.NewCounter()
	orchestrator.AddHandlers(
		event.NewDispatchHandler(log, counter),
		event.NewLatencyHandler(log, config.LatencyThreshold),
		event.NewChannelCapacityHandler(log, config.LowCapacityThreshold),
		event.NewWorkerRestartedAfterPanicHandler(log, counter),
	)
	monitoring := observability.NewMonitoringManager(log, counter, orchestrator.Queue, config.MetricInterval)
	orchestrator.AddWorkers(overlay, monitoring, workers.NewReporterWorker(log, monitoring, config.ReportInterval))

	// 8. Control server
	if config.ControlEnabled() {
		tokens := auth.NewTokens(config.JWTSecret, config.AuthTokenDuration)
		authService := services.NewAuthService(operatorRepository, tokens)
		if err := authService.EnsureOperator(config.OperatorName, config.OperatorPassword); err != nil {
			return fmt.Errorf("operator bootstrap failed: %w", err)
		}
		orchestrator.AddWorkers(internal.NewControlServer(log, config.ControlAddr, internal.ControlDeps{
			Pipeline:         orchestrator,
			Notifier:         notifier,
			Player:           audio,
			Sounds:           audio,
			SoundsDir:        config.SoundsDir,
			Scripts:          host,
			History:          historyRepository,
			Auth:             authService,
			Tokens:           tokens,
			Display:          overlay,
			Stats:            monitoring.GetLatest,
			TestNotification: builtins.TestNotification,
		}))
	} else {
		log.Warn("JWT_SECRET or OPERATOR_PASSWORD missing, control server disabled")
	}

	// 9. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 10. Run until stopped, every worker has returned afterwards
	if err := orchestrator.Start(ctx); err != nil {
		return fmt.Errorf("orchestrator failed to start: %w", err)
	}
	audio.StopAll()
	log.Info("Program stopped cleanly")
	return nil
}
