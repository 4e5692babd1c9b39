// cmd/hitscan/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/opd-ai/go-hitscan/pkg/config"
	"github.com/opd-ai/go-hitscan/pkg/engine"
	"github.com/opd-ai/go-hitscan/pkg/health"
	"github.com/opd-ai/go-hitscan/pkg/logging"
	"github.com/opd-ai/go-hitscan/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to configuration file")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	renderer := flag.String("renderer", "engo", "Renderer type: 'engo' or 'terminal'")
	fullscreen := flag.Bool("fullscreen", false, "Run in fullscreen mode (Engo only)")
	metricsAddr := flag.String("metrics-addr", "", "Address for /metrics, /health and /ready (disabled when empty)")
	logFile := flag.String("log-file", "", "Write logs to this file instead of stderr")
	seed := flag.Uint64("seed", 0, "Spawn seed (overrides config when non-zero)")
	tickRate := flag.Duration("tick", time.Second/60, "Frame interval (terminal only)")
	flag.Parse()

	ctx := logging.WithSessionID(context.Background(), "")

	logOut, closeLog, err := openLogOutput(*logFile, *renderer)
	if err != nil {
		logging.NewLogger().Error(ctx, "Failed to open log file", err, "log_file", *logFile)
		os.Exit(1)
	}
	defer closeLog()
	logger := logging.NewLoggerWithWriter(logOut, logging.ParseLevel(os.Getenv(logging.EnvLogLevel)))

	// Create default configuration file if requested
	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	gameConfig, err := loadConfig(ctx, logger, *configPath)
	if err != nil {
		logger.Error(ctx, "Failed to load configuration", err,
			"config_path", *configPath,
		)
		os.Exit(1)
	}
	if *seed != 0 {
		gameConfig.Loop.Seed = *seed
	}

	game := engine.NewGame(gameConfig, nil, nil)

	collector, err := metrics.NewCollector(nil)
	if err != nil {
		logger.Error(ctx, "Failed to register metrics", err)
		os.Exit(1)
	}
	collector.Attach(game.EventBus)
	defer collector.Detach()

	heartbeat := health.NewHeartbeat()
	observer := metrics.Observers{collector, heartbeat}

	var observability *http.Server
	if *metricsAddr != "" {
		observability = startObservabilityServer(ctx, logger, *metricsAddr, collector, heartbeat)
	}

	logger.Info(ctx, "Starting game",
		"renderer", *renderer,
		"arena_width", gameConfig.Arena.Width,
		"arena_height", gameConfig.Arena.Height,
		"spawn_target", gameConfig.Spawn.Target,
		"seed", gameConfig.Loop.Seed,
	)

	switch *renderer {
	case "terminal":
		heartbeat.SetRunning(true)
		err = runTerminal(ctx, game, logger, observer, *tickRate)
		heartbeat.SetRunning(false)
	case "engo":
		heartbeat.SetRunning(true)
		runWindow(ctx, game, logger, observer, *fullscreen)
		heartbeat.SetRunning(false)
	default:
		err = fmt.Errorf("unknown renderer %q", *renderer)
	}

	if observability != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if serr := observability.Shutdown(shutdownCtx); serr != nil {
			logger.Error(ctx, "Observability server shutdown failed", serr)
		}
		cancel()
	}

	if err != nil {
		logger.Error(ctx, "Game exited with error", err)
		closeLog()
		os.Exit(1)
	}

	stats := game.Stats()
	logger.Info(ctx, "Game finished",
		"frames", stats.Frame,
		"shots", stats.ShotsFired,
		"hits", stats.Hits,
		"kills", stats.Kills,
		"spawned", stats.Spawned,
	)
}

// loadConfig reads path if it exists, falling back to defaults, and applies
// environment overrides.
func loadConfig(ctx context.Context, logger *logging.Logger, path string) (*config.GameConfig, error) {
	var gameConfig *config.GameConfig

	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", path,
		)
		gameConfig = config.DefaultConfig()
	} else {
		gameConfig, err = config.LoadConfig(path)
		if err != nil {
			return nil, logging.WrapError(err, "loading %s", path)
		}
	}

	if err := config.ApplyEnvironmentOverrides(gameConfig); err != nil {
		return nil, logging.WrapError(err, "applying environment overrides")
	}
	return gameConfig, nil
}

// openLogOutput picks the log destination. The terminal renderer owns the
// tty, so without a log file its logs are discarded.
func openLogOutput(path, renderer string) (io.Writer, func(), error) {
	if path == "" {
		if renderer == "terminal" {
			return io.Discard, func() {}, nil
		}
		return os.Stderr, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

// startObservabilityServer serves Prometheus metrics and health probes in
// the background.
func startObservabilityServer(ctx context.Context, logger *logging.Logger, addr string, collector *metrics.Collector, heartbeat *health.Heartbeat) *http.Server {
	healthChecker := health.NewHealthChecker()
	healthChecker.AddCheck(health.NewGameLoopHealthCheck(heartbeat, 2*time.Second))
	healthChecker.AddCheck(health.NewMemoryHealthCheck(500, func() int64 {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		return int64(m.Alloc / 1024 / 1024)
	}))

	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())
	mux.HandleFunc("/health", healthChecker.LivenessHandler)
	mux.HandleFunc("/ready", healthChecker.ReadinessHandler)

	server := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info(ctx, "Starting observability server", "address", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error(ctx, "Observability server failed", err)
		}
	}()
	return server
}
