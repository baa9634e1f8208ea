package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MyuRay/ONE-FIT-HERO/internal/adapters/http/api"
	"github.com/MyuRay/ONE-FIT-HERO/internal/adapters/mirror"
	app "github.com/MyuRay/ONE-FIT-HERO/internal/app"
	"github.com/MyuRay/ONE-FIT-HERO/internal/config"
	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/model"
	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/scoring"
	"github.com/MyuRay/ONE-FIT-HERO/pkg/logger"
	"github.com/MyuRay/ONE-FIT-HERO/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout               = 10 * time.Second
	writeTimeout              = 10 * time.Second
	idleTimeout               = 60 * time.Second
	readHeaderTimeout         = 5 * time.Second
	shutdownTimeout           = 30 * time.Second
	systemMetricsInterval     = 10 * time.Second
	nanosecondsPerMillisecond = 1e6
)

func main() {
	// Disable default Go metrics collection to avoid duplicate metrics.
	// We collect our own custom system metrics instead.
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			os.Stderr.WriteString("failed to sync logging: " + err.Error() + "\n")
		}
	}()

	loggerInstance := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env).
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input).
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	opts := []app.Option{
		app.WithLogger(loggerInstance),
		app.WithInitialTokens(cfg.InitialTokens),
		app.WithReproductionRate(cfg.ReproductionRate),
		app.WithDriftEnabled(cfg.DriftEnabled),
		app.WithDriftInterval(time.Duration(cfg.DriftIntervalMS) * time.Millisecond),
		app.WithMirrorQueueSize(cfg.MirrorQueueSize),
		app.WithSeedDemoData(cfg.SeedDemoData),
		app.WithScoringOptions(
			scoring.WithCalorieTable(difficultyIntTable(cfg.CaloriesPerMinute)),
			scoring.WithDifficultyMultipliers(difficultyFloatTable(cfg.DifficultyMultipliers)),
		),
	}

	if cfg.MirrorPath != "" {
		sink, err := mirror.NewSQLiteSink(ctx, cfg.MirrorPath)
		if err != nil {
			os.Stderr.WriteString("failed to open mirror store: " + err.Error() + "\n")
			return
		}
		opts = append(opts, app.WithMirrorSink(sink))
	}

	svc := app.New(opts...)
	if err := svc.Start(ctx); err != nil {
		os.Stderr.WriteString("failed to start service: " + err.Error() + "\n")
		return
	}
	defer svc.Stop()

	// Start system metrics updater.
	go startSystemMetricsUpdater(ctx)

	// HTTP mux and routes.
	mux := http.NewServeMux()
	apiServer := api.NewServer(svc, svc, cfg.MaxLeaderboardLimit)
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		loggerInstance.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			return
		}
	}()

	// Wait for shutdown signal.
	<-ctx.Done()
	loggerInstance.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		loggerInstance.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	loggerInstance.Info(ctx, "server stopped")
}

// difficultyIntTable converts a config table keyed by difficulty name.
// Unknown keys are dropped.
func difficultyIntTable(in map[string]int) map[model.Difficulty]int {
	out := make(map[model.Difficulty]int, len(in))
	for k, v := range in {
		if d, err := model.ParseDifficulty(k); err == nil {
			out[d] = v
		}
	}
	return out
}

func difficultyFloatTable(in map[string]float64) map[model.Difficulty]float64 {
	out := make(map[model.Difficulty]float64, len(in))
	for k, v := range in {
		if d, err := model.ParseDifficulty(k); err == nil {
			out[d] = v
		}
	}
	return out
}

// startSystemMetricsUpdater starts a background goroutine that updates system metrics.
func startSystemMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(systemMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateSystemMetrics()
		}
	}
}

// updateSystemMetrics updates system-level metrics.
func updateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	metrics.UpdateSystemMemoryUsage(m.Alloc)
	metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())

	if m.NumGC > 0 {
		avgPauseMs := float64(m.PauseTotalNs) / float64(m.NumGC) / nanosecondsPerMillisecond
		metrics.RecordSystemGCPauseTime(avgPauseMs)
	}
}
