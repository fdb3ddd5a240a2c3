// Package main is the entry point for the brigsby-demo application.
// brigsby-demo drives repeated invokers from an update loop and logs random word picks.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/tylerbonnell/brigsby/internal/config"
	"github.com/tylerbonnell/brigsby/internal/engine"
	"github.com/tylerbonnell/brigsby/internal/health"
	"github.com/tylerbonnell/brigsby/internal/invoker"
	"github.com/tylerbonnell/brigsby/internal/sampler"
	"github.com/tylerbonnell/brigsby/internal/seed"
)

// version is set at build time via ldflags.
var version = "dev"

// statsInterval is how often the stats snapshot for /stats is refreshed.
const statsInterval = time.Second

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		os.Stderr.WriteString("failed to create logger: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		_ = logger.Sync()
	}()

	seeds := seed.New(cfg.Seed)
	masterSeed, _ := seeds.Current()

	logger.Info("brigsby-demo starting",
		zap.String("version", version),
		zap.Uint64("seed", masterSeed),
		zap.Duration("tick_interval", cfg.TickInterval),
		zap.Duration("min_delay", cfg.MinDelay),
		zap.Duration("max_delay", cfg.MaxDelay),
		zap.Duration("report_interval", cfg.ReportInterval),
		zap.Int("history_size", cfg.HistorySize),
		zap.Int("health_port", cfg.HealthPort),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	healthServer := health.NewServer(cfg.HealthPort, logger)
	go func() {
		if err := healthServer.Start(ctx); err != nil {
			logger.Error("health server failed", zap.Error(err))
			cancel()
		}
	}()

	eng := engine.New(cfg, logger.Named("engine"))
	smp := sampler.New(cfg, logger.Named("sampler"), seeds.NewRand(), nil)

	publisher := invoker.NewLate(func(data engine.UpdateData, _ int) time.Duration {
		st := health.Stats{
			Ticks:      data.Tick,
			Components: eng.Components(),
			Seed:       masterSeed,
		}
		if r, ok := smp.Report(); ok {
			st.Picks = r.Picks
		}
		healthServer.PublishStats(st)
		return statsInterval
	}, invoker.WithName("stats"))

	for _, c := range []any{smp.Picker(), smp.Reporter(), publisher} {
		if err := eng.Add(c); err != nil {
			logger.Error("failed to attach component", zap.Error(err))
			return 1
		}
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		eng.Run(ctx)
	}()
	healthServer.SetReady(true)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
	case <-ctx.Done():
	}

	// Shutdown clears readiness before the engine stops.
	if err := healthServer.Shutdown(context.Background()); err != nil {
		logger.Error("health server shutdown failed", zap.Error(err))
	}

	cancel()
	<-done

	logger.Info("brigsby-demo stopped")
	return 0
}
