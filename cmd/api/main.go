package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"querydrills/internal/config"
	"querydrills/internal/logger"
	"querydrills/internal/otel"
)

// @title Query Drills API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	log, err := logger.New(cfg.Log)
	if err != nil {
		// no logger yet
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, cfg.AppName, cfg.TracingEnabled, log)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app, err := newApp(cfg, log, reg, nil)
	if err != nil {
		log.Fatal("failed to build app", zap.Error(err))
	}

	listenErr := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", cfg.Addr()), zap.String("base_path", cfg.BasePath))
		listenErr <- app.Listen(cfg.Addr())
	}()

	select {
	case err := <-listenErr:
		if err != nil {
			log.Fatal("failed to start server", zap.Error(err))
		}
	case <-ctx.Done():
		log.Info("shutdown signal received")
	}

	timeout := time.Duration(cfg.ShutdownTimeoutSec) * time.Second
	if err := app.ShutdownWithTimeout(timeout); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		log.Error("tracer shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}
