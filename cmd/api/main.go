package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/inayah-hub/DASHBOARDS/config"
	"github.com/inayah-hub/DASHBOARDS/internal/bootstrap"
	"github.com/inayah-hub/DASHBOARDS/internal/dashboard"
	"github.com/inayah-hub/DASHBOARDS/internal/logging"
	"github.com/inayah-hub/DASHBOARDS/internal/projects/service"
)

const serviceName = "kpi-dashboard"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.App.LogLevel, cfg.App.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bootstrap.SetGinMode(cfg.App.Environment)

	store, err := bootstrap.OpenStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	svc := service.NewProjectService(store.Repo, logger)

	if cfg.App.SeedOnStart {
		records := service.SeedProjects
		if cfg.App.SeedFile != "" {
			if records, err = service.ParseSeedFile(cfg.App.SeedFile); err != nil {
				return err
			}
		}
		if _, err := svc.SeedWith(ctx, records); err != nil {
			return err
		}
	}

	if cfg.App.SummarySchedule != "" {
		scheduler := dashboard.NewScheduler(svc, logger)
		if err := scheduler.Start(cfg.App.SummarySchedule); err != nil {
			return err
		}
		defer scheduler.Stop()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		CORSOrigins: cfg.Server.CORSOrigins,
		Logger:      logger,
		Projects:    svc,
		Ping:        store.Ping,
		Registry:    reg,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
