package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/findash/findash/internal/clients/marketindex"
	"github.com/findash/findash/internal/config"
	"github.com/findash/findash/internal/modules/networth"
	"github.com/findash/findash/internal/modules/portfolio"
	"github.com/findash/findash/internal/modules/projections"
	"github.com/findash/findash/internal/modules/spending"
	"github.com/findash/findash/internal/scheduler"
	"github.com/findash/findash/internal/server"
	"github.com/findash/findash/internal/store"
	"github.com/findash/findash/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New(logger.Config{Level: "info"})
		fallback.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().Str("data_dir", cfg.DataDir).Msg("Starting findash")

	// Load datasets
	st := store.New(cfg.DataDir, log)
	if err := st.Reload(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load datasets")
	}

	// Build services
	thresholds := spending.Thresholds{
		Warning: cfg.BudgetWarnPct,
		Danger:  cfg.BudgetDangerPct,
	}
	spendingSvc := spending.NewService(st, thresholds, log)
	networthSvc := networth.NewService(st, log)
	projectionsSvc := projections.NewService(st, log)

	indexClient := marketindex.NewClient(log)
	portfolioSvc := portfolio.NewService(st, indexClient, cfg.IndexSymbol, log)

	// System handlers
	systemHandlers := server.NewSystemHandlers(log, st)

	// Scheduler and reload job
	sched := scheduler.New(log)
	reloadJob := scheduler.NewReloadJob(log, st)
	if cfg.ReloadSchedule != "" && cfg.ReloadSchedule != "off" {
		if err := sched.AddJob(cfg.ReloadSchedule, reloadJob); err != nil {
			log.Fatal().Err(err).Str("schedule", cfg.ReloadSchedule).Msg("Failed to register reload job")
		}
		sched.Start()
		defer sched.Stop()
	}
	systemHandlers.SetReloadJob(sched, reloadJob)

	// Initialize HTTP server
	srv := server.New(server.Config{
		Port:        cfg.Port,
		Log:         log,
		DevMode:     cfg.DevMode,
		Spending:    spending.NewHandler(spendingSvc, log),
		NetWorth:    networth.NewHandler(networthSvc, log),
		Projections: projections.NewHandler(projectionsSvc, log),
		Portfolio:   portfolio.NewHandler(portfolioSvc, log),
		System:      systemHandlers,
	})

	// Start server in goroutine
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
