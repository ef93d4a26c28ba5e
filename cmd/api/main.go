package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "crpms_ledger/docs"
	"crpms_ledger/internal/adapter/http/routes"
	"crpms_ledger/internal/infrastructure/config"
	"crpms_ledger/internal/infrastructure/logger"
	"crpms_ledger/internal/infrastructure/scheduler"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	log "github.com/sirupsen/logrus"
)

// @title           Car Repair Payment Ledger API
// @version         1.0
// @description     Service records, counter payments and reports for a car repair workshop.

// @host localhost:8080

// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Setup(cfg); err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := routes.NewDependencies(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to wire dependencies: %v", err)
	}

	var jobs *scheduler.Scheduler
	if cfg.ReportCron != "" {
		jobs, err = scheduler.New(cfg.ReportCron, cfg.ReportLocation, deps.Reports, cfg.StoreTimeout)
		if err != nil {
			log.Fatalf("Failed to schedule jobs: %v", err)
		}
		jobs.Start()
	}

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           routes.NewRouter(cfg, deps),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.WithFields(log.Fields{"addr": server.Addr, "store": cfg.StoreDriver}).Info("[main] listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("[main] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if jobs != nil {
		jobs.Stop(shutdownCtx)
	}
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("[main] graceful shutdown failed")
	}
}
