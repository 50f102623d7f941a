package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rental-ops/config"
	"rental-ops/internal/model"
	propertyRepo "rental-ops/internal/property/repository/postgre"
	propertyUC "rental-ops/internal/property/usecase"
	"rental-ops/internal/reservation/delivery/job"
	reservationRepo "rental-ops/internal/reservation/repository/postgre"
	reservationUC "rental-ops/internal/reservation/usecase"
	"rental-ops/pkg/gcalendar"
	"rental-ops/pkg/log"
	"rental-ops/pkg/postgres"
)

// main is the entry point for the background calendar sync worker.
//
// Pattern:
//  1. Initialize infra (same as cmd/api/main.go)
//  2. Create UseCases
//  3. Schedule the sync job
//  4. Run & graceful shutdown
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting calendar sync worker...")

	// Infrastructure
	lifetime, err := time.ParseDuration(cfg.Database.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "Invalid database.conn_max_lifetime %q: %v", cfg.Database.ConnMaxLifetime, err)
		return
	}
	db, err := postgres.Connect(postgres.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: lifetime,
		Logger:          logger,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to database: ", err)
		return
	}
	defer postgres.Close(db)

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(db, model.Tables()...); err != nil {
			logger.Error(ctx, "Failed to migrate database: ", err)
			return
		}
	}

	if cfg.GoogleCalendar.CredentialsPath == "" {
		logger.Warn(ctx, "google_calendar.credentials_path is empty, nothing to sync")
		return
	}
	calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Google Calendar: ", err)
		return
	}

	timeout, err := time.ParseDuration(cfg.Sync.Timeout)
	if err != nil {
		logger.Errorf(ctx, "Invalid sync.timeout %q: %v", cfg.Sync.Timeout, err)
		return
	}

	// UseCases
	propUC := propertyUC.New(propertyRepo.New(db, logger), logger)
	resUC := reservationUC.New(reservationRepo.New(db, logger), propUC, calendarClient, cfg.Sync.LookaheadDays, logger)

	scheduler, err := job.New(logger, resUC, job.Config{Spec: cfg.Sync.Cron, Timeout: timeout})
	if err != nil {
		logger.Error(ctx, "Failed to schedule calendar sync: ", err)
		return
	}

	// Sync once at startup so fresh deployments do not wait for the first tick.
	scheduler.RunOnce(ctx)

	scheduler.Start(ctx)
	logger.Info(context.Background(), "Calendar sync worker stopped gracefully")
}
