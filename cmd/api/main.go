package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"rental-ops/config"
	_ "rental-ops/docs" // Swagger docs
	"rental-ops/internal/httpserver"
	"rental-ops/internal/model"
	"rental-ops/internal/task/suggester"
	"rental-ops/internal/webhook"
	"rental-ops/pkg/gcalendar"
	"rental-ops/pkg/llmprovider"
	"rental-ops/pkg/log"
	"rental-ops/pkg/postgres"
)

// @title       Rental Ops API
// @description Maintenance tasks and scheduling suggestions for short-term rentals.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey ApiKeyAuth
// @in          header
// @name        X-API-Key
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Rental Ops API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
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
		Debug:           cfg.Environment.Name != string(model.EnvironmentProduction) && cfg.Logger.Level == "debug",
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
		logger.Info(ctx, "Database schema migrated")
	}

	// 4. Metrics registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// 5. Google Calendar client (optional)
	var calendarClient gcalendar.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, gErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if gErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gErr)
		} else {
			calendarClient = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. LLM provider manager (only for the llm strategy)
	var generator suggester.Generator
	if cfg.Scheduling.Strategy == config.StrategyLLM {
		providers, pErr := llmprovider.InitializeProviders(&cfg.LLM)
		if pErr != nil {
			logger.Error(ctx, "Failed to initialize LLM providers: ", pErr)
			return
		}
		managerCfg, mErr := llmprovider.NewManagerConfig(&cfg.LLM)
		if mErr != nil {
			logger.Error(ctx, "Invalid LLM manager config: ", mErr)
			return
		}
		manager := llmprovider.NewManager(providers, managerCfg, logger)
		generator = manager
		logger.Infof(ctx, "LLM providers initialized: %v", manager.Providers())
	}

	defaultLoc, err := time.LoadLocation(cfg.Scheduling.DefaultTimezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid scheduling.default_timezone %q, falling back to UTC: %v", cfg.Scheduling.DefaultTimezone, err)
		defaultLoc = time.UTC
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		DB:              db,
		Registry:        registry,
		Calendar:        calendarClient,
		LLM:             generator,
		InternalKey:     cfg.Auth.InternalKey,
		Strategy:        cfg.Scheduling.Strategy,
		DefaultLocation: defaultLoc,
		LookaheadDays:   cfg.Sync.LookaheadDays,
		WebhookEnabled:  cfg.Webhook.Enabled,
		WebhookSecurity: webhook.SecurityConfig{
			Secret:          cfg.Webhook.Secret,
			AllowedIPs:      cfg.Webhook.AllowedIPs,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
