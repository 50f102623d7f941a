package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"rental-ops/internal/task/suggester"
	"rental-ops/internal/webhook"
	"rental-ops/pkg/gcalendar"
	"rental-ops/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Infrastructure
	db       *gorm.DB
	registry *prometheus.Registry

	// Integrations (optional)
	calendar gcalendar.Calendar
	llm      suggester.Generator

	// Domain settings
	internalKey     string
	strategy        string
	defaultLocation *time.Location
	lookaheadDays   int
	webhookEnabled  bool
	webhookSecurity webhook.SecurityConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB       *gorm.DB
	Registry *prometheus.Registry

	// Calendar enables reservation sync and booking events. May be nil.
	Calendar gcalendar.Calendar
	// LLM is required only when Strategy is "llm".
	LLM suggester.Generator

	InternalKey     string
	Strategy        string
	DefaultLocation *time.Location
	LookaheadDays   int
	WebhookEnabled  bool
	WebhookSecurity webhook.SecurityConfig
}

// New creates a new HTTPServer instance with every route mounted.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		db:              cfg.DB,
		registry:        cfg.Registry,
		calendar:        cfg.Calendar,
		llm:             cfg.LLM,
		internalKey:     cfg.InternalKey,
		strategy:        cfg.Strategy,
		defaultLocation: cfg.DefaultLocation,
		lookaheadDays:   cfg.LookaheadDays,
		webhookEnabled:  cfg.WebhookEnabled,
		webhookSecurity: cfg.WebhookSecurity,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if srv.registry == nil {
		srv.registry = prometheus.NewRegistry()
	}
	if srv.defaultLocation == nil {
		srv.defaultLocation = time.UTC
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}
	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
