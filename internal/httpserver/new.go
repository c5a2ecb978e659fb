package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	activityHTTP "sppd-activity/internal/activity/delivery/http"
	"sppd-activity/internal/middleware"
	"sppd-activity/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	startedAt       time.Time
	backends        Backends

	// Activity domain
	activityHandler activityHTTP.Handler
	middleware      middleware.Middleware
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	Backends        Backends

	// Activity domain
	ActivityHandler activityHTTP.Handler
	Middleware      middleware.Middleware
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		startedAt:       time.Now(),
		backends:        cfg.Backends,
		activityHandler: cfg.ActivityHandler,
		middleware:      cfg.Middleware,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.activityHandler == nil {
		return errors.New("activity handler is required")
	}
	return nil
}
