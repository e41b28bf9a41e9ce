package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"catalog/internal/item/repository"
	"catalog/internal/middleware"
	"catalog/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	readTimeout     time.Duration
	shutdownTimeout time.Duration

	// Item domain
	itemRepo repository.Repository
	mw       middleware.Middleware
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ReadTimeout     time.Duration
	ShutdownTimeout time.Duration

	// Item domain
	ItemRepository repository.Repository
	Middleware     middleware.Config
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		readTimeout:     cfg.ReadTimeout,
		shutdownTimeout: cfg.ShutdownTimeout,
		itemRepo:        cfg.ItemRepository,
		mw:              middleware.New(logger, cfg.Middleware),
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
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
	if srv.itemRepo == nil {
		return errors.New("item repository is required")
	}
	return nil
}
