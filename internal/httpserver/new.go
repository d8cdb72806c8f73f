package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"movi-ops-console/config"
	"movi-ops-console/pkg/log"
	"movi-ops-console/pkg/speech"
	"movi-ops-console/pkg/transit"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// External collaborators
	transit transit.ITransit
	speech  speech.ISpeech

	// Domain configuration
	assistantCfg config.AssistantConfig
	opsCfg       config.OpsConfig
	rateLimitCfg config.RateLimitConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// External collaborators. Speech may be nil; the assistant runs silent.
	Transit transit.ITransit
	Speech  speech.ISpeech

	// Domain configuration
	Assistant config.AssistantConfig
	Ops       config.OpsConfig
	RateLimit config.RateLimitConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		transit:      cfg.Transit,
		speech:       cfg.Speech,
		assistantCfg: cfg.Assistant,
		opsCfg:       cfg.Ops,
		rateLimitCfg: cfg.RateLimit,
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
	if srv.transit == nil {
		return errors.New("transit client is required")
	}
	return nil
}
