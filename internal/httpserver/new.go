package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"somni-voice-assistant/internal/conversation"
	"somni-voice-assistant/internal/middleware"
	"somni-voice-assistant/pkg/log"
)

const defaultShutdownTimeout = 15 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	mw              middleware.Middleware

	// Conversation domain
	conversationUC conversation.UseCase
	maxUploadBytes int64

	// Synthesized audio served at audioPublicPath from audioDir.
	audioDir        string
	audioPublicPath string
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	Middleware      middleware.Middleware

	ConversationUC conversation.UseCase
	MaxUploadBytes int64

	AudioDir        string
	AudioPublicPath string
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
		shutdownTimeout: cfg.ShutdownTimeout,
		mw:              cfg.Middleware,
		conversationUC:  cfg.ConversationUC,
		maxUploadBytes:  cfg.MaxUploadBytes,
		audioDir:        cfg.AudioDir,
		audioPublicPath: cfg.AudioPublicPath,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
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
	if srv.conversationUC == nil {
		return errors.New("conversation use case is required")
	}
	return nil
}
