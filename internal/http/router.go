package http

import (
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/mrlokans/vaultport/internal/config"
)

// RouterConfig contains everything needed to build the HTTP router.
type RouterConfig struct {
	Version        string
	MaxUploadBytes int64
	Logger         *charmlog.Logger
}

// NewRouterConfig derives the router settings from the application config.
func NewRouterConfig(cfg *config.Config, version string, logger *charmlog.Logger) RouterConfig {
	return RouterConfig{
		Version:        version,
		MaxUploadBytes: cfg.HTTP.MaxUploadBytes,
		Logger:         logger,
	}
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = config.DefaultMaxUploadBytes
	}
	if cfg.Logger == nil {
		cfg.Logger = charmlog.New(io.Discard)
	}

	router := gin.New()
	router.Use(RequestLogger(cfg.Logger))
	router.Use(gin.Recovery())
	router.MaxMultipartMemory = cfg.MaxUploadBytes

	healthController := NewHealthController(cfg.Version)
	router.GET("/health", healthController.Status)

	convertController := NewConvertController(cfg.MaxUploadBytes, cfg.Logger)
	api := router.Group("/api")
	{
		api.POST("/convert/:provider", convertController.Convert)
	}

	return router
}
