package web

import (
	"log"
	"net/http"
	"time"

	"github.com/taskward/taskward/sdk/environment"
)

// ServerConfig holds web server configuration.
type ServerConfig struct {
	Port            string        `env:"PORT" default:":3000"`
	CORSOrigins     []string      `env:"CORS_ORIGINS" default:"http://localhost:3000" separator:","`
	EnableDebug     bool          `env:"ENABLE_DEBUG" default:"false"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" default:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" default:"10s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" default:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" default:"20s"`
}

func LoadServerConfig(prefix string) (ServerConfig, error) {
	var cfg ServerConfig
	if err := environment.ParseEnvTags(prefix, &cfg); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

// WebServer wraps http.Server with additional configuration
type WebServer struct {
	*http.Server
	Config ServerConfig
}

// NewWebServer creates a WebServer from the given config.
func NewWebServer(cfg ServerConfig, handler http.Handler, errorLog *log.Logger) *WebServer {
	server := &http.Server{
		Addr:         cfg.Port,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		ErrorLog:     errorLog,
	}

	return &WebServer{
		Server: server,
		Config: cfg,
	}
}
