package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// ServerConfig holds process-level settings for the HTTP server and logger.
type ServerConfig struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"text"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LoadServer parses server settings from environ, a name to value map such as
// env.ToMap(os.Environ()).
func LoadServer(environ map[string]string) (ServerConfig, error) {
	var cfg ServerConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return ServerConfig{}, fmt.Errorf("parsing server settings: %w", err)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return ServerConfig{}, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}
	return cfg, nil
}

// LoadServerFromOS parses server settings from the process environment.
func LoadServerFromOS() (ServerConfig, error) {
	return LoadServer(env.ToMap(os.Environ()))
}

// Addr is the listen address for Port.
func (c ServerConfig) Addr() string {
	return ":" + c.Port
}
