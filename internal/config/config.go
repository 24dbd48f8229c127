package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the process configuration, read from the environment. A .env file
// loaded at startup can supply any of these.
type Config struct {
	Port          string        `envconfig:"PORT" default:"5000"`
	MongoURL      string        `envconfig:"MONGO_URL" default:"mongodb://localhost:27017"`
	MongoDatabase string        `envconfig:"MONGO_DB" default:"batePapoUol"`
	SweepInterval time.Duration `envconfig:"SWEEP_INTERVAL" default:"15s"`
	IdleTimeout   time.Duration `envconfig:"IDLE_TIMEOUT" default:"10s"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.SweepInterval <= 0 || cfg.IdleTimeout <= 0 {
		return nil, fmt.Errorf("config: sweep interval and idle timeout must be positive")
	}
	return &cfg, nil
}
