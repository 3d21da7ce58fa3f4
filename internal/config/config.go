package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Server holds environment-driven configuration for the API server
type Server struct {
	Host        string `env:"HOST" envDefault:""`
	Port        int    `env:"PORT" envDefault:"8080"`
	StorageType string `env:"STORAGE_TYPE" envDefault:"memory"`
	RedisURL    string `env:"REDIS_URL"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"cryptogram.db"`
}

// FromEnv parses server configuration from environment variables
func FromEnv() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
