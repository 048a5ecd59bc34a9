package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	GraphQLURL   string        `envconfig:"SEED_GRAPHQL_URL" default:"http://localhost:3000/graphql" required:"true"`
	FrontendURL  string        `envconfig:"SEED_FRONTEND_URL" default:"http://localhost:3001"`
	ProbeTimeout time.Duration `envconfig:"SEED_PROBE_TIMEOUT" default:"5s"`
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"error"`
}

func New() *Config {
	return &Config{}
}

func (c *Config) LoadFromEnv() error {
	// A missing .env file is fine, the environment alone is enough
	_ = godotenv.Load()
	return envconfig.Process("", c)
}

func Load() (*Config, error) {
	cfg := New()
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}
