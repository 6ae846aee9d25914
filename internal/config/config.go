package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENV" default:"development"`
	MongoURL    string `envconfig:"MONGO_URL" required:"true"`
	DBName      string `envconfig:"DB_NAME" default:"genmoney"`

	// JWTSecret falls back to the historical development secret when unset.
	// Deployments must override it.
	JWTSecret string `envconfig:"JWT_SECRET_KEY" default:"genmoney-secret-key-2024"`

	// CORSOrigins is the comma-separated list of allowed cross-origin URLs.
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:3000,http://127.0.0.1:3000,http://localhost:8000"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
