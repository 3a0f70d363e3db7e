package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"SnackCupboard"`
		Port int    `envconfig:"PORT" default:"3001"`
	}

	DB struct {
		Path string `envconfig:"DB_PATH" default:"data/snacks.db"`
	}

	Admin struct {
		// Bcrypt hash of the admin password. Generate with
		// htpasswd -bnBC 10 "" <password> | tr -d ':\n'
		PasswordHash  string        `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`
		JWTSecret     string        `envconfig:"JWT_SECRET" required:"true"`
		TokenDuration time.Duration `envconfig:"TOKEN_DURATION" default:"12h"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}
}

func Load() (*Config, error) {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
