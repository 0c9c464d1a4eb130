package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	DBDriver   string `env:"DB_DRIVER" envDefault:"mysql"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"3306"`
	DBUser     string `env:"DB_USER" envDefault:"coorduser"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"coordpassword"`
	DBName     string `env:"DB_NAME" envDefault:"coordination"`

	ServerAddr string `env:"SERVER_ADDR" envDefault:":8080"`
	GinMode    string `env:"GIN_MODE" envDefault:"debug"`

	JWTSecret string        `env:"JWT_SECRET" envDefault:"default-secret-key-change-me"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"30m"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &cfg, nil
}
