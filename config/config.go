package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// This function will Load the ENVIORNMENT VARIABLES from .env if GO_ENV variable is not set
func LoadENV() error {
	goEnv := os.Getenv("GO_ENV")

	if goEnv == "" || goEnv == "development" {
		err := godotenv.Load()
		// running without a .env file is fine, the defaults below cover it
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	return nil
}

type EnviornmentVariable struct {
	GO_ENV    string `env:"GO_ENV" envDefault:"development"`
	PORT      int    `env:"PORT" envDefault:"8080"`
	LOG_LEVEL string `env:"LOG_LEVEL" envDefault:"info"`

	// Storage: memory | sqlite | postgres
	STORE_DRIVER string `env:"STORE_DRIVER" envDefault:"memory"`
	SQLITE_DSN   string `env:"SQLITE_DSN" envDefault:"file::memory:?cache=shared"`
	DB_USER_NAME string `env:"DB_USER_NAME"`
	DB_PASSWORD  string `env:"DB_PASSWORD"`
	DB_NAME      string `env:"DB_NAME"`
	DB_HOST      string `env:"DB_HOST" envDefault:"localhost"`
	DB_PORT      string `env:"DB_PORT" envDefault:"5432"`
	DB_SSL_MODE  string `env:"DB_SSL_MODE" envDefault:"disable"`
	SEED_TODOS   bool   `env:"SEED_TODOS" envDefault:"false"`

	// Redis Configuration (optional read-through cache)
	REDIS_URL string        `env:"REDIS_URL"`
	CACHE_TTL time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	// Cron Configuration
	CRON_ENABLED            bool   `env:"CRON_ENABLED" envDefault:"true"`
	METRICS_REPORT_SCHEDULE string `env:"METRICS_REPORT_SCHEDULE" envDefault:"0 * * * * *"`

	// HTTP hardening
	ALLOWED_ORIGINS     string        `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:3000,http://localhost:3001"`
	RATE_LIMIT_REQUESTS int           `env:"RATE_LIMIT_REQUESTS" envDefault:"100"`
	RATE_LIMIT_WINDOW   time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
}

func Get() (*EnviornmentVariable, error) {
	envVariables, err := env.ParseAs[EnviornmentVariable]()
	if err != nil {
		return nil, err
	}

	return &envVariables, nil
}

// IsProduction reports whether the service runs with GO_ENV=production
func (e *EnviornmentVariable) IsProduction() bool {
	return e.GO_ENV == "production"
}
