package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"vetsoft/internal/platform/logger"
)

// Config se arma solo desde variables de entorno.
// DB_DSN vacío => storage en memoria (modo dev).
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	DBDSN     string `env:"DB_DSN"`
	DBMigrate bool   `env:"DB_MIGRATE" envDefault:"true"`

	LogLevel  logger.Level  `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat logger.Format `env:"LOG_FORMAT" envDefault:"text"`
	AppName   string        `env:"APP_NAME" envDefault:"vetsoft"`

	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func (c Config) LoggerOptions() logger.Options {
	return logger.Options{
		Level:  c.LogLevel,
		Format: c.LogFormat,
		App:    c.AppName,
	}
}
