package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port           string        `env:"PORT" envDefault:"8080"`
	MetricsAddr    string        `env:"METRICS_ADDR" envDefault:":9090"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string        `env:"LOG_FORMAT" envDefault:"text"`
	AllowedOrigins string        `env:"ALLOWED_ORIGINS" envDefault:"*"`
	APIKey         string        `env:"API_KEY"`
	JWTSecret      string        `env:"JWT_SECRET"`
	EstimateDelay  time.Duration `env:"ESTIMATE_DELAY" envDefault:"0s"`
	Admin          Admin
	DB             DB
}

type Admin struct {
	Password     string        `env:"ADMIN_PASSWORD"`
	PasswordHash string        `env:"ADMIN_PASSWORD_HASH"`
	TokenTTL     time.Duration `env:"ADMIN_TOKEN_TTL" envDefault:"24h"`
}

type DB struct {
	Enabled  bool   `env:"DB_ENABLED" envDefault:"false"`
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"3306"`
	User     string `env:"DB_USER" envDefault:"unshakn"`
	Password string `env:"DB_PASSWORD" envDefault:"unshakn_pass"`
	Name     string `env:"DB_NAME" envDefault:"unshakn"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("env.Parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET environment variable must be set")
	}
	if c.Admin.Password == "" && c.Admin.PasswordHash == "" {
		return errors.New("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set")
	}
	if c.EstimateDelay < 0 {
		return errors.New("ESTIMATE_DELAY must not be negative")
	}
	return nil
}

func (c *DB) DSN() string {
	return c.User + ":" + c.Password + "@tcp(" + c.Host + ":" + c.Port + ")/" + c.Name + "?parseTime=true&charset=utf8mb4"
}
