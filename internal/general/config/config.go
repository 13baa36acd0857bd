package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"ride-management/internal/domain/geo"
)

// Config holds all runtime settings for both service modes.
type Config struct {
	Database DatabaseConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
	JWT      JWTConfig
	Services ServicesConfig
	Geo      GeoConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type JWTConfig struct {
	SecretKey string
	AccessTTL time.Duration
}

type ServicesConfig struct {
	APIPort int
	WebPort int
}

type GeoConfig struct {
	// Strategy is the distance-ordering strategy, fixed here once instead of
	// sniffed per query.
	Strategy geo.Strategy
}

// Load reads configuration from the environment, with .env support for local
// runs, applies defaults, and validates required fields.
func Load() (*Config, error) {
	// a missing .env is fine; real deployments set the environment directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	strategy, err := geo.ParseStrategy(getEnv("GEO_STRATEGY", ""))
	if err != nil {
		return nil, fmt.Errorf("GEO_STRATEGY: %w", err)
	}

	cfg := &Config{
		Database: DatabaseConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnvInt("POSTGRES_PORT", 5432),
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			Name:     getEnv("POSTGRES_DB", "ride_management"),
			SSLMode:  getEnv("POSTGRES_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getEnvInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET_KEY", ""),
			AccessTTL: getEnvDuration("JWT_ACCESS_TTL", 2*time.Hour),
		},
		Services: ServicesConfig{
			APIPort: getEnvInt("API_SERVICE_PORT", 3000),
			WebPort: getEnvInt("WEB_SERVICE_PORT", 3001),
		},
		Geo: GeoConfig{Strategy: strategy},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// validate checks required fields and basic ranges.
func (c *Config) validate() error {
	var problems []string

	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		problems = append(problems, "POSTGRES_PORT must be in 1..65535")
	}
	if c.Database.User == "" {
		problems = append(problems, "POSTGRES_USER is required")
	}
	if c.Database.Name == "" {
		problems = append(problems, "POSTGRES_DB is required")
	}
	if c.RabbitMQ.Port <= 0 || c.RabbitMQ.Port > 65535 {
		problems = append(problems, "RABBITMQ_PORT must be in 1..65535")
	}
	if strings.TrimSpace(c.JWT.SecretKey) == "" {
		problems = append(problems, "JWT_SECRET_KEY is required")
	}
	if c.JWT.AccessTTL <= 0 {
		problems = append(problems, "JWT_ACCESS_TTL must be positive")
	}
	if c.Services.APIPort <= 0 || c.Services.APIPort > 65535 {
		problems = append(problems, "API_SERVICE_PORT must be in 1..65535")
	}
	if c.Services.WebPort <= 0 || c.Services.WebPort > 65535 {
		problems = append(problems, "WEB_SERVICE_PORT must be in 1..65535")
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
