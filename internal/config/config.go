// Package config reads the environment of both binaries. A .env file in the
// working directory is loaded first when present; variables already set in
// the process environment win.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"admin-dashboard/internal/logging"
	"admin-dashboard/internal/settings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	DefaultAPIURL  = "http://localhost:5000/api"
	DefaultTimeout = 30 * time.Second
)

var validate = validator.New()

// LoadDotEnv loads files (".env" when none given). Missing files are not
// an error.
func LoadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("LoadDotEnv: %w", err)
	}
	return nil
}

// Client configures the dashboard.
type Client struct {
	APIURL       string        `validate:"required,url"`
	Timeout      time.Duration `validate:"gt=0"`
	SettingsPath string        `validate:"required"`
	LogLevel     logging.Level
	LogFormat    logging.Format `validate:"oneof=text json"`
	// LogFile is empty when logging is disabled.
	LogFile string
}

// LoadClient reads the DASHBOARD_* variables.
func LoadClient() (Client, error) {
	cfg := Client{
		APIURL:       getEnv("DASHBOARD_API_URL", DefaultAPIURL),
		SettingsPath: getEnv("DASHBOARD_SETTINGS", settings.DefaultPath()),
		LogLevel:     logging.ParseLevel(getEnv("DASHBOARD_LOG_LEVEL", "info")),
		LogFormat:    logging.ParseFormat(getEnv("DASHBOARD_LOG_FORMAT", "text")),
		LogFile:      os.Getenv("DASHBOARD_LOG_FILE"),
	}
	timeout, err := durationEnv("DASHBOARD_TIMEOUT", DefaultTimeout)
	if err != nil {
		return Client{}, err
	}
	cfg.Timeout = timeout
	if err := cfg.Validate(); err != nil {
		return Client{}, err
	}
	return cfg, nil
}

func (c Client) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid client config: %w", err)
	}
	return nil
}

// Server configures the reference API server.
type Server struct {
	DatabaseURL   string        `validate:"required"`
	RedisAddr     string        `validate:"required"`
	RedisDB       int           `validate:"gte=0"`
	RedisPassword string        `validate:"required"`
	WorkerCount   int           `validate:"gt=0"`
	Port          string        `validate:"required,numeric"`
	StatsTTL      time.Duration `validate:"gt=0"`
	// ResetSchema rolls every migration back before applying them again.
	ResetSchema bool
	LogLevel    logging.Level
	LogFormat   logging.Format
}

// Addr is the listen address.
func (s Server) Addr() string { return ":" + s.Port }

// LoadServer reads the server variables. DATABASE_URL, REDIS_ADDR, REDIS_DB
// and REDIS_PASSWORD are mandatory.
func LoadServer() (Server, error) {
	for _, key := range []string{"DATABASE_URL", "REDIS_ADDR", "REDIS_DB", "REDIS_PASSWORD"} {
		if os.Getenv(key) == "" {
			return Server{}, fmt.Errorf("environment variable %s is not set", key)
		}
	}
	redisDB, err := strconv.Atoi(os.Getenv("REDIS_DB"))
	if err != nil {
		return Server{}, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	workers, err := strconv.Atoi(getEnv("WORKER_COUNT", "1"))
	if err != nil {
		return Server{}, fmt.Errorf("invalid WORKER_COUNT: %w", err)
	}
	ttl, err := durationEnv("STATS_TTL", time.Minute)
	if err != nil {
		return Server{}, err
	}
	cfg := Server{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisDB:       redisDB,
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		WorkerCount:   workers,
		Port:          getEnv("PORT", "5000"),
		StatsTTL:      ttl,
		ResetSchema:   os.Getenv("RESET_SCHEMA") == "true",
		LogLevel:      logging.ParseLevel(getEnv("LOG_LEVEL", "info")),
		LogFormat:     logging.ParseFormat(getEnv("LOG_FORMAT", "text")),
	}
	if err := validate.Struct(cfg); err != nil {
		return Server{}, fmt.Errorf("invalid server config: %w", err)
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func durationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
