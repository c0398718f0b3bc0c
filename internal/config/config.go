package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const DefaultEndpoint = "http://localhost:3000/todos"

type Config struct {
	Endpoint string
	// Timeout bounds a single fetch; zero means no timeout.
	Timeout  time.Duration
	Theme    string
	LogFile  string
	LogLevel string
}

// Load reads an optional .env file from the working directory, then the
// environment. It does not validate: callers merge flag overrides first
// and then call Validate.
func Load() (*Config, error) {
	// A missing .env is fine; the environment alone is enough.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logrus.WithError(err).Warn("could not load .env file, using environment variables")
	}

	timeout, err := getEnvAsDuration("TODO_TIMEOUT", 0)
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		Endpoint: getEnv("TODO_ENDPOINT", DefaultEndpoint),
		Timeout:  timeout,
		Theme:    getEnv("TODO_THEME", "classic"),
		LogFile:  getEnv("TODO_LOG_FILE", ""),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Endpoint) == "" {
		return fmt.Errorf("TODO_ENDPOINT is required")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("TODO_TIMEOUT must not be negative, got %s", c.Timeout)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	v := getEnv(key, "")
	if v == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
