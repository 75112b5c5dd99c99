// Package config loads server configuration from an optional YAML file
// with environment variable overrides. Every field has a workable
// default so the binary starts with nothing but DATABASE_URL and
// JWT_SECRET set.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

type ServerConfig struct {
	Addr              string        `yaml:"addr"`
	ReadHeaderTimeout Duration      `yaml:"read_header_timeout"`
	ShutdownTimeout   Duration      `yaml:"shutdown_timeout"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes"`
}

type DatabaseConfig struct {
	URL string `yaml:"url"`
}

// RateLimitConfig bounds the login endpoint.
type RateLimitConfig struct {
	LoginLimit  int           `yaml:"login_limit"`
	LoginWindow Duration      `yaml:"login_window"`
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:              ":8080",
			ReadHeaderTimeout: Duration(10 * time.Second),
			ShutdownTimeout:   Duration(5 * time.Second),
			MaxBodyBytes:      1 << 20, // 1 MiB
		},
		RateLimit: RateLimitConfig{
			LoginLimit:  5,
			LoginWindow: Duration(time.Minute),
		},
	}
}

// Load reads the YAML file at path (or $CONFIG_FILE when path is empty)
// over the defaults, then applies environment overrides. A missing file
// is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Fall through to env overrides.
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()

	if cfg.RateLimit.LoginLimit <= 0 {
		return nil, fmt.Errorf("rate_limit.login_limit must be positive, got %d", cfg.RateLimit.LoginLimit)
	}
	if cfg.Server.MaxBodyBytes <= 0 {
		return nil, fmt.Errorf("server.max_body_bytes must be positive, got %d", cfg.Server.MaxBodyBytes)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if addr := os.Getenv("SERVER_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		c.Database.URL = url
	}
	if raw := os.Getenv("LOGIN_RATE_LIMIT"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			c.RateLimit.LoginLimit = n
		}
	}
	if raw := os.Getenv("LOGIN_RATE_WINDOW"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			c.RateLimit.LoginWindow = Duration(d)
		}
	}
}
