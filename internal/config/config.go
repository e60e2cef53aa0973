// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Security      SecurityConfig      `yaml:"security"`
	Simulator     SimulatorConfig     `yaml:"simulator"`
	RateLimit     RateLimitConfig     `yaml:"rate_limit"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// SecurityConfig defines the anti-forgery gate settings.
type SecurityConfig struct {
	CSRFCookieName string `yaml:"csrf_cookie_name"`
	CSRFHeaderName string `yaml:"csrf_header_name"`
	SecureCookie   bool   `yaml:"secure_cookie"`
}

// SimulatorConfig defines the synthetic price range, both bounds inclusive.
type SimulatorConfig struct {
	MinPrice int `yaml:"min_price"`
	MaxPrice int `yaml:"max_price"`
}

// RateLimitConfig defines the token bucket guarding the sweep trigger.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// ScheduleConfig defines the optional background sweep. A zero interval
// keeps the service purely request-driven, which is the default.
type ScheduleConfig struct {
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// NotificationsConfig defines notification targets. With the webhook
// disabled, triggered alerts go to the structured log only.
type NotificationsConfig struct {
	Webhook WebhookConfig `yaml:"webhook"`
}

// WebhookConfig defines generic webhook settings.
type WebhookConfig struct {
	Enabled bool              `yaml:"enabled"`
	URL     string            `yaml:"url"`
	Headers map[string]string `yaml:"headers"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Run on defaults; the service has no required settings.
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parsing config YAML: %w", err)
		}
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applySecurityDefaults(&cfg.Security)
	applySimulatorDefaults(&cfg.Simulator)
	applyRateLimitDefaults(&cfg.RateLimit)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applySecurityDefaults(s *SecurityConfig) {
	if s.CSRFCookieName == "" {
		s.CSRFCookieName = "_csrf"
	}
	if s.CSRFHeaderName == "" {
		s.CSRFHeaderName = "x-csrf-token"
	}
}

func applySimulatorDefaults(s *SimulatorConfig) {
	if s.MinPrice == 0 {
		s.MinPrice = 30
	}
	if s.MaxPrice == 0 {
		s.MaxPrice = 180
	}
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 1.0
	}
	if r.Burst == 0 {
		r.Burst = 5
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Server.Port < 0 || cfg.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be in [0, 65535] (got %d)", cfg.Server.Port))
	}

	if cfg.Simulator.MinPrice <= 0 {
		errs = append(errs, fmt.Errorf(
			"simulator.min_price must be greater than 0 (got %d)",
			cfg.Simulator.MinPrice,
		))
	}
	if cfg.Simulator.MaxPrice < cfg.Simulator.MinPrice {
		errs = append(errs, fmt.Errorf(
			"simulator.max_price must be >= simulator.min_price (got %d < %d)",
			cfg.Simulator.MaxPrice, cfg.Simulator.MinPrice,
		))
	}

	if cfg.RateLimit.PerSecond < 0 {
		errs = append(errs, fmt.Errorf("rate_limit.per_second must not be negative"))
	}

	if cfg.Schedule.SweepInterval < 0 {
		errs = append(errs, fmt.Errorf("schedule.sweep_interval must not be negative"))
	}

	if cfg.Notifications.Webhook.Enabled && cfg.Notifications.Webhook.URL == "" {
		errs = append(errs, fmt.Errorf("notifications.webhook.url is required when the webhook is enabled"))
	}

	return errors.Join(errs...)
}
