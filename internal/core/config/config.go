package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment overrides: SALES_SERVER__PORT=9090 overrides server.port.
const EnvPrefix = "SALES_"

// Config represents the top-level application config.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Analytics AnalyticsConfig `koanf:"analytics"`
}

type ServerConfig struct {
	Port          int    `koanf:"port"`
	Host          string `koanf:"host"`
	MaxBodySizeMB int    `koanf:"max_body_size_mb"`
	Mode          string `koanf:"mode"` // debug | release
}

type AnalyticsConfig struct {
	DefaultTopLimit int  `koanf:"default_top_limit"`
	MaxTopLimit     int  `koanf:"max_top_limit"`
	DefaultPageSize int  `koanf:"default_page_size"`
	MaxPageSize     int  `koanf:"max_page_size"`
	CacheEnabled    bool `koanf:"cache_enabled"`
}

// Addr returns the host:port the HTTP server listens on.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d (must be 1-65535)", c.Server.Port)
	}
	if strings.TrimSpace(c.Server.Host) == "" {
		return fmt.Errorf("server.host is required")
	}
	if c.Server.MaxBodySizeMB <= 0 {
		return fmt.Errorf("server.max_body_size_mb must be > 0")
	}
	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("invalid server.mode %q (must be debug or release)", c.Server.Mode)
	}

	if c.Analytics.DefaultTopLimit <= 0 {
		return fmt.Errorf("analytics.default_top_limit must be > 0")
	}
	if c.Analytics.MaxTopLimit < c.Analytics.DefaultTopLimit {
		return fmt.Errorf("analytics.max_top_limit (%d) must be >= analytics.default_top_limit (%d)",
			c.Analytics.MaxTopLimit, c.Analytics.DefaultTopLimit)
	}
	if c.Analytics.DefaultPageSize <= 0 {
		return fmt.Errorf("analytics.default_page_size must be > 0")
	}
	if c.Analytics.MaxPageSize < c.Analytics.DefaultPageSize {
		return fmt.Errorf("analytics.max_page_size (%d) must be >= analytics.default_page_size (%d)",
			c.Analytics.MaxPageSize, c.Analytics.DefaultPageSize)
	}

	return nil
}

// Load parses config from defaults, then the optional file, then env, and validates the result.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"server.port":                 5001,
		"server.host":                 "0.0.0.0",
		"server.max_body_size_mb":     10,
		"server.mode":                 "release",
		"analytics.default_top_limit": 10,
		"analytics.max_top_limit":     1000,
		"analytics.default_page_size": 100,
		"analytics.max_page_size":     1000,
		"analytics.cache_enabled":     true,
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
