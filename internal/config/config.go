package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config represents the top-level configuration for the health bridge.
type Config struct {
	Server ServerConfig `koanf:"server"`
	Store  StoreConfig  `koanf:"store"`
	Log    LogConfig    `koanf:"log"`
}

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	Port          int    `koanf:"port"`
	Host          string `koanf:"host"`
	MaxBodySizeMB int    `koanf:"max_body_size_mb"`
	Mode          string `koanf:"mode"` // "debug" or "release"
}

// StoreConfig holds the simulated device store settings.
type StoreConfig struct {
	// Platform selects which native vocabulary the store speaks:
	// "healthkit" or "healthconnect".
	Platform   string `koanf:"platform"`
	DSN        string `koanf:"dsn"`
	SourceName string `koanf:"source_name"`
	// SeedPath optionally points at a YAML fixture applied on startup.
	SeedPath string `koanf:"seed_path"`
	// Unavailable simulates a device without a health store.
	Unavailable       bool   `koanf:"unavailable"`
	UnavailableReason string `koanf:"unavailable_reason"`
}

// LogConfig holds the logging configuration.
type LogConfig struct {
	Level string `koanf:"level"` // debug | info | warn | error
}

// Validate checks the configuration for startup-blocking mistakes.
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

	if c.Store.Platform != "healthkit" && c.Store.Platform != "healthconnect" {
		return fmt.Errorf("invalid store.platform %q (must be healthkit or healthconnect)", c.Store.Platform)
	}
	if strings.TrimSpace(c.Store.DSN) == "" {
		return fmt.Errorf("store.dsn is required")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log.level %q", c.Log.Level)
	}
	return nil
}

// Load loads the configuration from the given file path and environment
// variables, then validates it.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	defaults := map[string]interface{}{
		"server.port":              8080,
		"server.host":              "0.0.0.0",
		"server.max_body_size_mb":  1,
		"server.mode":              "release",
		"store.platform":           "healthconnect",
		"store.dsn":                "healthbridge.db",
		"store.source_name":        "",
		"store.seed_path":          "",
		"store.unavailable":        false,
		"store.unavailable_reason": "",
		"log.level":                "info",
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	// 2. Load from file
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// 3. Load from Environment Variables
	// HEALTHBRIDGE_SERVER__PORT=9090 overrides server.port
	if err := k.Load(env.Provider("HEALTHBRIDGE_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, "HEALTHBRIDGE_")), "__", ".", -1)
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
