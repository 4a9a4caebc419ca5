// Package config provides configuration management via viper.
// Values come from an optional config file plus ROOFQUOTE_* environment
// variables; everything has a workable default so the server boots bare.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"roofquote/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Server contains HTTP server settings
	Server ServerConfig `json:"server" mapstructure:"server"`

	// Catalog contains pricing catalog settings
	Catalog CatalogConfig `json:"catalog" mapstructure:"catalog"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr" mapstructure:"addr"`

	// AllowedOrigins are CORS origins; "*" by default, matching the
	// original deployment which served a separate front-end
	AllowedOrigins []string `json:"allowed_origins" mapstructure:"allowed_origins"`
}

// CatalogConfig contains pricing catalog settings
type CatalogConfig struct {
	// Dir is the directory holding catalog override JSON files.
	// Empty means the built-in catalog only.
	Dir string `json:"dir" mapstructure:"dir"`

	// Watch enables hot reload of the catalog directory
	Watch bool `json:"watch" mapstructure:"watch"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:           ":3001",
			AllowedOrigins: []string{"*"},
		},
		Catalog: CatalogConfig{
			Dir:   "",
			Watch: false,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load reads configuration from the given file (optional) and environment.
// Environment variables use the ROOFQUOTE_ prefix with underscores, e.g.
// ROOFQUOTE_SERVER_ADDR, ROOFQUOTE_CATALOG_DIR.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", ":3001")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("catalog.dir", "")
	v.SetDefault("catalog.watch", false)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")

	v.SetEnvPrefix("roofquote")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(cfg *Config) {
	globalConfig = cfg
}
