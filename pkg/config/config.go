package config

import (
	"net/url"
	"time"

	"github.com/edu2job/edu2job/pkg/kvs"
)

// Config is the root configuration for the edu2job client.
type Config struct {
	Server  ServerConfig  `yaml:"server" json:"server"`
	API     APIConfig     `yaml:"api" json:"api"`
	Google  GoogleConfig  `yaml:"google" json:"google"`
	Storage StorageConfig `yaml:"storage" json:"storage"`
	Cache   CacheConfig   `yaml:"cache" json:"cache"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// ServerConfig configures the local web UI listener.
type ServerConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

// APIConfig configures the connection to the backend API.
type APIConfig struct {
	BaseURL string `yaml:"base_url" json:"base_url"`
	Timeout string `yaml:"timeout" json:"timeout"`
}

// GoogleConfig holds OAuth2 client credentials for Google sign-in.
// When ClientID is empty the Google login button is hidden.
type GoogleConfig struct {
	ClientID     string `yaml:"client_id" json:"client_id"`
	ClientSecret string `yaml:"client_secret" json:"client_secret"`
	RedirectURL  string `yaml:"redirect_url" json:"redirect_url"`
}

// StorageConfig selects the backing store for the durable session area.
// The ephemeral area is always in-memory and is not configurable.
type StorageConfig struct {
	Durable kvs.Config `yaml:"durable" json:"durable"`
}

// CacheConfig configures the best-effort feature cache.
type CacheConfig struct {
	TTL string `yaml:"ttl" json:"ttl"`
}

// LoggingConfig configures log output.
type LoggingConfig struct {
	Level string             `yaml:"level" json:"level"`
	File  FileRotationConfig `yaml:"file" json:"file"`
}

// FileRotationConfig configures optional rotating file output.
type FileRotationConfig struct {
	Path       string `yaml:"path" json:"path"`
	MaxSizeMB  int    `yaml:"max_size_mb" json:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" json:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days" json:"max_age_days"`
}

// Default returns a configuration with all defaults applied, suitable
// for running without a config file.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// APITimeout returns the parsed API request timeout.
// Call Validate first; invalid values fall back to 30 seconds here.
func (c *Config) APITimeout() time.Duration {
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// CacheTTL returns the parsed feature cache TTL.
func (c *Config) CacheTTL() time.Duration {
	d, err := time.ParseDuration(c.Cache.TTL)
	if err != nil || d <= 0 {
		return 24 * time.Hour
	}
	return d
}

// GoogleEnabled reports whether Google sign-in is configured.
func (c *Config) GoogleEnabled() bool {
	return c.Google.ClientID != ""
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return ErrInvalidServerPort
	}

	if c.API.BaseURL == "" {
		return ErrAPIBaseURLRequired
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidAPIBaseURL
	}

	if _, err := time.ParseDuration(c.API.Timeout); err != nil {
		return ErrInvalidAPITimeout
	}

	if _, err := time.ParseDuration(c.Cache.TTL); err != nil {
		return ErrInvalidCacheTTL
	}

	switch c.Storage.Durable.Type {
	case "", "memory", "leveldb", "redis":
	default:
		return ErrInvalidStorageType
	}

	// Google credentials come as a pair. An ID without a secret cannot
	// complete the code exchange.
	if c.Google.ClientID != "" && c.Google.ClientSecret == "" {
		return ErrGoogleSecretRequired
	}
	if c.Google.ClientID == "" && c.Google.ClientSecret != "" {
		return ErrGoogleClientIDRequired
	}

	return nil
}
