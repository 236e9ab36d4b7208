package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader is an interface for loading configuration
type Loader interface {
	Load() (*Config, error)
}

// FileLoader loads configuration from a YAML or JSON file
type FileLoader struct {
	path string
}

// NewFileLoader creates a new FileLoader
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

// Load reads and parses the configuration file.
// Supports both YAML (.yaml, .yml) and JSON (.json) formats, detected
// from the file extension. Environment variable references of the form
// ${VAR} and ${VAR:-default} are expanded before unmarshaling.
func (l *FileLoader) Load() (*Config, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigFileNotFound, l.path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	data = ExpandEnvBytes(data)

	var cfg Config
	ext := strings.ToLower(filepath.Ext(l.path))

	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s (supported: .yaml, .yml, .json)", ext)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// DefaultLoader produces the built-in defaults without reading a file.
// Used when no config path is given on the command line.
type DefaultLoader struct{}

// Load returns the default configuration.
func (DefaultLoader) Load() (*Config, error) {
	return Default(), nil
}

// applyDefaults sets default values for optional fields
func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "127.0.0.1"
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4280
	}

	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = ExpandEnv("${EDU2JOB_API_BASE:-http://127.0.0.1:8000/api}")
	}

	if cfg.API.Timeout == "" {
		cfg.API.Timeout = "30s"
	}

	if cfg.Cache.TTL == "" {
		cfg.Cache.TTL = "24h"
	}

	if cfg.Google.RedirectURL == "" {
		cfg.Google.RedirectURL = fmt.Sprintf("http://%s:%d/auth/google/callback", cfg.Server.Host, cfg.Server.Port)
	}

	if cfg.Storage.Durable.Type == "" {
		cfg.Storage.Durable.Type = "leveldb"
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}
