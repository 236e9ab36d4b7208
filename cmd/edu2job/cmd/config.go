package cmd

import (
	"fmt"
	"os"

	"github.com/edu2job/edu2job/pkg/config"
	"github.com/edu2job/edu2job/pkg/logging"
)

// configResult is a loaded configuration plus how it was obtained,
// so serve can decide whether hot reload makes sense.
type configResult struct {
	Config   *config.Config
	Loader   config.Loader
	FromFile bool
	Path     string
}

// resolveConfig loads the config file when it exists and falls back
// to the built-in defaults when it does not.
func resolveConfig(path string) (*configResult, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			loader := config.NewFileLoader(path)
			cfg, err := loader.Load()
			if err != nil {
				return nil, err
			}
			return &configResult{Config: cfg, Loader: loader, FromFile: true, Path: path}, nil
		}
	}

	return &configResult{Config: config.Default(), Loader: config.DefaultLoader{}, Path: path}, nil
}

// newLogger builds the process logger from the logging section.
func newLogger(cfg *config.Config) (logging.Logger, error) {
	level := logging.ParseLevel(cfg.Logging.Level)

	var fileCfg *logging.FileRotationConfig
	if cfg.Logging.File.Path != "" {
		fileCfg = &logging.FileRotationConfig{
			Path:       cfg.Logging.File.Path,
			MaxSizeMB:  cfg.Logging.File.MaxSizeMB,
			MaxBackups: cfg.Logging.File.MaxBackups,
			MaxAge:     cfg.Logging.File.MaxAgeDays,
		}
	}

	logger, err := logging.NewWithFile("main", level, true, fileCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}
