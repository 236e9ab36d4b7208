package logging

import (
	"io"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// FileRotationConfig configures optional rotating file output.
type FileRotationConfig struct {
	Path       string // log file path, empty disables file output
	MaxSizeMB  int    // size before rotation (default 100)
	MaxBackups int    // rotated files to retain (default 3)
	MaxAge     int    // days to retain rotated files (default 28)
	Compress   bool   // gzip rotated files
}

// NewWithFile creates a logger that writes to stdout and, when
// configured, to a rotating file. File output never carries ANSI
// colors, so colors are disabled entirely in that mode.
func NewWithFile(module string, level Level, useColors bool, fileCfg *FileRotationConfig) (*ConsoleLogger, error) {
	if fileCfg == nil || fileCfg.Path == "" {
		return New(module, level, useColors), nil
	}

	maxSize := fileCfg.MaxSizeMB
	if maxSize == 0 {
		maxSize = 100
	}
	maxBackups := fileCfg.MaxBackups
	if maxBackups == 0 {
		maxBackups = 3
	}
	maxAge := fileCfg.MaxAge
	if maxAge == 0 {
		maxAge = 28
	}

	fileWriter := &lumberjack.Logger{
		Filename:   fileCfg.Path,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   fileCfg.Compress,
	}

	return NewWithWriter(module, level, false, io.MultiWriter(os.Stdout, fileWriter)), nil
}
