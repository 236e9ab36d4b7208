// Package logging provides the leveled, module-tagged logger used
// across the Edu2Job client.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level represents log severity.
type Level int

const (
	// LevelDebug is for diagnostic messages.
	LevelDebug Level = iota
	// LevelInfo is for informational messages.
	LevelInfo
	// LevelWarn is for warnings.
	LevelWarn
	// LevelError is for errors.
	LevelError
	// LevelFatal logs and exits the process.
	LevelFatal
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a string into a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	default:
		return LevelInfo
	}
}

// Logger is the logging interface consumed by the rest of the client.
// Args are alternating key/value pairs.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
	WithModule(module string) Logger
}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// ConsoleLogger writes formatted lines through the standard log package.
type ConsoleLogger struct {
	module    string
	level     Level
	out       *log.Logger
	useColors bool
}

// New creates a ConsoleLogger writing to stdout. Colors are applied
// only when requested and stdout is a terminal.
func New(module string, level Level, useColors bool) *ConsoleLogger {
	return &ConsoleLogger{
		module:    module,
		level:     level,
		out:       log.New(os.Stdout, "", log.LstdFlags),
		useColors: useColors && stdoutIsTTY(),
	}
}

// NewWithWriter creates a ConsoleLogger writing to an arbitrary writer.
func NewWithWriter(module string, level Level, useColors bool, w io.Writer) *ConsoleLogger {
	return &ConsoleLogger{
		module:    module,
		level:     level,
		out:       log.New(w, "", log.LstdFlags),
		useColors: useColors,
	}
}

func stdoutIsTTY() bool {
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

func (l *ConsoleLogger) format(level Level, msg string, args ...interface{}) string {
	message := msg
	if len(args) > 0 {
		var pairs []string
		for i := 0; i+1 < len(args); i += 2 {
			pairs = append(pairs, fmt.Sprintf("%v=%v", args[i], args[i+1]))
		}
		if len(pairs) > 0 {
			message = msg + " " + strings.Join(pairs, " ")
		}
	}

	modulePart := "[" + l.module + "]"
	levelPart := level.String()
	if l.useColors {
		modulePart = colorCyan + modulePart + colorReset
		levelPart = colorizeLevel(level, levelPart)
	}

	return fmt.Sprintf("%s %s: %s", modulePart, levelPart, message)
}

func colorizeLevel(level Level, text string) string {
	switch level {
	case LevelDebug:
		return colorGray + text + colorReset
	case LevelInfo:
		return colorGreen + text + colorReset
	case LevelWarn:
		return colorYellow + text + colorReset
	case LevelError:
		return colorRed + text + colorReset
	case LevelFatal:
		return colorRed + colorBold + text + colorReset
	default:
		return text
	}
}

func (l *ConsoleLogger) log(level Level, msg string, args ...interface{}) {
	if level < l.level {
		return
	}
	l.out.Println(l.format(level, msg, args...))
	if level == LevelFatal {
		os.Exit(1)
	}
}

// Debug logs a diagnostic message.
func (l *ConsoleLogger) Debug(msg string, args ...interface{}) { l.log(LevelDebug, msg, args...) }

// Info logs an informational message.
func (l *ConsoleLogger) Info(msg string, args ...interface{}) { l.log(LevelInfo, msg, args...) }

// Warn logs a warning.
func (l *ConsoleLogger) Warn(msg string, args ...interface{}) { l.log(LevelWarn, msg, args...) }

// Error logs an error.
func (l *ConsoleLogger) Error(msg string, args ...interface{}) { l.log(LevelError, msg, args...) }

// Fatal logs and exits.
func (l *ConsoleLogger) Fatal(msg string, args ...interface{}) { l.log(LevelFatal, msg, args...) }

// WithModule returns a logger with the same settings under another module tag.
func (l *ConsoleLogger) WithModule(module string) Logger {
	return &ConsoleLogger{
		module:    module,
		level:     l.level,
		out:       l.out,
		useColors: l.useColors,
	}
}

// Nop is a logger that discards everything. Handy default for tests
// and optional dependencies.
type Nop struct{}

// Debug discards the message.
func (Nop) Debug(string, ...interface{}) {}

// Info discards the message.
func (Nop) Info(string, ...interface{}) {}

// Warn discards the message.
func (Nop) Warn(string, ...interface{}) {}

// Error discards the message.
func (Nop) Error(string, ...interface{}) {}

// Fatal discards the message and does not exit.
func (Nop) Fatal(string, ...interface{}) {}

// WithModule returns the same no-op logger.
func (n Nop) WithModule(string) Logger { return n }
