package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"fatal", LevelFatal},
		{"DEBUG", LevelDebug},
		{"", LevelInfo},
		{"nonsense", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLevelString(t *testing.T) {
	if LevelWarn.String() != "WARN" {
		t.Errorf("LevelWarn.String() = %s", LevelWarn.String())
	}
	if Level(99).String() != "UNKNOWN" {
		t.Errorf("Level(99).String() = %s", Level(99).String())
	}
}

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter("test", LevelWarn, false, &buf)

	logger.Debug("hidden debug")
	logger.Info("hidden info")
	logger.Warn("visible warning")
	logger.Error("visible error")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("output contains filtered messages: %s", output)
	}
	if !strings.Contains(output, "visible warning") || !strings.Contains(output, "visible error") {
		t.Errorf("output missing expected messages: %s", output)
	}
}

func TestConsoleLogger_KeyValuePairs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter("auth", LevelDebug, false, &buf)

	logger.Info("login ok", "email", "a@b.com", "remember", true)

	output := buf.String()
	for _, want := range []string{"[auth]", "INFO", "login ok", "email=a@b.com", "remember=true"} {
		if !strings.Contains(output, want) {
			t.Errorf("output %q missing %q", output, want)
		}
	}
}

func TestConsoleLogger_WithModule(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter("main", LevelDebug, false, &buf)

	logger.WithModule("session").Info("hydrated")

	if !strings.Contains(buf.String(), "[session]") {
		t.Errorf("output %q missing module tag", buf.String())
	}
}

func TestNopLogger(t *testing.T) {
	var logger Logger = Nop{}
	logger.Info("goes nowhere")
	logger.WithModule("x").Error("also nowhere")
}
