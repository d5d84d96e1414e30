package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(999), "UNKNOWN"},
	}

	for _, test := range tests {
		result := test.level.String()
		if result != test.expected {
			t.Errorf("LogLevel(%d).String() = %s, expected %s", test.level, result, test.expected)
		}
	}
}

func TestLogLevel_SlogLevel(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected slog.Level
	}{
		{LevelDebug, slog.LevelDebug},
		{LevelInfo, slog.LevelInfo},
		{LevelWarn, slog.LevelWarn},
		{LevelError, slog.LevelError},
		{LogLevel(999), slog.LevelInfo}, // Default for unknown
	}

	for _, test := range tests {
		result := test.level.SlogLevel()
		if result != test.expected {
			t.Errorf("LogLevel(%d).SlogLevel() = %v, expected %v", test.level, result, test.expected)
		}
	}
}

func TestInitForCLI_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelWarn, &buf)

	Debug("Test", "debug message")
	Info("Test", "info message")
	Warn("Test", "warn message")

	output := buf.String()
	if strings.Contains(output, "debug message") {
		t.Error("debug message should be filtered at Warn level")
	}
	if strings.Contains(output, "info message") {
		t.Error("info message should be filtered at Warn level")
	}
	if !strings.Contains(output, "warn message") {
		t.Error("warn message should be logged at Warn level")
	}
}

func TestLogging_SubsystemAndError(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelDebug, &buf)

	Error("Compose", errors.New("exit status 1"), "backend invocation failed")

	output := buf.String()
	if !strings.Contains(output, "subsystem=Compose") {
		t.Errorf("expected subsystem attribute, got: %s", output)
	}
	if !strings.Contains(output, "exit status 1") {
		t.Errorf("expected error attribute, got: %s", output)
	}
}

func TestLogging_FormatArgs(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelDebug, &buf)

	Info("Setup", "configured %d of %d services", 2, 5)

	if !strings.Contains(buf.String(), "configured 2 of 5 services") {
		t.Errorf("expected formatted message, got: %s", buf.String())
	}
}
