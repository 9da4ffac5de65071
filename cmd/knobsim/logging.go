package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// SetupLogger sends structured logs to the configured file; the terminal
// belongs to the TUI.
func SetupLogger(config *Config) (*slog.Logger, io.Closer, error) {
	logLevel := slog.LevelInfo
	if config.LogLevel == "debug" {
		logLevel = slog.LevelDebug
	}

	f, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	handler := slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level: logLevel,
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger, f, nil
}
