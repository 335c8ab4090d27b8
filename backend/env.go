package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

const (
	defaultAddr       = ":8080"
	defaultConfigPath = "engine_config.gob"
)

type serverEnv struct {
	Addr            string
	ConfigPath      string
	LogLevel        slog.Level
	ShutdownTimeout time.Duration
}

func loadServerEnv() serverEnv {
	env := serverEnv{
		Addr:       getenv("C4_ADDR", defaultAddr),
		ConfigPath: resolveConfigPath(getenv("C4_CONFIG_PATH", defaultConfigPath)),
		LogLevel:   slog.LevelInfo,
	}
	env.ShutdownTimeout = time.Duration(getenvInt("C4_SHUTDOWN_TIMEOUT_SEC", 5)) * time.Second
	if level, ok := parseLogLevel(os.Getenv("C4_LOG_LEVEL")); ok {
		env.LogLevel = level
	}
	return env
}

func parseLogLevel(raw string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	var parsed int
	if _, err := fmt.Sscanf(value, "%d", &parsed); err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
