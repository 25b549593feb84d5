package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// resolveLogLevel resolves the log level based on environment.
// In production, debug is rejected and an empty level means info.
// In dev/test, an empty level falls back to debug.
func resolveLogLevel(appEnv string, raw string) (string, error) {
	level := strings.ToLower(strings.TrimSpace(raw))
	isProduction := appEnv == EnvProduction

	if level == "" {
		if isProduction {
			return "info", nil
		}
		return "debug", nil
	}

	if !validLogLevels[level] {
		return "", fmt.Errorf("invalid log level %q (expected debug, info, warn or error)", raw)
	}

	if isProduction && level == "debug" {
		return "", fmt.Errorf("log level %q is not allowed in production", raw)
	}

	return level, nil
}
