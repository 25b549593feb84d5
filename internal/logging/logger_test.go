package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"teamflow-tracker/internal/config"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.log")

	logger, closer, err := New(config.EnvProduction, config.LogConfig{
		Level:      "info",
		File:       path,
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Info("task created")
	logger.Debug("hidden below level")
	_ = logger.Sync()
	if err := closer.Close(); err != nil {
		t.Fatalf("failed to close log file: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, `"msg":"task created"`) {
		t.Errorf("expected JSON entry in log file, got %s", content)
	}
	if strings.Contains(content, "hidden below level") {
		t.Errorf("expected debug entry to be filtered, got %s", content)
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, _, err := New(config.EnvDevelopment, config.LogConfig{Level: "loud"}); err == nil {
		t.Fatalf("expected error for invalid level")
	}
}

func TestNew_Development(t *testing.T) {
	logger, closer, err := New(config.EnvDevelopment, config.LogConfig{Level: "debug"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := closer.Close(); err != nil {
		t.Errorf("expected no-op close without a log file, got %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Errorf("expected debug level to be enabled")
	}
}
