package logger

import (
	"context"
	"log/slog"
	"testing"
)

func TestNewProducesInfoLevelLogger(t *testing.T) {
	log := New()
	if log == nil {
		t.Fatal("expected logger instance")
	}
	if !log.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatal("expected info level to be enabled")
	}
	if log.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("expected debug level to be disabled")
	}
}
