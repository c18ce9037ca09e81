package logger

import (
	"context"
	"errors"
	"log/slog"
	"testing"
)

func TestScope(t *testing.T) {
	tests := []struct {
		name  string
		scope string
		want  string
	}{
		{"basic scope", "server", "server"},
		{"nested scope", "handlers.explore", "handlers.explore"},
		{"empty scope", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr := Scope(tt.scope)
			if attr.Key != "scope" {
				t.Errorf("Scope() key = %q, want %q", attr.Key, "scope")
			}
			if attr.Value.String() != tt.want {
				t.Errorf("Scope() value = %q, want %q", attr.Value.String(), tt.want)
			}
		})
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"simple error", errors.New("something went wrong")},
		{"nil error", nil},
		{"wrapped error", errors.Join(errors.New("outer"), errors.New("inner"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr := Error(tt.err)
			if attr.Key != "error" {
				t.Errorf("Error() key = %q, want %q", attr.Key, "error")
			}
			if got := attr.Value.Any(); got != tt.err {
				t.Errorf("Error() value = %v, want %v", got, tt.err)
			}
		})
	}
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level    string
		enabled  slog.Level
		disabled *slog.Level
	}{
		{"", slog.LevelInfo, ptr(slog.LevelDebug)},
		{"debug", slog.LevelDebug, nil},
		{"DEBUG", slog.LevelDebug, nil},
		{"dEbUg", slog.LevelDebug, nil},
		{"info", slog.LevelInfo, ptr(slog.LevelDebug)},
		{"warn", slog.LevelWarn, ptr(slog.LevelInfo)},
		{"warning", slog.LevelWarn, ptr(slog.LevelInfo)},
		{"error", slog.LevelError, ptr(slog.LevelWarn)},
		{"invalid", slog.LevelInfo, ptr(slog.LevelDebug)},
	}

	for _, tt := range tests {
		t.Run("LOG_LEVEL="+tt.level, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.level)
			t.Setenv("GO_ENV", "")

			log := NewLogger()
			if log == nil {
				t.Fatal("NewLogger() returned nil")
			}
			if !log.Enabled(context.Background(), tt.enabled) {
				t.Errorf("level %v should be enabled", tt.enabled)
			}
			if tt.disabled != nil && log.Enabled(context.Background(), *tt.disabled) {
				t.Errorf("level %v should NOT be enabled", *tt.disabled)
			}
		})
	}
}

func TestNewLogger_ProductionJSON(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("GO_ENV", "production")

	log := NewLogger()
	if _, ok := log.Handler().(*slog.JSONHandler); !ok {
		t.Errorf("handler = %T, want *slog.JSONHandler", log.Handler())
	}
	if !log.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be enabled in production")
	}
}

func TestDiscard(t *testing.T) {
	if Discard().Enabled(context.Background(), slog.LevelError) {
		t.Error("Discard() logger should not enable any level")
	}
}

func ptr(l slog.Level) *slog.Level { return &l }
