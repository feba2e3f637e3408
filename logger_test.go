package sll

import (
	"log/slog"
	"testing"
)

func TestConfigureLogging_LevelFromEnv(t *testing.T) {
	tests := []struct {
		env  string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"DEBUG", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	prev := slog.Default()
	defer slog.SetDefault(prev)
	for _, tc := range tests {
		t.Run(tc.env, func(t *testing.T) {
			t.Setenv("SLL_LOG_LEVEL", tc.env)
			ConfigureLogging()
			if got := LogLevel(); got != tc.want {
				t.Fatalf("level %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSetLogLevel(t *testing.T) {
	prev := LogLevel()
	defer SetLogLevel(prev)
	SetLogLevel(slog.LevelError)
	if LogLevel() != slog.LevelError {
		t.Fatalf("SetLogLevel did not take effect")
	}
}
