package log_test

import (
	"context"
	"testing"

	"rental-ops/pkg/log"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name string
		cfg  log.ZapConfig
	}{
		{name: "debug console", cfg: log.ZapConfig{Level: "debug", Mode: log.ModeDebug, Encoding: log.EncodingConsole, ColorEnabled: true}},
		{name: "production json", cfg: log.ZapConfig{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON}},
		{name: "invalid level falls back", cfg: log.ZapConfig{Level: "loud", Mode: log.ModeDebug}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := log.Init(tt.cfg)
			if l == nil {
				t.Fatal("expected logger")
			}
			ctx := context.WithValue(context.Background(), log.RequestIDKey{}, "req-1")
			l.Debugf(ctx, "debug %d", 1)
			l.Info(ctx, "info")
			l.Warnf(context.Background(), "warn %s", "x")
		})
	}
}

func TestNewNop(t *testing.T) {
	l := log.NewNop()
	l.Errorf(context.Background(), "discarded: %v", "value")
}
