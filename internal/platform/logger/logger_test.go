package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/coursedeck/coursedeck-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantDebug bool
	}{
		{"debug level", "debug", true},
		{"info level", "info", false},
		{"warn level", "warn", false},
		{"invalid level falls back to info", "loud", false},
		{"case-insensitive", "DEBUG", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := Setup(config.ServerConfig{Port: 8080, LogLevel: tt.level})
			require.NoError(t, err)
			require.NotNil(t, log)

			assert.Equal(t, tt.wantDebug, log.Enabled(context.Background(), slog.LevelDebug))
			assert.True(t, log.Enabled(context.Background(), slog.LevelError))
		})
	}
}

func TestContextLogger(t *testing.T) {
	t.Parallel()

	base := slog.Default().With("component", "test")

	t.Run("round trip", func(t *testing.T) {
		ctx := WithLogger(context.Background(), base)
		got, ok := FromContext(ctx)
		assert.True(t, ok)
		assert.Same(t, base, got)
	})

	t.Run("missing logger", func(t *testing.T) {
		_, ok := FromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("fallback to default", func(t *testing.T) {
		fallback := slog.Default().With("component", "fallback")
		got := FromContextOrDefault(context.Background(), fallback)
		assert.Same(t, fallback, got)
	})

	t.Run("context wins over default", func(t *testing.T) {
		ctx := WithLogger(context.Background(), base)
		got := FromContextOrDefault(ctx, slog.Default())
		assert.Same(t, base, got)
	})

	t.Run("nil default falls back to slog.Default", func(t *testing.T) {
		got := FromContextOrDefault(context.Background(), nil)
		assert.NotNil(t, got)
	})
}
