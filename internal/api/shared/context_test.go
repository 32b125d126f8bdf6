package shared

import (
	"context"
	"testing"

	"github.com/coursedeck/coursedeck-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentUser(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		user, err := domain.NewUser("Joe Smith", "joe@smith.com", "joepassword")
		require.NoError(t, err)

		ctx := WithCurrentUser(context.Background(), user)
		got, ok := CurrentUser(ctx)
		assert.True(t, ok)
		assert.Same(t, user, got)
	})

	t.Run("absent user", func(t *testing.T) {
		got, ok := CurrentUser(context.Background())
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("nil user reads as absent", func(t *testing.T) {
		ctx := WithCurrentUser(context.Background(), nil)
		_, ok := CurrentUser(ctx)
		assert.False(t, ok)
	})
}

func TestTraceID(t *testing.T) {
	t.Parallel()

	t.Run("set and get", func(t *testing.T) {
		ctx := SetTraceID(context.Background())
		traceID := GetTraceID(ctx)
		assert.Len(t, traceID, TraceIDLength*2)
	})

	t.Run("missing trace ID is empty", func(t *testing.T) {
		assert.Equal(t, "", GetTraceID(context.Background()))
	})

	t.Run("IDs are unique", func(t *testing.T) {
		first := GetTraceID(SetTraceID(context.Background()))
		second := GetTraceID(SetTraceID(context.Background()))
		assert.NotEqual(t, first, second)
	})
}
