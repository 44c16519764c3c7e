package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestGet(t *testing.T) {
	assert.NotNil(t, Get())
	assert.Same(t, Get(), Get())
}

func TestFromContext(t *testing.T) {
	t.Run("falls_back_to_global", func(t *testing.T) {
		assert.Same(t, Get(), FromContext(context.Background()))
	})

	t.Run("returns_scoped_logger", func(t *testing.T) {
		scoped := zap.NewNop().Sugar().With("request_id", "abc")
		ctx := NewContext(context.Background(), scoped)
		assert.Same(t, scoped, FromContext(ctx))
	})
}
