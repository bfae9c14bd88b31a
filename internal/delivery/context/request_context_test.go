package context

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_FallsBackOutsideRequest(t *testing.T) {
	fallback := slog.New(slog.DiscardHandler)

	assert.Same(t, fallback, Logger(context.Background(), fallback))
	assert.Empty(t, RequestID(context.Background()))
	assert.Empty(t, Owner(context.Background()))
}

func TestWithOwner_ExtendsRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithRequestID(context.Background(), "req-1", base)
	ctx = WithOwner(ctx, "subject-alice", base)
	Logger(ctx, base).Info("listed")

	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Equal(t, "subject-alice", Owner(ctx))
	assert.Contains(t, buf.String(), "request_id=req-1")
	assert.Contains(t, buf.String(), "owner=subject-alice")
}
