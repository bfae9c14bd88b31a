// Package context carries request-scoped values of the fragment store through context.Context.
package context

import (
	"context"
	"log/slog"
)

type contextKey int

const (
	keyRequestID contextKey = iota
	keyLogger
	keyOwner
)

// HeaderXRequestID is the header a client uses to correlate its request with the store's logs.
const HeaderXRequestID = "X-Request-Id"

// WithRequestID stores the request id and a logger that carries it.
func WithRequestID(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, keyRequestID, requestID)

	return context.WithValue(ctx, keyLogger, logger.With(slog.String("request_id", requestID)))
}

// RequestID returns the id stored by WithRequestID, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)

	return id
}

// WithOwner records the authenticated owner and adds it to the request logger.
func WithOwner(ctx context.Context, ownerID string, fallback *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, keyOwner, ownerID)

	return context.WithValue(ctx, keyLogger, Logger(ctx, fallback).With(slog.String("owner", ownerID)))
}

// Owner returns the owner stored by WithOwner, or "".
func Owner(ctx context.Context) string {
	owner, _ := ctx.Value(keyOwner).(string)

	return owner
}

// Logger returns the request-scoped logger, or fallback outside a request.
func Logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok {
		return logger
	}

	return fallback
}
