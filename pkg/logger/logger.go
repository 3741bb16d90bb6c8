// Package logger provides the structured, levelled logger used across the
// FreshBasket backend, built on log/slog.
//
// The key extension over plain slog is WithCtx: the request logging
// middleware stores a logger pre-tagged with the request ID in the request
// context, so every log line emitted from a handler or service is
// automatically correlated:
//
//	log := logger.WithCtx(ctx)
//	log.Info("order placed", "order_id", order.OrderID, "total", total)
//	// → time=... level=INFO msg="order placed" request_id=a1b2c3d4 order_id=17 total=200
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/shashiranjanraj/freshbasket/config"
)

var L *slog.Logger

func init() {
	var handler slog.Handler

	switch config.AppEnv() {
	case "production", "prod":
		// structured JSON for log aggregators
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		// human-readable for dev
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	L = slog.New(handler)
	slog.SetDefault(L)
}

// AttachMongoSink fans the current handler out to an asynchronous MongoDB
// sink. Called once at boot when LOG_MONGO_URI is configured; returns the
// handler so the caller can Close() it on shutdown.
func AttachMongoSink(uri, db string) (*MongoHandler, error) {
	mh, err := NewMongoHandler(uri, db, "logs")
	if err != nil {
		return nil, err
	}

	L = slog.New(NewMultiHandler(L.Handler(), mh))
	slog.SetDefault(L)
	return mh, nil
}

// ctxKey is the unexported key under which a per-request logger is stored.
type ctxKey struct{}

// WithCtx returns the request-scoped *slog.Logger stored in ctx by the
// logging middleware, or the base logger when none is present.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// Inject stores a *slog.Logger (pre-tagged with request_id) into ctx.
// Called by the Logger middleware — not usually needed in application code.
func Inject(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// Debug logs at DEBUG level on the base logger.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level on the base logger.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level on the base logger.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level on the base logger.
func Error(msg string, args ...any) { L.Error(msg, args...) }
