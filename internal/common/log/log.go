// Package log is a thin context-aware wrapper around zap. The request
// id put into the context by the HTTP middleware is attached to every
// line so one request can be traced across layers.
package log

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type requestIDKey struct{}

var logger = zap.NewNop()

// Init configures the process-wide logger. Production config for
// anything but local env, console encoder otherwise.
func Init(env, level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	if env == "local" || env == "" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}

	logger = l
	return nil
}

func InitForTest() {
	logger = zap.NewNop()
}

func Sync() {
	_ = logger.Sync()
}

// WithRequestID stores the request id used by fromContext.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

func fromContext(ctx context.Context) *zap.Logger {
	if id := GetRequestID(ctx); id != "" {
		return logger.With(zap.String("requestId", id))
	}
	return logger
}

func Err(err error) zap.Field {
	return zap.Error(err)
}

func Debug(ctx context.Context, msg string, fields ...zap.Field) {
	fromContext(ctx).Debug(msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...zap.Field) {
	fromContext(ctx).Info(msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...zap.Field) {
	fromContext(ctx).Warn(msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...zap.Field) {
	fromContext(ctx).Error(msg, fields...)
}

func Panic(ctx context.Context, msg string, fields ...zap.Field) {
	fromContext(ctx).DPanic(msg, fields...)
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	fromContext(ctx).Info(fmt.Sprintf(format, args...))
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	fromContext(ctx).Warn(fmt.Sprintf(format, args...))
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	fromContext(ctx).Error(fmt.Sprintf(format, args...))
}

func Fatalf(ctx context.Context, format string, args ...interface{}) {
	fromContext(ctx).Fatal(fmt.Sprintf(format, args...))
}
