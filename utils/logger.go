package utils

import (
	"context"
	"runtime"

	"go.uber.org/zap"
)

type loggerFieldsKey struct{}

func init() {
	zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
}

// WithLogFields returns a context whose logger carries fields in addition to
// the ones already attached to ctx.
func WithLogFields(ctx context.Context, fields ...zap.Field) context.Context {
	if len(fields) == 0 {
		return ctx
	}
	prev, _ := ctx.Value(loggerFieldsKey{}).([]zap.Field)
	merged := make([]zap.Field, 0, len(prev)+len(fields))
	merged = append(merged, prev...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, loggerFieldsKey{}, merged)
}

func GetLogger(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return zap.L()
	}
	if fields, ok := ctx.Value(loggerFieldsKey{}).([]zap.Field); ok {
		return zap.L().With(fields...)
	}
	return zap.L()
}

func GetPanicInfo() string {
	buf := make([]byte, 16384)
	l := runtime.Stack(buf, false)
	return string(buf[:l])
}
