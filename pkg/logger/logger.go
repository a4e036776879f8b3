package logger

import (
	"context"
	"os"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/instill-ai/knowledge-backend/config"
)

var once sync.Once
var core zapcore.Core

// GetZapLogger returns a zap logger writing info (and debug, in debug mode)
// entries to stdout and warnings and errors to stderr. Every entry is also
// recorded as an event on the span carried by ctx, if any.
func GetZapLogger(ctx context.Context) (*zap.Logger, error) {
	once.Do(func() {
		core = newCore(config.Config.Server.Debug)
	})

	return zap.New(core).WithOptions(
		zap.Hooks(spanHook(ctx)),
		zap.AddCaller(),
	), nil
}

func newCore(debug bool) zapcore.Core {
	encoderConfig := zap.NewProductionEncoderConfig()
	if debug {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	low := zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		if debug && level == zapcore.DebugLevel {
			return true
		}
		return level == zapcore.InfoLevel
	})
	high := zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		return level >= zapcore.WarnLevel
	})

	return zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), low),
		zapcore.NewCore(encoder.Clone(), zapcore.Lock(os.Stderr), high),
	)
}

func spanHook(ctx context.Context) func(zapcore.Entry) error {
	return func(entry zapcore.Entry) error {
		span := trace.SpanFromContext(ctx)
		if !span.IsRecording() {
			return nil
		}

		span.AddEvent("log", trace.WithAttributes(
			attribute.String("log.severity", entry.Level.String()),
			attribute.String("log.message", entry.Message),
		))

		if entry.Level >= zap.ErrorLevel {
			span.SetStatus(codes.Error, entry.Message)
		}

		return nil
	}
}
