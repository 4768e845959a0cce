package logging

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type (
	Field  = zapcore.Field
	Option = zap.Option
)

type loggerCtxKey struct{}

// Logger wraps a zap logger so call sites never import zap directly and
// field construction stays in this package.
type Logger struct {
	log *zap.Logger
}

var (
	logOnce      sync.Once
	cachedLogger *Logger
)

func production() bool {
	return os.Getenv("DSAKIT_ENV") == "production"
}

func defaultLogger() *zap.Logger {
	opts := []Option{
		zap.AddCallerSkip(1),
	}

	var logCfg zap.Config
	if production() {
		logCfg = zap.NewProductionConfig()
	} else {
		logCfg = zap.NewDevelopmentConfig()
		logCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

	logger, err := logCfg.Build(opts...)
	if err != nil {
		log.Panicf("could not create logger: %v", err)
	}

	return logger
}

// New returns the process-wide logger, building it on first use.
func New() *Logger {
	logOnce.Do(func() {
		cachedLogger = &Logger{
			log: defaultLogger(),
		}
	})

	return cachedLogger
}

// FromContext returns the logger stored in ctx, or the global one.
func FromContext(ctx context.Context) *Logger {
	if ctx == nil {
		return New()
	}

	if l, ok := ctx.Value(loggerCtxKey{}).(*Logger); ok {
		return l
	}

	return New()
}

func (l Logger) Debug(msg string, fields ...Field) {
	l.log.Debug(msg, fields...)
}

func (l Logger) Info(msg string, fields ...Field) {
	l.log.Info(msg, fields...)
}

func (l Logger) Warn(msg string, fields ...Field) {
	l.log.Warn(msg, fields...)
}

func (l Logger) Error(msg string, fields ...Field) {
	l.log.Error(msg, fields...)
}

func (l Logger) Fatal(msg string, fields ...Field) {
	l.log.Fatal(msg, fields...)
}

func (l Logger) Sync() error {
	return l.log.Sync()
}

func (l Logger) With(fields ...Field) *Logger {
	return &Logger{
		log: l.log.With(fields...),
	}
}

func (l *Logger) GetContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, l)
}
