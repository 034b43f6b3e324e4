package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapConfig configures the zap-backed Logger.
type ZapConfig struct {
	Level        string // debug|info|warn|error
	Mode         string // development|production
	Encoding     string // console|json
	ColorEnabled bool
}

type zapLogger struct {
	sl *zap.SugaredLogger
}

// Init builds the service Logger from config. Falls back to sane
// defaults when fields are empty, so a zero ZapConfig is usable in tests.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if parsed, err := zapcore.ParseLevel(cfg.Level); err == nil {
			level = parsed
		}
	}

	var zc zap.Config
	if cfg.Mode == "production" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	if cfg.Encoding != "" {
		zc.Encoding = cfg.Encoding
	}
	if cfg.ColorEnabled && zc.Encoding == "console" {
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := zc.Build(zap.AddCallerSkip(1))
	if err != nil {
		// Config-driven build can only fail on a bad encoding name.
		l = zap.Must(zap.NewProduction(zap.AddCallerSkip(1)))
	}
	return &zapLogger{sl: l.Sugar()}
}

// with attaches request-scoped fields from ctx to the record.
func (z *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if id := RequestIDFromContext(ctx); id != "" {
		return z.sl.With("request_id", id)
	}
	return z.sl
}

func (z *zapLogger) Debug(ctx context.Context, arg ...any) { z.with(ctx).Debug(arg...) }
func (z *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	z.with(ctx).Debugf(template, arg...)
}
func (z *zapLogger) Info(ctx context.Context, arg ...any) { z.with(ctx).Info(arg...) }
func (z *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	z.with(ctx).Infof(template, arg...)
}
func (z *zapLogger) Warn(ctx context.Context, arg ...any) { z.with(ctx).Warn(arg...) }
func (z *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	z.with(ctx).Warnf(template, arg...)
}
func (z *zapLogger) Error(ctx context.Context, arg ...any) { z.with(ctx).Error(arg...) }
func (z *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	z.with(ctx).Errorf(template, arg...)
}
func (z *zapLogger) Fatal(ctx context.Context, arg ...any) { z.with(ctx).Fatal(arg...) }
func (z *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	z.with(ctx).Fatalf(template, arg...)
}
func (z *zapLogger) DPanic(ctx context.Context, arg ...any) { z.with(ctx).DPanic(arg...) }
func (z *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	z.with(ctx).DPanicf(template, arg...)
}
func (z *zapLogger) Panic(ctx context.Context, arg ...any) { z.with(ctx).Panic(arg...) }
func (z *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	z.with(ctx).Panicf(template, arg...)
}
