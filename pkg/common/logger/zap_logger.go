package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ZapLogger struct {
	log *zap.SugaredLogger
}

// NewZapLogger builds a console logger on stderr. Verbose lowers the level to
// debug and adds caller information.
func NewZapLogger(verbose bool) *ZapLogger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.DisableStacktrace = true
	cfg.DisableCaller = !verbose
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := cfg.Build(zap.AddCallerSkip(2))
	if err != nil {
		logger = zap.NewNop()
	}
	return &ZapLogger{log: logger.Sugar()}
}

// NewZapLoggerFrom wraps an existing zap logger
func NewZapLoggerFrom(l *zap.Logger) *ZapLogger {
	return &ZapLogger{log: l.Sugar()}
}

func (l *ZapLogger) Info(msg string, args ...any) {
	l.logf(zapcore.InfoLevel, msg, args...)
}

func (l *ZapLogger) Warn(msg string, args ...any) {
	l.logf(zapcore.WarnLevel, msg, args...)
}

func (l *ZapLogger) Error(msg string, args ...any) {
	l.logf(zapcore.ErrorLevel, msg, args...)
}

func (l *ZapLogger) Debug(msg string, args ...any) {
	l.logf(zapcore.DebugLevel, msg, args...)
}

// logf drops messages that are empty once surrounding newlines are trimmed
func (l *ZapLogger) logf(level zapcore.Level, msg string, args ...any) {
	msg = strings.Trim(msg, "\n")
	if msg == "" {
		return
	}
	l.log.Logf(level, msg, args...)
}

// Sync flushes buffered entries
func (l *ZapLogger) Sync() error {
	return l.log.Sync()
}
