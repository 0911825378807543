package common

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/solo-margin/solo-tools/pkg/common/iface"
	"github.com/solo-margin/solo-tools/pkg/common/logger"
)

// WithShutdown creates a new context that will be cancelled on SIGTERM/SIGINT
func WithShutdown(ctx context.Context) context.Context {
	ctx, cancel := context.WithCancel(ctx)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		signal.Stop(sigChan)
		cancel()
		_, _ = fmt.Fprintln(os.Stderr, "caught interrupt, shutting down gracefully.")
	}()

	return ctx
}

type loggerContextKey struct{}

// WithLogger stores the logger in the context
func WithLogger(ctx context.Context, l iface.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, l)
}

// LoggerFromContext returns the logger stored by WithLogger, falling back to a
// plain stderr logger so callers never have to nil check.
func LoggerFromContext(ctx context.Context) iface.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerContextKey{}).(iface.Logger); ok && l != nil {
			return l
		}
	}
	return logger.NewLogger(false)
}
