package logger

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

var sentryEnabled atomic.Bool

// withSentry combines next with a Sentry handler.
// If the SDK fails to initialize, next is returned unchanged and the failure
// is logged through it.
func withSentry(next slog.Handler, cfg SentryConfig) slog.Handler {
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(next).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return next
	}
	sentryEnabled.Store(true)

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   sentryLogLevels(cfg.MinLevel),
	}.NewSentryHandler(context.Background())

	return newMultiHandler(next, sentryHandler)
}

// sentryLogLevels returns the standard levels at or above minLevel.
// Error is always included.
func sentryLogLevels(minLevel slog.Level) []slog.Level {
	levels := make([]slog.Level, 0, 4)
	for _, l := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l >= minLevel || l == slog.LevelError {
			levels = append(levels, l)
		}
	}
	return levels
}

// Flush waits up to timeout for buffered Sentry events and logs to be sent.
// Call it before the process exits. It reports false if the timeout was
// reached, and returns true at once when Sentry is not configured.
func Flush(timeout time.Duration) bool {
	if !sentryEnabled.Load() {
		return true
	}
	return sentry.Flush(timeout)
}
