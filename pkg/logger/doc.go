// Package logger builds the slog loggers used by the permalink host.
//
// It wraps log/slog with three additions: per-call context extractors,
// a format and level chosen from configuration, and optional Sentry error
// reporting.
//
// # Basic Usage
//
//	log, err := logger.New(logger.Config{Level: "debug", Format: "json"}, hook.LogExtractor)
//	if err != nil {
//		return err
//	}
//
//	// Records emitted while a hook runs carry its name:
//	// {"level":"ERROR","msg":"filter panicked","filter":"x","hook":"sanitize_title"}
//
// Config is tagged for environment loading (LOG_LEVEL, LOG_FORMAT,
// SENTRY_DSN, SENTRY_ENVIRONMENT, SENTRY_MIN_LEVEL).
//
// # Sentry Integration
//
// When SENTRY_DSN is set, records go to both the local handler and Sentry:
// errors create Sentry issues, and records at or above MinLevel (warn by
// default) are stored as Sentry logs. If the DSN is empty or the SDK fails to
// start, logging continues locally. Sentry sends in the background, so call
// Flush before the process exits:
//
//	defer logger.Flush(2 * time.Second)
//
// # Context Extractors
//
// A ContextExtractor returns an attribute from context, or false to skip it.
// LogHandlerDecorator runs extractors on every record, so it can wrap any
// slog.Handler:
//
//	h := logger.NewLogHandlerDecorator(slog.NewJSONHandler(os.Stderr, nil), hook.LogExtractor)
//	log := slog.New(h)
//
// NewNope returns a logger that discards everything, for tests and for
// components constructed without a logger.
package logger
