package hook

import (
	"context"
	"log/slog"
)

type hookNameKey struct{}

// WithName returns a copy of ctx carrying the name of the hook being applied.
func WithName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, hookNameKey{}, name)
}

// NameFromContext returns the hook name set by Apply, if any.
func NameFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(hookNameKey{}).(string)
	return name, ok && name != ""
}

// LogExtractor adds a "hook" attribute to log records emitted while a hook
// is running. It matches logger.ContextExtractor.
func LogExtractor(ctx context.Context) (slog.Attr, bool) {
	name, ok := NameFromContext(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return slog.String("hook", name), true
}
