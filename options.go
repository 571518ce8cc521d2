package permalink

import (
	"log/slog"
	"runtime"

	"github.com/dmitrymomot/permalink/pkg/hook"
)

// Option configures Permalinks and Register.
type Option func(*options)

type options struct {
	logger      *slog.Logger
	registry    *hook.Registry
	priority    int
	concurrency int
}

func defaultOptions() *options {
	return &options{
		priority:    DefaultPriority,
		concurrency: runtime.GOMAXPROCS(0),
	}
}

// WithLogger sets the logger used by Permalinks and by a registry it creates.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRegistry makes New install the filter into an existing registry
// instead of creating one. Ignored by Register.
func WithRegistry(r *hook.Registry) Option {
	return func(o *options) {
		if r != nil {
			o.registry = r
		}
	}
}

// WithPriority sets the priority of the underscore filter.
// Defaults to 10.
func WithPriority(n int) Option {
	return func(o *options) {
		o.priority = n
	}
}

// WithConcurrency limits how many titles SanitizeAll processes at once.
// Values below 1 are ignored. Defaults to GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}
