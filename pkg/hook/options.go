package hook

import "log/slog"

// DefaultPriority is used when a filter is added without Priority.
const DefaultPriority = 10

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the registry logger.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// FilterOption configures a single filter registration.
type FilterOption func(*filterConfig)

type filterConfig struct {
	priority     int
	acceptedArgs int
}

func defaultFilterConfig() filterConfig {
	return filterConfig{
		priority:     DefaultPriority,
		acceptedArgs: 1,
	}
}

// Priority sets the execution order of a filter. Lower values run first;
// filters with equal priority run in the order they were added.
// Default: 10.
func Priority(n int) FilterOption {
	return func(c *filterConfig) {
		c.priority = n
	}
}

// AcceptedArgs sets how many arguments the filter receives, counting the
// filtered value itself. A filter with AcceptedArgs(3) gets the value and
// the first two extra arguments passed to Apply.
// Default: 1.
func AcceptedArgs(n int) FilterOption {
	return func(c *filterConfig) {
		c.acceptedArgs = n
	}
}
