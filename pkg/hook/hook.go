package hook

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/dmitrymomot/permalink/pkg/logger"
)

// FilterFunc transforms value. args holds at most AcceptedArgs-1 of the
// extra arguments passed to Apply, in order.
type FilterFunc func(ctx context.Context, value string, args ...string) string

// filter is a single registration under a hook.
type filter struct {
	fn           FilterFunc
	id           string
	priority     int
	acceptedArgs int
	seq          uint64
}

// Registry maps hook names to ordered filter chains.
// It is safe for concurrent use.
type Registry struct {
	filters map[string][]filter
	logger  *slog.Logger
	seq     uint64
	mu      sync.RWMutex
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		filters: make(map[string][]filter),
		logger:  logger.NewNope(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AddFilter registers fn under the hook name. Adding an id that is already
// registered under the same hook replaces the previous registration and
// moves it to the position its new priority dictates.
func (r *Registry) AddFilter(name, id string, fn FilterFunc, opts ...FilterOption) error {
	switch {
	case name == "":
		return ErrEmptyHookName
	case id == "":
		return ErrEmptyFilterID
	case fn == nil:
		return ErrNilFilter
	}

	cfg := defaultFilterConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.acceptedArgs < 1 {
		return fmt.Errorf("%w: got %d for %s/%s", ErrInvalidArity, cfg.acceptedArgs, name, id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	chain := slices.DeleteFunc(r.filters[name], func(f filter) bool { return f.id == id })
	chain = append(chain, filter{
		fn:           fn,
		id:           id,
		priority:     cfg.priority,
		acceptedArgs: cfg.acceptedArgs,
		seq:          r.seq,
	})
	slices.SortStableFunc(chain, func(a, b filter) int {
		if c := cmp.Compare(a.priority, b.priority); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
	r.filters[name] = chain

	r.logger.Debug("filter added",
		slog.String("hook", name),
		slog.String("filter", id),
		slog.Int("priority", cfg.priority),
		slog.Int("accepted_args", cfg.acceptedArgs),
	)

	return nil
}

// RemoveFilter removes the filter id from the hook.
// Reports whether anything was removed.
func (r *Registry) RemoveFilter(name, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	chain, ok := r.filters[name]
	if !ok {
		return false
	}

	before := len(chain)
	chain = slices.DeleteFunc(chain, func(f filter) bool { return f.id == id })
	if len(chain) == before {
		return false
	}

	if len(chain) == 0 {
		delete(r.filters, name)
	} else {
		r.filters[name] = chain
	}
	return true
}

// RemoveAll removes every filter registered under the hook and returns how
// many were removed.
func (r *Registry) RemoveAll(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.filters[name])
	delete(r.filters, name)
	return n
}

// HasFilter reports whether id is registered under the hook.
func (r *Registry) HasFilter(name, id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.ContainsFunc(r.filters[name], func(f filter) bool { return f.id == id })
}

// Filters returns the ids registered under the hook in execution order.
func (r *Registry) Filters(name string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chain := r.filters[name]
	ids := make([]string, len(chain))
	for i, f := range chain {
		ids[i] = f.id
	}
	return ids
}

// Names returns the hooks that have at least one filter, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.filters))
}

// Apply runs the filter chain for the hook over value and returns the result.
// Hooks without filters return value unchanged. A filter that panics is
// skipped and the chain continues with the value it was given.
func (r *Registry) Apply(ctx context.Context, name, value string, args ...string) string {
	r.mu.RLock()
	chain := slices.Clone(r.filters[name])
	r.mu.RUnlock()

	if len(chain) == 0 {
		return value
	}

	ctx = WithName(ctx, name)
	for _, f := range chain {
		value = r.call(ctx, f, value, args)
	}
	return value
}

func (r *Registry) call(ctx context.Context, f filter, value string, args []string) (result string) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.ErrorContext(ctx, "filter panicked",
				slog.String("filter", f.id),
				slog.Any("panic", rec),
			)
			result = value
		}
	}()

	n := min(f.acceptedArgs-1, len(args))
	return f.fn(ctx, value, args[:n]...)
}
