package permalink

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/permalink/pkg/hook"
	"github.com/dmitrymomot/permalink/pkg/logger"
	"github.com/dmitrymomot/permalink/pkg/slug"
)

const (
	// HookSanitizeTitle is the hook that turns titles into slugs.
	HookSanitizeTitle = "sanitize_title"

	// FilterID identifies the underscore filter within the hook.
	FilterID = "underscores"

	// DefaultPriority is the priority the filter is registered with.
	DefaultPriority = hook.DefaultPriority

	// AcceptedArgs is the filter arity: title, raw title, context.
	AcceptedArgs = 3
)

// Filter adapts slug.Filter to hook.FilterFunc.
// args[0] is the raw title and is ignored; args[1] is the context.
// A missing context means display.
func Filter(_ context.Context, title string, args ...string) string {
	var raw string
	sctx := slug.Display
	if len(args) > 0 {
		raw = args[0]
	}
	if len(args) > 1 {
		sctx = slug.ParseContext(args[1])
	}
	return slug.Filter(title, raw, sctx)
}

// Register installs Filter on r under HookSanitizeTitle.
func Register(r *hook.Registry, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return register(r, o.priority)
}

func register(r *hook.Registry, priority int) error {
	if err := r.AddFilter(HookSanitizeTitle, FilterID, Filter,
		hook.Priority(priority),
		hook.AcceptedArgs(AcceptedArgs),
	); err != nil {
		return fmt.Errorf("permalink: register filter: %w", err)
	}
	return nil
}

// Permalinks sanitizes titles through the sanitize_title hook.
// Other filters added to Registry() run before or after the underscore
// filter according to their priority.
type Permalinks struct {
	registry    *hook.Registry
	logger      *slog.Logger
	concurrency int
}

// New creates a registry (unless WithRegistry is given) and installs the
// underscore filter into it.
func New(opts ...Option) (*Permalinks, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logger.NewNope()
	}
	if o.registry == nil {
		o.registry = hook.New(hook.WithLogger(o.logger))
	}

	if err := register(o.registry, o.priority); err != nil {
		return nil, err
	}

	return &Permalinks{
		registry:    o.registry,
		logger:      o.logger,
		concurrency: o.concurrency,
	}, nil
}

// Registry returns the registry the filter lives in.
func (p *Permalinks) Registry() *hook.Registry {
	return p.registry
}

// SanitizeTitle runs the sanitize_title hook over title with the title itself
// as the raw title. If the chain produces an empty string, fallback is
// returned instead.
func (p *Permalinks) SanitizeTitle(ctx context.Context, title, fallback string, sctx slug.Context) string {
	result := p.registry.Apply(ctx, HookSanitizeTitle, title, title, sctx.String())
	if result == "" {
		p.logger.DebugContext(ctx, "empty slug, using fallback",
			slog.String("title", title),
			slog.String("fallback", fallback),
		)
		return fallback
	}
	return result
}

// Slug is SanitizeTitle with the save context and no fallback.
func (p *Permalinks) Slug(ctx context.Context, title string) string {
	return p.SanitizeTitle(ctx, title, "", slug.Save)
}
