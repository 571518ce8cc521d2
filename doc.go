// Package permalink wires the underscore slug sanitizer into a named filter
// pipeline.
//
// The sanitizer itself lives in [github.com/dmitrymomot/permalink/pkg/slug]
// and has no knowledge of hooks. This package registers it on the
// "sanitize_title" hook of a [github.com/dmitrymomot/permalink/pkg/hook]
// registry with priority 10 and three arguments (title, raw title, context).
//
// # Quick Start
//
//	p, err := permalink.New(permalink.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	p.Slug(ctx, "Hello World")                                  // "hello_world"
//	p.SanitizeTitle(ctx, "It’s", "", slug.Display)              // "it%e2%80%99s"
//	p.SanitizeTitle(ctx, "!!!", "untitled", slug.Save)          // "untitled"
//
// # Chaining
//
// Extra filters go on the same hook. Lower priorities run before the
// underscore filter, higher ones after it:
//
//	p.Registry().AddFilter(permalink.HookSanitizeTitle, "prefix",
//		func(_ context.Context, v string, _ ...string) string { return "post_" + v },
//		hook.Priority(20),
//	)
//
// An existing registry can be reused with WithRegistry, or the filter can be
// installed directly with Register.
//
// # Batches
//
// SanitizeAll converts many titles at once, WithConcurrency of them at a time.
// The result has the same order as the input:
//
//	slugs, err := p.SanitizeAll(ctx, titles, "untitled", slug.Save)
package permalink
