// Package hook provides a named filter registry for string pipelines.
//
// A hook is a well-known name such as "sanitize_title". Any number of
// filters can be attached to it; Apply runs them in priority order, feeding
// each filter's output into the next one.
//
// Basic usage:
//
//	r := hook.New(hook.WithLogger(log))
//
//	err := r.AddFilter("sanitize_title", "trim",
//		func(ctx context.Context, v string, _ ...string) string {
//			return strings.TrimSpace(v)
//		},
//		hook.Priority(5),
//	)
//
//	title := r.Apply(ctx, "sanitize_title", "  Hello  ")
//	// Output: "Hello"
//
// # Priority and arity
//
// Lower priorities run first; filters with the same priority run in the
// order they were added. AcceptedArgs limits how many of Apply's extra
// arguments a filter sees, counting the value itself:
//
//	r.AddFilter("sanitize_title", "underscores", fn,
//		hook.Priority(10),
//		hook.AcceptedArgs(3), // value, raw title, context
//	)
//
//	r.Apply(ctx, "sanitize_title", title, rawTitle, "save")
//
// # Failure handling
//
// Apply never returns an error. A filter that panics is logged at error
// level and skipped; the next filter receives the value the panicking filter
// was given. While a chain runs, the hook name is available through
// NameFromContext, and LogExtractor turns it into a log attribute.
package hook
