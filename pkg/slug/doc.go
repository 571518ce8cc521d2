// Package slug turns post titles into URL-safe permalink segments that use
// underscores as the only word separator.
//
// The conversion keeps existing percent-encoded octets, percent-encodes any
// remaining non-ASCII text, and reduces everything else to lowercase ASCII
// letters, digits and underscores.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/permalink/pkg/slug"
//
//	s := slug.Make("Hello   World")
//	// Output: "hello_world"
//
//	s = slug.Make("version.1.2.3")
//	// Output: "version_1_2_3"
//
//	s = slug.Make("Café")
//	// Output: "caf%c3%a9"
//
// # Contexts
//
// The caller tells Sanitize why the title is being sanitized. Only the Save
// context turns on the extended punctuation rules: typographic dashes and
// non-breaking spaces become separators, quotes and symbols such as © or ™
// are dropped, and the multiplication sign becomes a plain "x".
//
//	slug.Sanitize("It’s 5 × 3", slug.Display)
//	// Output: "it%e2%80%99s_5_%c3%97_3"
//
//	slug.Sanitize("It’s 5 × 3", slug.Save)
//	// Output: "its_5_x_3"
//
// # Length
//
// Valid UTF-8 titles are cut while percent-encoding so that the encoded text
// never exceeds MaxEncodedLength characters. A multi-byte character is either
// encoded completely or not at all.
//
// # Filter form
//
// Filter has the three-argument shape used by title filter pipelines
// (title, raw title, context). The raw title is accepted for positional
// compatibility and never read.
//
// All functions are pure and safe for concurrent use.
package slug
