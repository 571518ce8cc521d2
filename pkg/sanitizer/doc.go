// Package sanitizer cleans post titles for display.
//
// It complements package slug: slug produces the URL segment, sanitizer
// produces the human-readable title shown alongside it. Both start from the
// same raw title, which may contain markup.
//
//	sanitizer.Title(`<p>Tom & <b>Jerry</b></p>`)
//	// Output: "Tom &amp; Jerry"
//
//	sanitizer.TitleHTML(`<em>Go</em> <a href="/x">Tips</a>`)
//	// Output: "<em>Go</em> Tips"
//
// Policies come from github.com/microcosm-cc/bluemonday and are built once.
// Script and style contents are dropped, never shown as text.
package sanitizer
