package sanitizer

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	inlinePolicy *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()

		// Titles are a single line: inline emphasis only, no links or blocks.
		inlinePolicy = bluemonday.NewPolicy()
		inlinePolicy.AllowElements(
			"strong", "b", "em", "i",
			"code", "sub", "sup", "mark",
		)
	})
}

// Title returns title as escaped plain text on a single line, ready to be
// shown next to its slug. All markup is removed.
func Title(title string) string {
	initPolicies()
	return singleLine(strictPolicy.Sanitize(title))
}

// TitleHTML keeps inline emphasis tags (strong, em, code, sub, sup, mark)
// and removes everything else.
func TitleHTML(title string) string {
	initPolicies()
	return singleLine(inlinePolicy.Sanitize(title))
}

// StripHTML removes all markup and escapes the remaining text.
func StripHTML(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}

// SanitizeHTMLCustom applies a custom bluemonday policy.
// Returns input unchanged if policy is nil.
func SanitizeHTMLCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
