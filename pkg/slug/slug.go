package slug

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxEncodedLength bounds the percent-encoded form of a title.
const MaxEncodedLength = 200

// Context names the operation a title is sanitized for.
// Values other than the predefined ones are allowed and behave like Display.
type Context string

const (
	Display Context = "display"
	Save    Context = "save"
	Query   Context = "query"
)

// ParseContext converts a raw context name. Empty input maps to Display.
func ParseContext(s string) Context {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Display
	}
	return Context(s)
}

// String implements fmt.Stringer.
func (c Context) String() string {
	return string(c)
}

var (
	entityRegex     = regexp.MustCompile(`&.+?;`)
	disallowedRegex = regexp.MustCompile(`[^%a-z0-9 _-]`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
	dashRegex       = regexp.MustCompile(`-+`)
)

// Make sanitizes title in the Display context.
func Make(title string) string {
	return Sanitize(title, Display)
}

// Filter is the three-argument form of Sanitize used by filter pipelines.
// rawTitle is ignored.
func Filter(title, rawTitle string, ctx Context) string {
	_ = rawTitle
	return Sanitize(title, ctx)
}

// Sanitize converts title into a lowercase slug separated by underscores.
// It never fails; input that has nothing usable left yields an empty string.
func Sanitize(title string, ctx Context) string {
	title = stripTags(title)
	title = keepOctets(title)

	if utf8.ValidString(title) {
		// cases.Caser keeps per-use state, so it is not shared.
		title = cases.Lower(language.Und).String(title)
		title = uriEncode(title, MaxEncodedLength)
	}

	title = asciiLower(title)
	title = entityRegex.ReplaceAllString(title, "")
	title = strings.ReplaceAll(title, ".", "_")

	if ctx == Save {
		title = replacePunctuation(title)
	}

	title = disallowedRegex.ReplaceAllString(title, "")
	title = whitespaceRegex.ReplaceAllString(title, "_")
	title = dashRegex.ReplaceAllString(title, "_")

	return strings.Trim(title, "_")
}

// asciiLower lowercases A-Z only and leaves every other byte alone.
func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}
