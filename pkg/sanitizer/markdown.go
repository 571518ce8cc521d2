package sanitizer

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
)

// md renders without the unsafe option, so raw HTML in the source is
// replaced by a comment before the policy runs.
var md = goldmark.New()

// MarkdownTitle renders a Markdown title to single-line HTML that keeps only
// the inline emphasis TitleHTML allows. Block elements are dropped.
func MarkdownTitle(src string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("sanitizer: render markdown: %w", err)
	}

	return TitleHTML(buf.String()), nil
}
