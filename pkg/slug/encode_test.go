package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no markup", "plain text", "plain text"},
		{"inline tags", "<em>a</em> <strong>b</strong>", "a b"},
		{"attributes", `<a href="/x" title="y">link</a>`, "link"},
		{"entities untouched", "<p>Tom &amp; Jerry</p>", "Tom &amp; Jerry"},
		{"comment", "a<!-- b -->c", "ac"},
		{"self closing", "line<br/>break", "linebreak"},
		{"less-than before space", "a < b", "a < b"},
		{"less-than before digit", "1<2", "1<2"},
		{"leading less-than before digit", "<3 love", "<3 love"},
		{"unterminated tag", "title<b", "title"},
		{"raw text element", "<style>.x{}</style>done", ".x{}done"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, stripTags(tt.input))
		})
	}
}

func TestKeepOctets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"no percent", "no percent"},
		{"%41", "%41"},
		{"%aF", "%aF"},
		{"100%", "100"},
		{"%4", "4"},
		{"%zz", "zz"},
		{"%%41", "%41"},
		{"%4%41", "4%41"},
		{"a%20b%2", "a%20b2"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, keepOctets(tt.input))
		})
	}
}

func TestURIEncode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		limit    int
		expected string
	}{
		{"ascii passes through", "hello world!", 0, "hello world!"},
		{"two byte", "é", 0, "%c3%a9"},
		{"three byte", "’", 0, "%e2%80%99"},
		{"four byte", "😀", 0, "%f0%9f%98%80"},
		{"no limit", strings.Repeat("a", 500), 0, strings.Repeat("a", 500)},
		{"ascii limit", "abcdef", 3, "abc"},
		{"multibyte does not fit", "ab€", 10, "ab"},
		{"multibyte fits exactly", "a€", 10, "a%e2%82%ac"},
		{"stops at first overflow", "ab€c", 10, "ab"},
		{"octet is atomic", "ab%41", 4, "ab"},
		{"octet fits", "ab%41", 5, "ab%41"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, uriEncode(tt.input, tt.limit))
		})
	}
}

func TestASCIILower(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", asciiLower("abc"))
	assert.Equal(t, "hello world", asciiLower("HeLLo WORLD"))
	assert.Equal(t, "\xffab", asciiLower("\xffAB"))
	assert.Equal(t, "ÉÀ", asciiLower("ÉÀ"))
}

func TestReplacePunctuationIsSequential(t *testing.T) {
	t.Parallel()

	// Removing the copyright octet exposes a closing quote after the quote
	// term has already run, so the quote survives.
	input := "%e2%80%c2%a9%99"
	assert.Equal(t, "%e2%80%99", replacePunctuation(input))

	input = "%e2%80%99%c2%a9"
	assert.Equal(t, "", replacePunctuation(input))
}
