package slug

import "strings"

type replacement struct {
	from string
	to   string
}

// savePunctuation is applied in order, one term at a time.
// Every entry is the lowercase percent-encoded UTF-8 form of a single code point.
var savePunctuation = []replacement{
	// no-break space, en dash, em dash
	{"%c2%a0", "_"},
	{"%e2%80%93", "_"},
	{"%e2%80%94", "_"},

	// inverted exclamation and question marks
	{"%c2%a1", ""},
	{"%c2%bf", ""},

	// angle quotes
	{"%c2%ab", ""},
	{"%c2%bb", ""},
	{"%e2%80%b9", ""},
	{"%e2%80%ba", ""},

	// curly quotes
	{"%e2%80%98", ""},
	{"%e2%80%99", ""},
	{"%e2%80%9c", ""},
	{"%e2%80%9d", ""},
	{"%e2%80%9a", ""},
	{"%e2%80%9b", ""},
	{"%e2%80%9e", ""},
	{"%e2%80%9f", ""},

	// copyright, registered, degree, ellipsis, trademark
	{"%c2%a9", ""},
	{"%c2%ae", ""},
	{"%c2%b0", ""},
	{"%e2%80%a6", ""},
	{"%e2%84%a2", ""},

	// acute accents
	{"%c2%b4", ""},
	{"%cb%8a", ""},
	{"%cc%81", ""},
	{"%cd%81", ""},

	// grave accent, macron, caron
	{"%cc%80", ""},
	{"%cc%84", ""},
	{"%cc%8c", ""},

	// multiplication sign
	{"%c3%97", "x"},
}

// replacePunctuation runs savePunctuation one term at a time in table order.
// Each term replaces all of its occurrences before the next term runs.
func replacePunctuation(s string) string {
	if strings.IndexByte(s, '%') < 0 {
		return s
	}
	for _, r := range savePunctuation {
		s = strings.ReplaceAll(s, r.from, r.to)
	}
	return s
}
