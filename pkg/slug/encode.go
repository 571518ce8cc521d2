package slug

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

const hexDigits = "0123456789abcdef"

// stripTags removes markup and comments, keeping text exactly as written.
// Entities are not decoded.
func stripTags(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Raw())
		}
	}
}

// keepOctets drops every '%' that does not start a %XX octet.
func keepOctets(s string) string {
	if strings.IndexByte(s, '%') < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] == '%' && !isOctet(s, i) {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isOctet(s string, i int) bool {
	return i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2])
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// uriEncode percent-encodes every non-ASCII byte of a valid UTF-8 string.
// ASCII passes through. When limit > 0, encoding stops before the first
// character whose encoded form would push the output past limit.
// Octets already present in s count as one unit and are never cut.
func uriEncode(s string, limit int) string {
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for i := 0; i < len(s); {
		c := s[i]
		if c == '%' && isOctet(s, i) {
			if limit > 0 && n+3 > limit {
				break
			}
			b.WriteString(s[i : i+3])
			n += 3
			i += 3
			continue
		}
		if c < utf8.RuneSelf {
			if limit > 0 && n+1 > limit {
				break
			}
			b.WriteByte(c)
			n++
			i++
			continue
		}

		_, size := utf8.DecodeRuneInString(s[i:])
		if limit > 0 && n+size*3 > limit {
			break
		}
		for _, octet := range []byte(s[i : i+size]) {
			b.WriteByte('%')
			b.WriteByte(hexDigits[octet>>4])
			b.WriteByte(hexDigits[octet&0x0f])
		}
		n += size * 3
		i += size
	}
	return b.String()
}
