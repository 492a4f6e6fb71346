// Package entities decodes the small set of HTML character references that
// markup strings may carry, so literal angle brackets and quotes can be
// written inside tagged text.
package entities

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// named holds the only named references that are decoded. Anything else is
// left untouched.
var named = map[string]string{
	"&quot;": `"`,
	"&amp;":  "&",
	"&apos;": "'",
	"&lt;":   "<",
	"&gt;":   ">",
	"&nbsp;": "\u00a0",
	"&copy;": "\u00a9",
	"&reg;":  "\u00ae",
}

var referencePattern = regexp.MustCompile(`&[A-Za-z]+;|&#[xX][0-9A-Fa-f]+;|&#[0-9]+;`)

// Decode replaces named and numeric character references in s. Unknown
// names, out of range code points and lone surrogates are kept verbatim.
// Two adjacent references forming a UTF-16 surrogate pair decode to the
// single code point they encode.
func Decode(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}

	matches := referencePattern.FindAllStringIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0

	for i := 0; i < len(matches); i++ {
		start, end := matches[i][0], matches[i][1]
		b.WriteString(s[last:start])
		last = end

		ref := s[start:end]
		if ref[1] != '#' {
			if v, ok := named[ref]; ok {
				b.WriteString(v)
			} else {
				b.WriteString(ref)
			}
			continue
		}

		cp, ok := codePoint(ref)
		if !ok {
			b.WriteString(ref)
			continue
		}

		if utf16.IsSurrogate(rune(cp)) {
			// a high surrogate directly followed by a low one
			if i+1 < len(matches) && matches[i+1][0] == end {
				next := s[matches[i+1][0]:matches[i+1][1]]
				if low, ok := codePoint(next); ok {
					if r := utf16.DecodeRune(rune(cp), rune(low)); r != utf8.RuneError {
						b.WriteRune(r)
						last = matches[i+1][1]
						i++
						continue
					}
				}
			}
			b.WriteString(ref)
			continue
		}

		if !utf8.ValidRune(rune(cp)) {
			b.WriteString(ref)
			continue
		}
		b.WriteRune(rune(cp))
	}

	b.WriteString(s[last:])
	return b.String()
}

// codePoint parses a numeric reference such as &#x2665; or &#9829;.
func codePoint(ref string) (int64, bool) {
	body := ref[2 : len(ref)-1]
	base := 10
	if body[0] == 'x' || body[0] == 'X' {
		body = body[1:]
		base = 16
	}
	v, err := strconv.ParseInt(body, base, 32)
	if err != nil {
		return 0, false
	}
	return v, true
}
