package markup

import (
	"strings"
)

// Tokenize splits s into text runs and tags. A tag is a '<' followed by
// characters other than '<' and '>' and closed by '>'. A '<' that does not
// start such a tag, and a lone '>', stay part of the surrounding text.
func Tokenize(s string) []Token {
	var tokens []Token
	textStart := 0

	flush := func(end int) {
		if end > textStart {
			tokens = append(tokens, Token{Kind: TextToken, Value: s[textStart:end], Raw: s[textStart:end]})
		}
	}

	for i := 0; i < len(s); {
		if s[i] != '<' {
			i++
			continue
		}

		j := strings.IndexAny(s[i+1:], "<>")
		if j < 0 || s[i+1+j] != '>' {
			// not a tag, keep scanning as text
			i++
			continue
		}
		end := i + 1 + j

		flush(i)
		tokens = append(tokens, tagToken(s[i:end+1]))
		i = end + 1
		textStart = i
	}
	flush(len(s))

	return tokens
}

func tagToken(raw string) Token {
	inner := raw[1 : len(raw)-1]
	if rest, ok := strings.CutPrefix(inner, "/"); ok {
		return Token{Kind: CloseToken, Value: strings.TrimSpace(rest), Raw: raw}
	}
	return Token{Kind: OpenToken, Value: inner, Raw: raw}
}
