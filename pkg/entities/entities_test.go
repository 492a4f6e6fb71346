package entities_test

import (
	"testing"

	"github.com/arthur-debert/chalker/pkg/entities"
	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "named table",
			input:    "&lt;&gt;&amp;&quot;&apos;&nbsp;&copy;&reg;",
			expected: "<>&\"'\u00a0\u00a9\u00ae",
		},
		{
			name:     "hex reference",
			input:    "&#x2665;",
			expected: "♥",
		},
		{
			name:     "upper case hex marker",
			input:    "&#X398;",
			expected: "Θ",
		},
		{
			name:     "decimal references",
			input:    "&#8201; &#8657;",
			expected: "\u2009 \u21d1",
		},
		{
			name:     "mixed code points",
			input:    "&#x0391; &#x398; &#x2666;",
			expected: "Α Θ ♦",
		},
		{
			name:     "surrogate pair",
			input:    "&#xD83D;&#xDC69;",
			expected: "\U0001F469",
		},
		{
			name:     "lone surrogate kept",
			input:    "&#xD83D; x",
			expected: "&#xD83D; x",
		},
		{
			name:     "unknown entity kept",
			input:    "&xyz;",
			expected: "&xyz;",
		},
		{
			name:     "out of range code point kept",
			input:    "&#x110000;",
			expected: "&#x110000;",
		},
		{
			name:     "bare ampersand",
			input:    "salt & pepper",
			expected: "salt & pepper",
		},
		{
			name:     "no double decoding",
			input:    "&amp;lt;",
			expected: "&lt;",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "surrounding text",
			input:    "&quot;hello world&quot;",
			expected: `"hello world"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, entities.Decode(tt.input))
		})
	}
}
