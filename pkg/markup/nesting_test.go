package markup_test

import (
	"testing"

	"github.com/arthur-debert/chalker/pkg/backend"
	"github.com/arthur-debert/chalker/pkg/errors"
	"github.com/arthur-debert/chalker/pkg/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// descend is a recursive-descent reference renderer used to cross-check
// the reverse scan. It assumes balanced input.
func descend(t *testing.T, tokens []markup.Token, i int, b backend.Backend) (string, int) {
	t.Helper()
	out := ""
	for i < len(tokens) {
		tok := tokens[i]
		switch tok.Kind {
		case markup.TextToken:
			out += tok.Value
			i++
		case markup.CloseToken:
			return out, i
		case markup.OpenToken:
			inner, next := descend(t, tokens, i+1, b)
			require.Less(t, next, len(tokens), "reference needs balanced input")
			styled, err := markup.Apply(tok.Value, inner, b)
			require.NoError(t, err)
			out += styled
			i = next + 1
		}
	}
	return out, i
}

func TestRenderNesting(t *testing.T) {
	b := trueColor()

	t.Run("inner span inside outer", func(t *testing.T) {
		red, _ := markup.Resolve("red", b)
		blue, _ := markup.Resolve("blue", b)

		got, err := markup.Render(markup.Tokenize("<red>a<blue>b</blue>c</red>"), b)
		require.NoError(t, err)
		assert.Equal(t, red.Render("a"+blue.Render("b")+"c"), got)
	})

	inputs := []string{
		"plain",
		"<red>a</red>",
		"<red>a<blue>b</blue>c</red>",
		"x<red>a</>y<blue>b</>z",
		"<red><blue><green>deep</></></>",
		"<red></red>",
		`plain1 <red>red1<bgBlue> on blue<cyan> cyan on blue</cyan><black> black
 on blue</black><green.bg-gold>green on gold</> red2 on
 blue       <orange.bg#000>orange</>           <magenta.bgGreen>
magenta on green</magenta.bgGreen></bgBlue> red3 </red> plain2<magenta>
magenta1 <red>red</red> <green>green</> magenta2</magenta> plain3`,
	}

	for _, input := range inputs {
		t.Run("matches reference: "+input, func(t *testing.T) {
			tokens := markup.Tokenize(input)
			want, end := descend(t, tokens, 0, b)
			require.Equal(t, len(tokens), end)

			got, err := markup.Render(tokens, b)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestRenderCloseNamesAreNotChecked(t *testing.T) {
	b := trueColor()

	want, err := markup.Render(markup.Tokenize("<red>x</red>"), b)
	require.NoError(t, err)

	for _, input := range []string{"<red>x</>", "<red>x</blue>", "<red>x</anything at all>"} {
		got, err := markup.Render(markup.Tokenize(input), b)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	t.Run("misspelled close still balances", func(t *testing.T) {
		got, err := markup.Render(markup.Tokenize("blah <red>red<blue>blue</blue></rad>"), b)
		require.NoError(t, err)

		red, _ := markup.Resolve("red", b)
		blue, _ := markup.Resolve("blue", b)
		assert.Equal(t, "blah "+red.Render("red"+blue.Render("blue")), got)
	})
}

func TestRenderUnbalanced(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{
			name:    "lone open tag",
			input:   "<red>",
			message: "unbalanced open/close markers: [<red>]...",
		},
		{
			name:    "open tag never closed",
			input:   "oops <red>red<blue></blue>",
			message: "unbalanced open/close markers: oops [<red>]...",
		},
		{
			name:    "inner open tag never closed",
			input:   "<red>red<blue><cyan></>",
			message: "unbalanced open/close markers: <red>red[<blue>]...",
		},
		{
			name:    "lone close tag",
			input:   "text</red> more",
			message: "unbalanced open/close markers: text[** </red> **] more",
		},
		{
			name:    "extra close tags",
			input:   "a</>b<red>c</red></x>",
			message: "unbalanced open/close markers: a[** </> **]b<red>c</red>[** </x> **]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := markup.Render(markup.Tokenize(tt.input), trueColor())
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrNesting), "got %v", err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}

	t.Run("details", func(t *testing.T) {
		_, err := markup.Render(markup.Tokenize("ab<red>"), trueColor())
		details := errors.GetErrorDetails(err)
		assert.Equal(t, "<red>", details["marker"])
		assert.Equal(t, 2, details["offset"])

		_, err = markup.Render(markup.Tokenize("</a>x</b>"), trueColor())
		details = errors.GetErrorDetails(err)
		assert.Equal(t, []string{"</a>", "</b>"}, details["markers"])
	})
}

func TestRenderStopsAtFirstBadChain(t *testing.T) {
	_, err := markup.Render(markup.Tokenize("<red>ok</><blah>bad</>"), trueColor())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownDirective))
}
