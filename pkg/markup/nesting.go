package markup

import (
	"strings"

	"github.com/arthur-debert/chalker/pkg/backend"
	"github.com/arthur-debert/chalker/pkg/errors"
)

// frame accumulates the content of one nesting level. The scan runs right
// to left, so parts are collected in reverse and flipped by String.
type frame struct {
	parts []string
	// index of the close tag that opened the frame, -1 for the root
	closer int
}

func (f *frame) prepend(s string) {
	if s != "" {
		f.parts = append(f.parts, s)
	}
}

func (f *frame) String() string {
	var b strings.Builder
	for i := len(f.parts) - 1; i >= 0; i-- {
		b.WriteString(f.parts[i])
	}
	return b.String()
}

// Render styles tokenized markup with backend b.
//
// Tokens are consumed from last to first. A close tag pushes a frame, text
// is prepended to the top frame, and an open tag pops the top frame, styles
// its content with the tag's chain and prepends the result to the frame
// below. Close tag names are not compared with open tags.
func Render(tokens []Token, b backend.Backend) (string, error) {
	frames := []*frame{{closer: -1}}

	for i := len(tokens) - 1; i >= 0; i-- {
		tok := tokens[i]
		top := frames[len(frames)-1]

		switch tok.Kind {
		case TextToken:
			top.prepend(tok.Value)

		case CloseToken:
			frames = append(frames, &frame{closer: i})

		case OpenToken:
			if len(frames) == 1 {
				return "", unbalancedOpen(tokens, i)
			}
			frames = frames[:len(frames)-1]

			styled, err := Apply(tok.Value, top.String(), b)
			if err != nil {
				return "", err
			}
			frames[len(frames)-1].prepend(styled)
		}
	}

	if len(frames) > 1 {
		return "", unbalancedClose(tokens, frames[1:])
	}
	return frames[0].String(), nil
}

// unbalancedOpen reports an open tag with no close tag after it, quoting
// the input up to and including the tag.
func unbalancedOpen(tokens []Token, at int) error {
	var b strings.Builder
	for _, tok := range tokens[:at] {
		b.WriteString(tok.Raw)
	}
	before := b.String()

	return errors.Newf(errors.ErrNesting, "unbalanced open/close markers: %s[%s]...", before, tokens[at].Raw).
		WithDetail("marker", tokens[at].Raw).
		WithDetail("offset", len(before))
}

// unbalancedClose reports close tags left without an open tag, quoting the
// whole input with each of them marked.
func unbalancedClose(tokens []Token, open []*frame) error {
	unmatched := make(map[int]bool, len(open))
	for _, f := range open {
		unmatched[f.closer] = true
	}

	var b strings.Builder
	markers := make([]string, 0, len(open))
	for i, tok := range tokens {
		if unmatched[i] {
			b.WriteString("[** " + tok.Raw + " **]")
			markers = append(markers, tok.Raw)
			continue
		}
		b.WriteString(tok.Raw)
	}

	return errors.Newf(errors.ErrNesting, "unbalanced open/close markers: %s", b.String()).
		WithDetail("markers", markers)
}
