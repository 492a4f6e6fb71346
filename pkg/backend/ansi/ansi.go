// Package ansi is the default markup backend. It renders styles as ANSI SGR
// escape sequences through termenv, degrading colors to the configured color
// profile.
package ansi

import (
	"strings"

	"github.com/arthur-debert/chalker/pkg/backend"
	"github.com/muesli/termenv"
)

// Name is reported in markup error messages.
const Name = "ansi"

const hiddenSeq = "8"

var resetSequence = termenv.CSI + termenv.ResetSeq + "m"

func init() {
	backend.RegisterDefaultFactory(func() backend.Backend {
		return NewFromEnv()
	})
}

// Style is an immutable list of SGR parameters bound to a color profile.
type Style struct {
	profile termenv.Profile
	seqs    []string
}

// with returns a copy of s with seq appended. Empty sequences, which is what
// colors degrade to on the Ascii profile, are dropped.
func (s Style) with(seq string) Style {
	if seq == "" {
		return s
	}
	seqs := make([]string, len(s.seqs), len(s.seqs)+1)
	copy(seqs, s.seqs)
	return Style{profile: s.profile, seqs: append(seqs, seq)}
}

// Sequence returns the opening escape sequence, or "" for a plain style.
func (s Style) Sequence() string {
	if s.profile == termenv.Ascii || len(s.seqs) == 0 {
		return ""
	}
	return termenv.CSI + strings.Join(s.seqs, ";") + "m"
}

// Render wraps text in the style. Resets already present in text, coming
// from nested spans, are followed by this style's sequence again so the
// remainder of the span keeps its styling.
func (s Style) Render(text string) string {
	open := s.Sequence()
	if open == "" {
		return text
	}
	body := strings.ReplaceAll(text, resetSequence, resetSequence+open)
	return open + body + resetSequence
}

// Backend produces ANSI styles for one color profile.
type Backend struct {
	profile termenv.Profile
	ops     backend.Operations
}

// New creates a backend that renders for the given color profile.
func New(profile termenv.Profile) *Backend {
	b := &Backend{
		profile: profile,
		ops:     backend.Operations{},
	}
	b.registerOperations()
	return b
}

// NewFromEnv creates a backend for the color profile of stdout, honoring
// NO_COLOR and CLICOLOR_FORCE.
func NewFromEnv() *Backend {
	return New(termenv.EnvColorProfile())
}

// Name implements backend.Backend.
func (b *Backend) Name() string {
	return Name
}

// Profile returns the color profile styles are rendered for.
func (b *Backend) Profile() termenv.Profile {
	return b.profile
}

// Base implements backend.Backend.
func (b *Backend) Base() backend.Style {
	return Style{profile: b.profile}
}

// Basic implements backend.Backend.
func (b *Backend) Basic(s backend.Style, name string) (backend.Style, bool) {
	st, ok := s.(Style)
	if !ok {
		return nil, false
	}
	if seq, ok := modifiers[name]; ok {
		return st.with(seq), true
	}
	if c, ok := basicColors[name]; ok {
		return st.with(b.profile.Convert(c.color).Sequence(c.bg)), true
	}
	return nil, false
}

// Operation implements backend.Backend.
func (b *Backend) Operation(name string) (backend.Operation, bool) {
	return b.ops.Lookup(name)
}

// Operations returns the names of all callable directives.
func (b *Backend) Operations() []string {
	return b.ops.Names()
}

// BasicNames returns every basic style name the backend recognizes.
func BasicNames() []string {
	names := make([]string, 0, len(modifiers)+len(basicColors))
	for name := range modifiers {
		names = append(names, name)
	}
	for name := range basicColors {
		names = append(names, name)
	}
	return names
}

var modifiers = map[string]string{
	"bold":          termenv.BoldSeq,
	"dim":           termenv.FaintSeq,
	"italic":        termenv.ItalicSeq,
	"underline":     termenv.UnderlineSeq,
	"blink":         termenv.BlinkSeq,
	"inverse":       termenv.ReverseSeq,
	"hidden":        hiddenSeq,
	"strikethrough": termenv.CrossOutSeq,
	"overline":      termenv.OverlineSeq,
}

type basicColor struct {
	color termenv.ANSIColor
	bg    bool
}

var basicColors = func() map[string]basicColor {
	names := []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}
	m := make(map[string]basicColor, len(names)*4+4)
	for i, name := range names {
		bright := termenv.ANSIColor(i + 8)
		title := strings.ToUpper(name[:1]) + name[1:]

		m[name] = basicColor{color: termenv.ANSIColor(i)}
		m[name+"Bright"] = basicColor{color: bright}
		m["bg"+title] = basicColor{color: termenv.ANSIColor(i), bg: true}
		m["bg"+title+"Bright"] = basicColor{color: bright, bg: true}
	}
	m["gray"] = basicColor{color: termenv.ANSIBrightBlack}
	m["grey"] = basicColor{color: termenv.ANSIBrightBlack}
	m["bgGray"] = basicColor{color: termenv.ANSIBrightBlack, bg: true}
	m["bgGrey"] = basicColor{color: termenv.ANSIBrightBlack, bg: true}
	return m
}()
