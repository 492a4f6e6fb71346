package style

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/arthur-debert/chalker/pkg/backend"
	"github.com/arthur-debert/chalker/pkg/backend/colors"
	"github.com/charmbracelet/lipgloss"
)

// Name is reported in markup error messages.
const Name = "theme"

const (
	resetSequence = "\x1b[0m"
	// probe is rendered to discover the opening sequence of a style
	probe = "x"
)

var leadingSGR = regexp.MustCompile(`^(?:\x1b\[[0-9;:]*m)+`)

// Style wraps an immutable lipgloss style.
type Style struct {
	lg lipgloss.Style
}

// Lipgloss returns the underlying lipgloss style.
func (s Style) Lipgloss() lipgloss.Style {
	return s.lg
}

// Sequence returns the escape sequence the style opens with, or "" when the
// renderer's color profile produces no styling.
func (s Style) Sequence() string {
	return leadingSGR.FindString(s.lg.Render(probe))
}

// Render styles text line by line so lipgloss never pads lines to a common
// width. Resets inside text, left by nested spans, re-open this style.
func (s Style) Render(text string) string {
	if open := s.Sequence(); open != "" {
		text = strings.ReplaceAll(text, resetSequence, resetSequence+open)
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = s.lg.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// Backend resolves markup directives to lipgloss styles. Besides colors and
// text attributes it knows the semantic theme tags (title, success, ...).
type Backend struct {
	renderer *lipgloss.Renderer
	base     lipgloss.Style
	tags     StyleMap
	ops      backend.Operations
}

// NewBackend creates a theme backend rendering through r with the default
// palette. A nil renderer selects lipgloss's default renderer.
func NewBackend(r *lipgloss.Renderer) *Backend {
	return NewBackendWithPalette(r, DefaultPalette)
}

// NewBackendWithPalette creates a theme backend for a custom palette.
func NewBackendWithPalette(r *lipgloss.Renderer, p Palette) *Backend {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	b := &Backend{
		renderer: r,
		base:     r.NewStyle().Inline(true).TabWidth(lipgloss.NoTabConversion),
		tags:     ThemeStyles(r, p),
		ops:      backend.Operations{},
	}
	b.registerOperations()
	return b
}

// WithStyle returns a copy of the backend with tag bound to s.
func (b *Backend) WithStyle(tag string, s lipgloss.Style) *Backend {
	tags := make(StyleMap, len(b.tags)+1)
	for k, v := range b.tags {
		tags[k] = v
	}
	tags[tag] = s.Renderer(b.renderer)

	next := *b
	next.tags = tags
	return &next
}

// Tags returns the semantic tag names of the theme.
func (b *Backend) Tags() []string {
	names := make([]string, 0, len(b.tags))
	for name := range b.tags {
		names = append(names, name)
	}
	return names
}

// Renderer returns the lipgloss renderer styles are bound to.
func (b *Backend) Renderer() *lipgloss.Renderer {
	return b.renderer
}

// Name implements backend.Backend.
func (b *Backend) Name() string {
	return Name
}

// Base implements backend.Backend.
func (b *Backend) Base() backend.Style {
	return Style{lg: b.base}
}

// Basic implements backend.Backend.
func (b *Backend) Basic(s backend.Style, name string) (backend.Style, bool) {
	st, ok := s.(Style)
	if !ok {
		return nil, false
	}

	if themed, ok := b.tags[name]; ok {
		// the tag's own properties win over what the chain set so far
		return Style{lg: themed.Inherit(st.lg)}, true
	}
	if attr, ok := attributes[name]; ok {
		return Style{lg: attr(st.lg)}, true
	}
	if c, ok := ansiColors[name]; ok {
		return Style{lg: st.lg.Foreground(c)}, true
	}
	if rest, ok := strings.CutPrefix(name, "bg"); ok && rest != "" {
		if c, ok := ansiColors[strings.ToLower(rest[:1])+rest[1:]]; ok {
			return Style{lg: st.lg.Background(c)}, true
		}
	}
	return nil, false
}

// Operation implements backend.Backend.
func (b *Backend) Operation(name string) (backend.Operation, bool) {
	return b.ops.Lookup(name)
}

func (b *Backend) registerOperations() {
	str := func(convert func(string) (string, error)) func(backend.Args) (string, error) {
		return func(args backend.Args) (string, error) { return convert(args.Str) }
	}
	tuple := func(convert func(a, b, c int) (string, error)) func(backend.Args) (string, error) {
		return func(args backend.Args) (string, error) { return convert(args.Ints[0], args.Ints[1], args.Ints[2]) }
	}
	palette := func(args backend.Args) (string, error) {
		n, err := colors.ANSI256(args.Ints[0])
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil
	}

	pairs := []struct {
		fg, bg string
		kind   backend.ArgKind
		arity  int
		color  func(backend.Args) (string, error)
	}{
		{"hex", "bgHex", backend.StringArg, 1, str(colors.NormalizeHex)},
		{"keyword", "bgKeyword", backend.StringArg, 1, str(colors.KeywordHex)},
		{"rgb", "bgRgb", backend.IntTupleArg, 3, tuple(colors.RGB)},
		{"hsl", "bgHsl", backend.IntTupleArg, 3, tuple(colors.HSL)},
		{"hsv", "bgHsv", backend.IntTupleArg, 3, tuple(colors.HSV)},
		{"hwb", "bgHwb", backend.IntTupleArg, 3, tuple(colors.HWB)},
		{"ansi256", "bgAnsi256", backend.IntTupleArg, 1, palette},
	}

	for _, p := range pairs {
		b.ops.Register(backend.Operation{Name: p.fg, Kind: p.kind, Arity: p.arity, Apply: colorOp(p.color, false)})
		b.ops.Register(backend.Operation{Name: p.bg, Kind: p.kind, Arity: p.arity, Apply: colorOp(p.color, true)})
	}
}

func colorOp(color func(backend.Args) (string, error), bg bool) backend.ApplyFunc {
	return func(s backend.Style, args backend.Args) (backend.Style, error) {
		st, ok := s.(Style)
		if !ok {
			return nil, fmt.Errorf("style %T does not belong to the %s backend", s, Name)
		}
		c, err := color(args)
		if err != nil {
			return nil, err
		}
		if bg {
			return Style{lg: st.lg.Background(lipgloss.Color(c))}, nil
		}
		return Style{lg: st.lg.Foreground(lipgloss.Color(c))}, nil
	}
}
