package style

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// StyleMap maps a tag name to the lipgloss style it selects.
type StyleMap map[string]lipgloss.Style

// ThemeStyles builds the semantic tag styles for a palette.
func ThemeStyles(r *lipgloss.Renderer, p Palette) StyleMap {
	return StyleMap{
		// Headers and titles
		"title": r.NewStyle().
			Foreground(p.Heading).
			Bold(true).
			Underline(true),
		"subtitle": r.NewStyle().
			Foreground(p.Heading).
			Bold(true),

		// Text styles
		"text":  r.NewStyle().Foreground(p.Text),
		"muted": r.NewStyle().Foreground(p.Muted),

		// Status styles
		"success": r.NewStyle().
			Foreground(p.Success).
			Bold(true),
		"error": r.NewStyle().
			Foreground(p.Error).
			Bold(true),
		"warning": r.NewStyle().
			Foreground(p.Warning).
			Bold(true),
		"info": r.NewStyle().Foreground(p.Info),

		// Code and path styles
		"code": r.NewStyle().
			Foreground(p.Primary).
			Background(p.Surface),
		"path": r.NewStyle().
			Foreground(p.Secondary).
			Italic(true),
	}
}

// attributes are the text attributes selectable by name.
var attributes = map[string]func(lipgloss.Style) lipgloss.Style{
	"bold":          func(s lipgloss.Style) lipgloss.Style { return s.Bold(true) },
	"italic":        func(s lipgloss.Style) lipgloss.Style { return s.Italic(true) },
	"underline":     func(s lipgloss.Style) lipgloss.Style { return s.Underline(true) },
	"faint":         func(s lipgloss.Style) lipgloss.Style { return s.Faint(true) },
	"dim":           func(s lipgloss.Style) lipgloss.Style { return s.Faint(true) },
	"strikethrough": func(s lipgloss.Style) lipgloss.Style { return s.Strikethrough(true) },
	"inverse":       func(s lipgloss.Style) lipgloss.Style { return s.Reverse(true) },
	"reverse":       func(s lipgloss.Style) lipgloss.Style { return s.Reverse(true) },
	"blink":         func(s lipgloss.Style) lipgloss.Style { return s.Blink(true) },
}

// ansiColors are the 16 basic terminal colors, by palette index.
var ansiColors = func() map[string]lipgloss.Color {
	names := []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}
	m := make(map[string]lipgloss.Color, 18)
	for i, name := range names {
		m[name] = lipgloss.Color(strconv.Itoa(i))
		m[name+"Bright"] = lipgloss.Color(strconv.Itoa(i + 8))
	}
	m["gray"] = lipgloss.Color("8")
	m["grey"] = lipgloss.Color("8")
	return m
}()
