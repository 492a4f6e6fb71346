package markup

import (
	"github.com/arthur-debert/chalker/pkg/backend"
)

// maxAliasDepth bounds alias expansion so self-referencing aliases fail
// instead of recursing forever.
const maxAliasDepth = 8

// aliasBackend makes named directive chains usable as basic styles, so
// with warn = "yellow.bold" the tag <warn> means <yellow.bold>.
type aliasBackend struct {
	backend.Backend
	aliases map[string]string
	depth   int
}

// WithAliases adds named chains on top of the formatter's backend.
// Aliases are checked before the backend's own basic styles.
func WithAliases(aliases map[string]string) Option {
	return func(f *Formatter) {
		if len(aliases) > 0 {
			f.aliases = aliases
		}
	}
}

// Basic implements backend.Backend.
func (a aliasBackend) Basic(s backend.Style, name string) (backend.Style, bool) {
	chain, ok := a.aliases[name]
	if !ok {
		return a.Backend.Basic(s, name)
	}
	if a.depth >= maxAliasDepth {
		return nil, false
	}

	inner := aliasBackend{Backend: a.Backend, aliases: a.aliases, depth: a.depth + 1}
	st, err := resolveFrom(chain, s, inner)
	if err != nil {
		return nil, false
	}
	return st, true
}
