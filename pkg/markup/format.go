package markup

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/chalker/pkg/backend"
	"github.com/arthur-debert/chalker/pkg/entities"
	"github.com/arthur-debert/chalker/pkg/logging"
	"github.com/rs/zerolog"

	// registers the default backend
	_ "github.com/arthur-debert/chalker/pkg/backend/ansi"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Formatter renders markup with a fixed backend.
type Formatter struct {
	backend backend.Backend
	aliases map[string]string
	logger  zerolog.Logger
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithBackend selects the backend instead of backend.Default().
func WithBackend(b backend.Backend) Option {
	return func(f *Formatter) {
		if b != nil {
			f.backend = b
		}
	}
}

// WithLogger replaces the component logger.
func WithLogger(l zerolog.Logger) Option {
	return func(f *Formatter) {
		f.logger = l
	}
}

// New creates a Formatter. Without WithBackend it uses the process default
// backend as it is at the time of the call.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		logger: logging.GetLogger("markup"),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.backend == nil {
		f.backend = backend.Default()
	}
	if f.aliases != nil {
		f.backend = aliasBackend{Backend: f.backend, aliases: f.aliases}
	}
	return f
}

// Backend returns the backend the formatter renders with.
func (f *Formatter) Backend() backend.Backend {
	return f.backend
}

// Format renders the tags in s and decodes HTML references.
func (f *Formatter) Format(s string) (string, error) {
	if s == "" {
		return "", nil
	}

	tokens := Tokenize(s)
	f.logger.Trace().
		Int("tokens", len(tokens)).
		Str("backend", f.backend.Name()).
		Msg("Rendering markup")

	out, err := Render(tokens, f.backend)
	if err != nil {
		f.logger.Debug().Err(err).Msg("Markup rejected")
		return "", err
	}
	return entities.Decode(out), nil
}

// Format renders s with a one-off Formatter.
func Format(s string, opts ...Option) (string, error) {
	return New(opts...).Format(s)
}

// MustFormat is Format for markup known to be valid; it panics on error.
func MustFormat(s string, opts ...Option) string {
	out, err := Format(s, opts...)
	if err != nil {
		panic(err)
	}
	return out
}

// Remove strips every <...> tag from s without checking nesting, trims the
// result and, unless keepEntities is set, decodes HTML references.
func Remove(s string, keepEntities bool) string {
	out := strings.TrimSpace(tagPattern.ReplaceAllString(s, ""))
	if keepEntities {
		return out
	}
	return entities.Decode(out)
}

// DecodeHTML decodes the HTML references supported in markup.
func DecodeHTML(s string) string {
	return entities.Decode(s)
}
