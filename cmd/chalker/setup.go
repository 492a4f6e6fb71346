package chalker

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/chalker/pkg/backend"
	"github.com/arthur-debert/chalker/pkg/backend/ansi"
	"github.com/arthur-debert/chalker/pkg/config"
	"github.com/arthur-debert/chalker/pkg/errors"
	"github.com/arthur-debert/chalker/pkg/logging"
	"github.com/arthur-debert/chalker/pkg/markup"
	"github.com/arthur-debert/chalker/pkg/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// app carries the global flags and the configuration loaded from them.
type app struct {
	verbosity  int
	configFile string
	profile    string
	backend    string

	cfg *config.Config
}

// load reads the configuration, letting explicitly set flags win.
func (a *app) load(cmd *cobra.Command) error {
	overrides := map[string]interface{}{}
	flags := cmd.Root().PersistentFlags()
	if flags.Changed("profile") {
		overrides["output.profile"] = a.profile
	}
	if flags.Changed("backend") {
		overrides["output.backend"] = a.backend
	}

	cfg, err := config.Load(config.Options{
		File:      a.configFile,
		Overrides: overrides,
	})
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// parseProfile maps a profile name to a termenv profile. With "auto",
// NO_COLOR and non-terminal output get plain text.
func parseProfile(name string, out io.Writer) (termenv.Profile, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return detectProfile(out), nil
	case "ascii":
		return termenv.Ascii, nil
	case "ansi":
		return termenv.ANSI, nil
	case "ansi256":
		return termenv.ANSI256, nil
	case "truecolor":
		return termenv.TrueColor, nil
	default:
		return termenv.Ascii, errors.Newf(errors.ErrInvalidInput, MsgErrBadProfile,
			name, strings.Join(config.Profiles, ", "))
	}
}

func detectProfile(out io.Writer) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if !isTerminal(out) {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// newBackend builds the configured backend for output written to out.
func newBackend(name string, profile termenv.Profile, out io.Writer) (backend.Backend, error) {
	switch strings.ToLower(name) {
	case "", ansi.Name:
		return ansi.New(profile), nil
	case style.Name:
		r := lipgloss.NewRenderer(out)
		r.SetColorProfile(profile)
		return style.NewBackend(r), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, MsgErrBadBackend,
			name, strings.Join(config.Backends, ", "))
	}
}

// formatter assembles a markup formatter from the loaded configuration.
func (a *app) formatter(out io.Writer) (*markup.Formatter, termenv.Profile, error) {
	profile, err := parseProfile(a.cfg.Output.Profile, out)
	if err != nil {
		return nil, profile, err
	}
	b, err := newBackend(a.cfg.Output.Backend, profile, out)
	if err != nil {
		return nil, profile, err
	}

	logger := logging.GetLogger("cmd")
	logger.Debug().
		Str("backend", b.Name()).
		Str("profile", profileName(profile)).
		Int("aliases", len(a.cfg.Aliases)).
		Msg("Formatter ready")

	return markup.New(
		markup.WithBackend(b),
		markup.WithAliases(a.cfg.Aliases),
		markup.WithLogger(logging.GetLogger("markup")),
	), profile, nil
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.ANSI:
		return "ansi"
	default:
		return "ascii"
	}
}
