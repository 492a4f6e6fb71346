package chalker

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/arthur-debert/chalker/pkg/backend/ansi"
	"github.com/arthur-debert/chalker/pkg/errors"
	"github.com/arthur-debert/chalker/pkg/logging"
	"github.com/arthur-debert/chalker/pkg/markup"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Sample is one demo entry.
type Sample struct {
	Title  string `yaml:"title"`
	Markup string `yaml:"markup"`
	// Profile, when set, renders the sample with the ANSI backend at that
	// profile unless output is plain.
	Profile string `yaml:"profile,omitempty"`
}

type sampleFile struct {
	Samples []Sample `yaml:"samples"`
}

var tagPattern = regexp.MustCompile(`(</?)([^<>]*)(>)`)

// LoadSamples parses demo samples from YAML.
func LoadSamples(data []byte) ([]Sample, error) {
	var f sampleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, MsgErrDemoSamples)
	}
	return f.Samples, nil
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "demo",
		Short:   MsgDemoShort,
		Long:    MsgDemoLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			samples, err := LoadSamples(demoSamplesRaw)
			if err != nil {
				return err
			}
			f, profile, err := a.formatter(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer logging.LogOperationStart(logging.GetLogger("cmd.demo"), "demo")()
			return runDemo(cmd.OutOrStdout(), samples, f, profile)
		},
	}
}

func runDemo(w io.Writer, samples []Sample, f *markup.Formatter, profile termenv.Profile) error {
	for _, s := range samples {
		sf := f
		if s.Profile != "" && profile != termenv.Ascii {
			p, err := parseProfile(s.Profile, w)
			if err != nil {
				return err
			}
			sf = markup.New(markup.WithBackend(ansi.New(p)))
		}

		result, err := sf.Format(s.Markup)
		if err != nil {
			return err
		}
		source, err := highlight(s.Markup, f)
		if err != nil {
			return err
		}

		if s.Title != "" {
			fmt.Fprintf(w, MsgDemoTitle, s.Title)
		}
		fmt.Fprintf(w, "   %s\n-> %s\n\n", indent(source), indent(result))
	}
	return nil
}

// highlight renders the markup source itself: tag brackets in blue, the
// chain in black with red dots, on a gray background.
func highlight(src string, f *markup.Formatter) (string, error) {
	var firstErr error
	out := tagPattern.ReplaceAllStringFunc(src, func(tag string) string {
		m := tagPattern.FindStringSubmatch(tag)
		open := strings.Replace(m[1], "<", "&lt;", 1)
		chain := strings.ReplaceAll(m[2], ".", "<red>.</>")
		styled, err := f.Format("<blue>" + open + "</><black>" + chain + "</><blue>&gt;</>")
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return styled
	})
	if firstErr != nil {
		return "", firstErr
	}
	return markup.Apply("bgKeyword(gray)", out, f.Backend())
}

func indent(s string) string {
	return strings.ReplaceAll(s, "\n", "\n   ")
}
