package chalker

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/chalker/internal/version"
	"github.com/arthur-debert/chalker/pkg/config"
	"github.com/arthur-debert/chalker/pkg/errors"
	"github.com/arthur-debert/chalker/pkg/logging"
	"github.com/arthur-debert/chalker/pkg/markup"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "chalker",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Setup logging based on verbosity
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return a.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			// Show help but return an error to indicate incorrect usage
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&a.profile, "profile", "auto", MsgFlagProfile)
	rootCmd.PersistentFlags().StringVar(&a.backend, "backend", "ansi", MsgFlagBackend)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newFormatCmd(a))
	rootCmd.AddCommand(newRemoveCmd(a))
	rootCmd.AddCommand(newDecodeCmd())
	rootCmd.AddCommand(newDemoCmd(a))
	rootCmd.AddCommand(newSyntaxCmd())
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newFormatCmd(a *app) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:     "format [text...]",
		Short:   MsgFormatShort,
		Long:    MsgFormatLong,
		Example: MsgFormatExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			if plain {
				return writeResult(cmd.OutOrStdout(), markup.Remove(input, false))
			}

			f, _, err := a.formatter(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			done := logging.LogOperationStart(logging.GetLogger("cmd.format"), "format")
			out, err := f.Format(input)
			done()
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, MsgFlagPlain)
	return cmd
}

func newRemoveCmd(a *app) *cobra.Command {
	var keepEntities bool

	cmd := &cobra.Command{
		Use:     "remove [text...]",
		Short:   MsgRemoveShort,
		Long:    MsgRemoveLong,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("keep-entities") {
				keepEntities = a.cfg.Remove.KeepEntities
			}
			return writeResult(cmd.OutOrStdout(), markup.Remove(input, keepEntities))
		},
	}

	cmd.Flags().BoolVar(&keepEntities, "keep-entities", false, MsgFlagKeepEntities)
	return cmd
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "decode [text...]",
		Short:   MsgDecodeShort,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), markup.DecodeHTML(input))
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.DefaultsContent())
				return err
			}
			out, err := a.cfg.TOML()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

// ErrorHint suggests where to look after a markup failure, or returns ""
// for other errors.
func ErrorHint(err error) string {
	if !errors.GetErrorCode(err).Markup() {
		return ""
	}
	if marker, ok := errors.MarkerOf(err); ok {
		return fmt.Sprintf(MsgHintMarker, marker)
	}
	return MsgHintSyntax
}

// readInput joins the arguments, or reads standard input when there are
// none or the only argument is "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(bufio.NewReader(cmd.InOrStdin()))
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, MsgErrReadInput)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

func writeResult(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, s)
	return err
}
