package chalker

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Render inline markup as styled terminal text"
	MsgFormatShort  = "Render markup"
	MsgRemoveShort  = "Strip markup tags"
	MsgDecodeShort  = "Decode HTML entities"
	MsgDemoShort    = "Show markup samples"
	MsgSyntaxShort  = "Show the markup reference"
	MsgConfigShort  = "Print the effective configuration"
	MsgVersionShort = "Print version information"

	// Output formats
	MsgVersionFormat = "chalker version %s\n  commit: %s\n  built:  %s\n"
	MsgDemoTitle     = "# %s\n"

	// Error messages
	MsgErrNoCommand   = "no command specified"
	MsgErrReadInput   = "failed to read input"
	MsgErrBadProfile  = "unknown color profile %q (want %s)"
	MsgErrBadBackend  = "unknown backend %q (want %s)"
	MsgErrDemoSamples = "failed to load demo samples"

	// Hints
	MsgHintMarker = "check %s, or run 'chalker syntax' for the markup reference"
	MsgHintSyntax = "run 'chalker syntax' for the markup reference"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig       = "Config file (default is $XDG_CONFIG_HOME/chalker/config.toml)"
	MsgFlagProfile      = "Color profile: auto, ascii, ansi, ansi256 or truecolor"
	MsgFlagBackend      = "Style backend: ansi or theme"
	MsgFlagPlain        = "Strip tags instead of rendering them"
	MsgFlagKeepEntities = "Leave HTML entities undecoded"
	MsgFlagDefaults     = "Print the embedded defaults instead"
	MsgFlagWidth        = "Wrap width for the rendered reference (0 = renderer default)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/format-long.txt
	msgFormatLongRaw string
	MsgFormatLong    = strings.TrimSpace(msgFormatLongRaw)

	//go:embed msgs/format-example.txt
	msgFormatExampleRaw string
	MsgFormatExample    = strings.TrimRight(msgFormatExampleRaw, "\n")

	//go:embed msgs/remove-long.txt
	msgRemoveLongRaw string
	MsgRemoveLong    = strings.TrimSpace(msgRemoveLongRaw)

	//go:embed msgs/demo-long.txt
	msgDemoLongRaw string
	MsgDemoLong    = strings.TrimSpace(msgDemoLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/syntax.md
	MsgSyntax string

	//go:embed msgs/demo.yaml
	demoSamplesRaw []byte
)
