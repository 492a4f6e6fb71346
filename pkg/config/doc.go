// Package config loads chalker's configuration. Sources are layered with
// koanf, later ones winning: embedded defaults, the user config file found
// through XDG, an explicit file, CHALKER_* environment variables and
// finally command line overrides.
package config
