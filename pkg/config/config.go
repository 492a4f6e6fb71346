package config

import (
	"sort"
	"strings"

	"github.com/arthur-debert/chalker/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

// Profiles lists the accepted output.profile values.
var Profiles = []string{"auto", "ascii", "ansi", "ansi256", "truecolor"}

// Backends lists the accepted output.backend values.
var Backends = []string{"ansi", "theme"}

// Config is the effective chalker configuration.
type Config struct {
	Output  OutputConfig      `koanf:"output" toml:"output"`
	Remove  RemoveConfig      `koanf:"remove" toml:"remove"`
	Aliases map[string]string `koanf:"aliases" toml:"aliases"`
}

// OutputConfig selects how styled text is rendered.
type OutputConfig struct {
	Profile string `koanf:"profile" toml:"profile"`
	Backend string `koanf:"backend" toml:"backend"`
}

// RemoveConfig holds defaults for the remove command.
type RemoveConfig struct {
	KeepEntities bool `koanf:"keep_entities" toml:"keep_entities"`
}

// Validate normalizes case and checks enumerated values.
func (c *Config) Validate() error {
	c.Output.Profile = strings.ToLower(strings.TrimSpace(c.Output.Profile))
	c.Output.Backend = strings.ToLower(strings.TrimSpace(c.Output.Backend))

	if !contains(Profiles, c.Output.Profile) {
		return errors.Newf(errors.ErrConfigValid, "output.profile must be one of %s, got %q",
			strings.Join(Profiles, ", "), c.Output.Profile).
			WithDetail("key", "output.profile")
	}
	if !contains(Backends, c.Output.Backend) {
		return errors.Newf(errors.ErrConfigValid, "output.backend must be one of %s, got %q",
			strings.Join(Backends, ", "), c.Output.Backend).
			WithDetail("key", "output.backend")
	}
	for name, chain := range c.Aliases {
		if strings.TrimSpace(chain) == "" {
			return errors.Newf(errors.ErrConfigValid, "alias %q has an empty chain", name).
				WithDetail("key", "aliases."+name)
		}
		if strings.ContainsAny(name, ".<>/") {
			return errors.Newf(errors.ErrConfigValid, "alias name %q may not contain '.', '<', '>' or '/'", name).
				WithDetail("key", "aliases."+name)
		}
	}
	return nil
}

// AliasNames returns the configured alias names, sorted.
func (c *Config) AliasNames() []string {
	names := make([]string, 0, len(c.Aliases))
	for name := range c.Aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TOML renders the effective configuration in the same format as the
// config file.
func (c *Config) TOML() (string, error) {
	out, err := toml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return string(out), nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
