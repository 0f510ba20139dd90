package config

import (
	"github.com/vitakit/sysmodule"
)

// Config holds the load-policy settings the resolver consumes. The zero
// value is not meaningful; start from Default().
//
// Callers own Config and synchronize concurrent mutation themselves; the
// resolver only ever reads it.
type Config struct {
	// ModulesMode selects automatic, manual, or combined LLE selection.
	ModulesMode sysmodule.Mode `mapstructure:"modules-mode"`
	// LLEModules is the user-maintained list of firmware file paths
	// authorized for LLE. A path here authorizes LLE for whichever
	// module owns it.
	LLEModules []string `mapstructure:"lle-modules"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		ModulesMode: sysmodule.ModeAutomatic,
	}
}

// CurrentMode implements sysmodule.ConfigSource. An unset or corrupted
// mode degrades to automatic rather than failing.
func (c *Config) CurrentMode() sysmodule.Mode {
	if !c.ModulesMode.Valid() {
		return sysmodule.ModeAutomatic
	}
	return c.ModulesMode
}

// UserLLEPaths implements sysmodule.ConfigSource.
func (c *Config) UserLLEPaths() []string {
	return c.LLEModules
}

// HasLLEPath reports whether path is on the user LLE list.
func (c *Config) HasLLEPath(path string) bool {
	for _, p := range c.LLEModules {
		if p == path {
			return true
		}
	}
	return false
}

// ToggleLLEPath adds path to the user LLE list if absent, removes it if
// present, and reports whether the path is on the list afterwards.
func (c *Config) ToggleLLEPath(path string) bool {
	for i, p := range c.LLEModules {
		if p == path {
			c.LLEModules = append(c.LLEModules[:i], c.LLEModules[i+1:]...)
			return false
		}
	}
	c.LLEModules = append(c.LLEModules, path)
	return true
}

// ClearLLE empties the user LLE list.
func (c *Config) ClearLLE() {
	c.LLEModules = nil
}

// Clone returns a deep copy.
func (c *Config) Clone() Config {
	out := *c
	if c.LLEModules != nil {
		out.LLEModules = make([]string, len(c.LLEModules))
		copy(out.LLEModules, c.LLEModules)
	}
	return out
}
