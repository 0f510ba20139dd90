package sysmodule

import (
	"fmt"

	"github.com/vitakit/sysmodule/catalog"
)

// Mode selects which halves of the load-policy decision apply.
//
// Mixed behavior is not a third stored value: it is what falls out of a
// mode that is neither exclusively automatic nor exclusively manual, with
// both policy checks running.
type Mode string

const (
	// ModeAutomatic enables only the built-in auto-LLE selection.
	ModeAutomatic Mode = "automatic"
	// ModeManual enables only the user-maintained LLE list.
	ModeManual Mode = "manual"
	// ModeAutoManual enables both checks.
	ModeAutoManual Mode = "auto+manual"
)

// Valid reports whether m is one of the three known modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeAutomatic, ModeManual, ModeAutoManual:
		return true
	}
	return false
}

func (m Mode) String() string {
	return string(m)
}

// ParseMode converts a configuration string into a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", fmt.Errorf("unknown modules mode %q", s)
	}
	return m, nil
}

// PathRegistry resolves a sysmodule to the firmware files that implement
// it, dependencies included. An unknown module yields an empty slice.
type PathRegistry interface {
	Paths(id catalog.ModuleID) []string
}

// ConfigSource supplies the load-policy settings. Implementations are read
// at query time; the resolver never caches them.
type ConfigSource interface {
	CurrentMode() Mode
	UserLLEPaths() []string
}

// LoadedSet answers whether the kernel has already instantiated a module
// in the current session.
type LoadedSet interface {
	Contains(id catalog.ModuleID) bool
}
