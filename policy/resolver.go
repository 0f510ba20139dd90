package policy

import (
	"github.com/vitakit/sysmodule"
	"github.com/vitakit/sysmodule/catalog"
)

// Rule identifies which part of the policy produced a decision.
type Rule uint8

const (
	// RuleNone means neither check fired: the module runs HLE.
	RuleNone Rule = iota
	// RuleNoPaths means the firmware files for the module are unknown,
	// so there is nothing to load regardless of mode or user list.
	RuleNoPaths
	// RuleAutoLLE means the module is in the automatic selection set.
	RuleAutoLLE
	// RuleUserList means one of the module's paths is on the user list.
	RuleUserList
)

func (r Rule) String() string {
	switch r {
	case RuleNoPaths:
		return "no known paths"
	case RuleAutoLLE:
		return "auto-LLE set"
	case RuleUserList:
		return "user LLE list"
	default:
		return "no rule matched"
	}
}

// Decision is the resolved policy for one module, with enough context to
// explain why it came out that way.
type Decision struct {
	MatchedPath string
	Module      catalog.ModuleID
	Rule        Rule
	LLE         bool
}

// Resolver decides LLE versus HLE for system modules. It is stateless:
// every query reads the registry and configuration fresh, so a Resolver
// is safe for concurrent use as long as its inputs are.
type Resolver struct {
	registry sysmodule.PathRegistry
}

// NewResolver creates a resolver over the given path registry. A nil
// registry selects the built-in firmware catalog.
func NewResolver(registry sysmodule.PathRegistry) *Resolver {
	if registry == nil {
		registry = catalog.Default
	}
	return &Resolver{registry: registry}
}

// IsLLE reports whether the module should be loaded from its original
// firmware binary instead of the HLE reimplementation.
func (r *Resolver) IsLLE(id catalog.ModuleID, cfg sysmodule.ConfigSource) bool {
	return r.Resolve(id, cfg).LLE
}

// Resolve runs the load policy for one module.
//
// The two checks are independent and inclusive-or'd, each gated by the
// mode that would exclude it. Mixed behavior is the absence of either
// exclusive mode, with both checks running; do not collapse this into a
// three-way switch. The empty-path guard comes first and dominates: even
// manual mode with a matching user entry cannot select a module whose
// firmware files are unknown.
func (r *Resolver) Resolve(id catalog.ModuleID, cfg sysmodule.ConfigSource) Decision {
	d := Decision{Module: id, Rule: RuleNone}

	paths := r.registry.Paths(id)
	if len(paths) == 0 {
		d.Rule = RuleNoPaths
		return d
	}

	mode := cfg.CurrentMode()

	if mode != sysmodule.ModeManual && catalog.AutoLLE(id) {
		d.LLE = true
		d.Rule = RuleAutoLLE
		return d
	}

	if mode != sysmodule.ModeAutomatic {
		userPaths := cfg.UserLLEPaths()
		for _, path := range paths {
			for _, user := range userPaths {
				if path == user {
					d.LLE = true
					d.Rule = RuleUserList
					d.MatchedPath = path
					return d
				}
			}
		}
	}

	return d
}

// ResolveAll resolves every cataloged module under the same configuration,
// in ascending ID order.
func (r *Resolver) ResolveAll(cfg sysmodule.ConfigSource) []Decision {
	ids := catalog.All()
	decisions := make([]Decision, len(ids))
	for i, id := range ids {
		decisions[i] = r.Resolve(id, cfg)
	}
	return decisions
}
