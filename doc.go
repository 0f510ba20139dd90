// Package sysmodule decides how PlayStation Vita system modules are
// emulated: LLE (the original firmware binary is loaded and executed) or
// HLE (a reimplemented native stand-in answers in its place).
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	sysmodule/       Root package with Mode and the collaborator interfaces
//	├── catalog/     Module identifiers, firmware path registry, auto-LLE set
//	├── policy/      The LLE-vs-HLE load-policy resolver
//	├── kernel/      Loaded-module tracking and load orchestration
//	├── config/      Modules mode and user LLE list, persisted as YAML
//	├── errors/      Structured error types for debugging
//	└── cmd/llectl/  CLI and interactive TUI over the policy
//
// # Quick Start
//
// Resolve the policy for one module:
//
//	cfg := config.Default()
//	r := policy.NewResolver(nil) // nil selects the built-in catalog
//
//	if r.IsLLE(catalog.SSL, &cfg) {
//	    // load vs0/sys/external/libssl.suprx under emulation
//	} else {
//	    // fall back to the HLE reimplementation
//	}
//
// Drive a full load through the kernel loader:
//
//	loader := kernel.NewLoader(nil, &cfg, backend)
//	res, err := loader.Load(ctx, catalog.HTTPS)
//
// # Decision Semantics
//
// A module with no known firmware paths is never LLE, whatever the mode or
// user list says: there is nothing to load. Otherwise two independent checks
// apply, each gated by the mode that would exclude it:
//
//   - mode != manual: modules in the fixed auto-LLE set are LLE
//   - mode != automatic: modules with a path on the user list are LLE
//
// # Thread Safety
//
// Resolver and catalog queries are pure reads and safe for concurrent use.
// kernel.LoadedModules synchronizes its own mutation; Config is owned and
// synchronized by the caller.
package sysmodule
