// Package config persists the two settings the load policy consumes: the
// global modules mode and the user-maintained LLE path list.
//
// Configuration lives in a small YAML file:
//
//	modules-mode: "manual"
//	lle-modules:
//	  - "vs0/sys/external/libfiber.suprx"
//	  - "vs0/sys/external/libult.suprx"
//
// Load it through a Provider:
//
//	cfg, err := config.NewProvider().Load(ctx, config.LoadOptions{})
//
// A missing file is not an error; Default() applies. Any UI that edits
// these two fields (the llectl TUI here, or a substituted frontend) writes
// them back with Save.
package config
