// Package errors provides structured error types for the sysmodule library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category), with optional module name, field path, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConfig, errors.KindInvalidData).
//		Path("modules-mode").
//		Value("sometimes").
//		Detail("unknown modules mode").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NotFound(errors.PhaseCatalog, "module", "libfoo")
//	err := errors.LoadFailed("ssl", cause)
//
// All errors implement the standard error interface and support errors.Is/As.
//
// The policy resolver and loaded-module tracker themselves never return
// errors; they are total functions. This package serves the fallible edges:
// configuration files, catalog name lookups, and the load orchestration.
package errors
