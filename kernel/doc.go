// Package kernel tracks which system modules the emulated kernel has
// instantiated and orchestrates load attempts against the load policy.
//
// LoadedModules is explicit state owned by the caller, never an ambient
// global. It answers the double-load question:
//
//	loaded := kernel.NewLoadedModules()
//	if loaded.Contains(catalog.SSL) {
//	    return // nothing to do
//	}
//
// Loader composes the pieces:
//
//	loader := kernel.NewLoader(nil, cfg, backend)
//	res, err := loader.Load(ctx, catalog.HTTPS)
//	// res.Decision says LLE or HLE and which rule decided it
//
// Observers can watch the set grow and reset, mirroring the lifecycle
// notifications used elsewhere in the emulator.
package kernel
