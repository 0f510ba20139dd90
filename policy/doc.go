// Package policy implements the system module load-policy resolver.
//
// For each module the resolver answers one question: LLE, loading the
// original firmware binary under emulation, or HLE, dispatching to the
// reimplemented stand-in. The answer combines the firmware path registry,
// the global modules mode, and the user-maintained LLE list.
//
// Resolution is a total, pure function: it never fails, never mutates, and
// returns the same decision for the same inputs.
package policy
