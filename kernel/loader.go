package kernel

import (
	"context"

	"go.uber.org/zap"

	"github.com/vitakit/sysmodule"
	"github.com/vitakit/sysmodule/catalog"
	"github.com/vitakit/sysmodule/errors"
	"github.com/vitakit/sysmodule/policy"
)

// Backend performs the actual load of a module once policy has decided.
// Executing the loaded code is entirely the backend's business.
type Backend interface {
	Load(ctx context.Context, d policy.Decision) error
}

// Result describes the outcome of a Loader.Load call.
type Result struct {
	Decision      policy.Decision
	AlreadyLoaded bool
}

// Loader drives a module load end to end: check the session set, resolve
// the policy, hand off to the backend, record the load.
type Loader struct {
	cfg      sysmodule.ConfigSource
	backend  Backend
	resolver *policy.Resolver
	loaded   *LoadedModules
}

// NewLoader creates a loader. A nil registry selects the built-in
// catalog. A nil backend skips the load step and only records decisions,
// which is enough for inspection tooling.
func NewLoader(registry sysmodule.PathRegistry, cfg sysmodule.ConfigSource, backend Backend) *Loader {
	return &Loader{
		cfg:      cfg,
		backend:  backend,
		resolver: policy.NewResolver(registry),
		loaded:   NewLoadedModules(),
	}
}

// Loaded exposes the session's loaded-module set.
func (l *Loader) Loaded() *LoadedModules {
	return l.loaded
}

// Resolver exposes the loader's policy resolver.
func (l *Loader) Resolver() *policy.Resolver {
	return l.resolver
}

// Load loads one module. A module already loaded this session is returned
// as-is without touching the backend.
func (l *Loader) Load(ctx context.Context, id catalog.ModuleID) (Result, error) {
	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	default:
	}

	d := l.resolver.Resolve(id, l.cfg)

	if l.loaded.Contains(id) {
		Logger().Debug("module already loaded",
			zap.Stringer("module", id))
		return Result{Decision: d, AlreadyLoaded: true}, nil
	}

	if l.backend != nil {
		if err := l.backend.Load(ctx, d); err != nil {
			return Result{}, errors.LoadFailed(catalog.Name(id), err)
		}
	}

	l.loaded.Record(id)
	Logger().Info("module loaded",
		zap.Stringer("module", id),
		zap.Bool("lle", d.LLE),
		zap.Stringer("rule", d.Rule))

	return Result{Decision: d}, nil
}
