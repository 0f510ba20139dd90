package kernel

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/vitakit/sysmodule"
	"github.com/vitakit/sysmodule/catalog"
	"github.com/vitakit/sysmodule/config"
	"github.com/vitakit/sysmodule/errors"
	"github.com/vitakit/sysmodule/policy"
)

type fakeBackend struct {
	calls []policy.Decision
	err   error
}

func (b *fakeBackend) Load(_ context.Context, d policy.Decision) error {
	b.calls = append(b.calls, d)
	return b.err
}

func TestLoader_Load(t *testing.T) {
	cfg := config.Default()
	backend := &fakeBackend{}
	loader := NewLoader(nil, &cfg, backend)

	res, err := loader.Load(context.Background(), catalog.SSL)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !res.Decision.LLE {
		t.Error("SSL should load as LLE under automatic mode")
	}
	if res.AlreadyLoaded {
		t.Error("first load reported AlreadyLoaded")
	}
	if !loader.Loaded().Contains(catalog.SSL) {
		t.Error("load not recorded in session set")
	}
	if len(backend.calls) != 1 {
		t.Fatalf("backend called %d times, want 1", len(backend.calls))
	}
	if backend.calls[0].Module != catalog.SSL {
		t.Errorf("backend saw module %s", backend.calls[0].Module)
	}
}

func TestLoader_DoubleLoad(t *testing.T) {
	cfg := config.Default()
	backend := &fakeBackend{}
	loader := NewLoader(nil, &cfg, backend)

	if _, err := loader.Load(context.Background(), catalog.HTTP); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	res, err := loader.Load(context.Background(), catalog.HTTP)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if !res.AlreadyLoaded {
		t.Error("second load should report AlreadyLoaded")
	}
	if len(backend.calls) != 1 {
		t.Errorf("backend called %d times, want 1", len(backend.calls))
	}
}

func TestLoader_HLEModulesRecorded(t *testing.T) {
	// Modules without firmware binaries still load, through HLE stubs;
	// the session set tracks them all the same.
	cfg := config.Default()
	loader := NewLoader(nil, &cfg, &fakeBackend{})

	res, err := loader.Load(context.Background(), catalog.Net)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if res.Decision.LLE {
		t.Error("net has no firmware binary and cannot be LLE")
	}
	if res.Decision.Rule != policy.RuleNoPaths {
		t.Errorf("Rule = %v, want RuleNoPaths", res.Decision.Rule)
	}
	if !loader.Loaded().Contains(catalog.Net) {
		t.Error("HLE load not recorded")
	}
}

func TestLoader_BackendError(t *testing.T) {
	cfg := config.Default()
	backend := &fakeBackend{err: stderrors.New("self load failed")}
	loader := NewLoader(nil, &cfg, backend)

	_, err := loader.Load(context.Background(), catalog.SAS)
	if err == nil {
		t.Fatal("expected error from failing backend")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseLoad, Kind: errors.KindLoadFailed}) {
		t.Errorf("error %v is not a load_failed error", err)
	}
	if loader.Loaded().Contains(catalog.SAS) {
		t.Error("failed load must not be recorded")
	}
}

func TestLoader_NilBackend(t *testing.T) {
	cfg := config.Config{ModulesMode: sysmodule.ModeAutoManual}
	loader := NewLoader(nil, &cfg, nil)

	res, err := loader.Load(context.Background(), catalog.PGF)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !res.Decision.LLE {
		t.Error("PGF should resolve LLE under auto+manual")
	}
	if !loader.Loaded().Contains(catalog.PGF) {
		t.Error("decision-only load not recorded")
	}
}

func TestLoader_ContextCanceled(t *testing.T) {
	cfg := config.Default()
	loader := NewLoader(nil, &cfg, &fakeBackend{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := loader.Load(ctx, catalog.SSL); err == nil {
		t.Fatal("expected error for canceled context")
	}
	if loader.Loaded().Contains(catalog.SSL) {
		t.Error("canceled load must not be recorded")
	}
}

func TestLoader_SessionReset(t *testing.T) {
	cfg := config.Default()
	backend := &fakeBackend{}
	loader := NewLoader(nil, &cfg, backend)

	loader.Load(context.Background(), catalog.SSL)
	loader.Loaded().Reset()

	res, err := loader.Load(context.Background(), catalog.SSL)
	if err != nil {
		t.Fatalf("Load after reset failed: %v", err)
	}
	if res.AlreadyLoaded {
		t.Error("load after session reset reported AlreadyLoaded")
	}
	if len(backend.calls) != 2 {
		t.Errorf("backend called %d times, want 2", len(backend.calls))
	}
}
