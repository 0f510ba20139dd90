package catalog

import (
	"strings"
	"testing"
)

func TestPaths_ReturnsCopy(t *testing.T) {
	paths := Paths(SSL)
	if len(paths) == 0 {
		t.Fatal("SSL should have known paths")
	}

	paths[0] = "mutated"
	if Paths(SSL)[0] == "mutated" {
		t.Fatal("Paths must return a copy of the table entry")
	}
}

func TestPaths_Unknown(t *testing.T) {
	if paths := Paths(ModuleID(0xFFFF)); paths != nil {
		t.Fatalf("unknown module returned paths %v", paths)
	}
	// Cataloged but HLE-only modules have no paths either.
	if paths := Paths(Net); paths != nil {
		t.Fatalf("net returned paths %v", paths)
	}
}

func TestPaths_Shape(t *testing.T) {
	for _, id := range All() {
		for _, p := range Paths(id) {
			if !strings.HasPrefix(p, FirmwareDir+"/") {
				t.Errorf("%s: path %q not under %s", id, p, FirmwareDir)
			}
			if !strings.HasSuffix(p, ".suprx") {
				t.Errorf("%s: path %q is not a .suprx module", id, p)
			}
		}
	}
}

func TestAutoLLE_Membership(t *testing.T) {
	want := []ModuleID{
		HTTP, SSL, HTTPS, SAS, PGF, SystemGesture, XML, MP4, Atrac, AvPlayer, JSON,
	}
	for _, id := range want {
		if !AutoLLE(id) {
			t.Errorf("%s should be in the auto-LLE set", id)
		}
	}
	if got := len(AutoLLEModules()); got != len(want) {
		t.Errorf("auto-LLE set has %d modules, want %d", got, len(want))
	}
	if AutoLLE(Fiber) {
		t.Error("fiber must not be in the auto-LLE set")
	}
	if AutoLLE(ModuleID(0xFFFF)) {
		t.Error("unknown module must not be in the auto-LLE set")
	}
}

func TestAutoLLE_AllHavePaths(t *testing.T) {
	// An auto-LLE module without a loadable binary would silently fall
	// back to HLE; keep the two tables consistent.
	for _, id := range AutoLLEModules() {
		if len(Paths(id)) == 0 {
			t.Errorf("%s is auto-LLE but has no firmware paths", id)
		}
	}
}

func TestNames(t *testing.T) {
	for _, id := range All() {
		name := Name(id)
		if name == "" {
			t.Fatalf("cataloged module 0x%04X has no name", uint32(id))
		}
		back, ok := ByName(name)
		if !ok || back != id {
			t.Errorf("ByName(%q) = %v, %v; want %v", name, back, ok, id)
		}
	}

	if Name(ModuleID(0xFFFF)) != "" {
		t.Error("unknown module should have empty name")
	}
	if ModuleID(0xFFFF).String() != "unknown" {
		t.Error("unknown module should print as unknown")
	}
	if _, ok := ByName("no_such_module"); ok {
		t.Error("ByName accepted a bogus name")
	}
}

func TestAll_Sorted(t *testing.T) {
	ids := All()
	if len(ids) == 0 {
		t.Fatal("catalog is empty")
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("All() not strictly ascending at %d: %v >= %v", i, ids[i-1], ids[i])
		}
	}
	for _, id := range ids {
		if !Known(id) {
			t.Errorf("All() returned unknown module %v", id)
		}
	}
}
