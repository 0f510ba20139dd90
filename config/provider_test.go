package config

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vitakit/sysmodule"
	"github.com/vitakit/sysmodule/errors"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestProvider_LoadFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
modules-mode: "manual"
lle-modules:
  - "vs0/sys/external/libfiber.suprx"
  - "vs0/sys/external/libult.suprx"
`)

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.CurrentMode() != sysmodule.ModeManual {
		t.Errorf("mode = %s, want manual", cfg.CurrentMode())
	}
	if len(cfg.UserLLEPaths()) != 2 {
		t.Errorf("LLE list = %v, want two entries", cfg.UserLLEPaths())
	}
}

func TestProvider_DirLookup(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `modules-mode: "auto+manual"`)

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.CurrentMode() != sysmodule.ModeAutoManual {
		t.Errorf("mode = %s, want auto+manual", cfg.CurrentMode())
	}
}

func TestProvider_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.CurrentMode() != sysmodule.ModeAutomatic {
		t.Errorf("mode = %s, want automatic default", cfg.CurrentMode())
	}
}

func TestProvider_ExplicitFileMustExist(t *testing.T) {
	_, err := NewProvider().Load(context.Background(), LoadOptions{
		ConfigFilePath: filepath.Join(t.TempDir(), "nope.yml"),
	})
	if err == nil {
		t.Fatal("expected error for missing explicit file")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseConfig, Kind: errors.KindNotFound}) {
		t.Errorf("error %v is not a config not_found error", err)
	}
}

func TestProvider_BadMode(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `modules-mode: "sometimes"`)

	_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: path})
	if err == nil {
		t.Fatal("expected error for unknown mode")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseConfig, Kind: errors.KindInvalidData}) {
		t.Errorf("error %v is not a config invalid_data error", err)
	}
}

func TestProvider_BadYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "modules-mode: [unterminated")

	if _, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: path}); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestProvider_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewProvider().Load(ctx, LoadOptions{}); err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestSaveRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ConfigFileName)
	cfg := Config{
		ModulesMode: sysmodule.ModeManual,
		LLEModules:  []string{"vs0/sys/external/libsas.suprx"},
	}

	if err := Save(&cfg, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.CurrentMode() != cfg.ModulesMode {
		t.Errorf("mode = %s after roundtrip, want %s", loaded.CurrentMode(), cfg.ModulesMode)
	}
	if len(loaded.UserLLEPaths()) != 1 || loaded.UserLLEPaths()[0] != cfg.LLEModules[0] {
		t.Errorf("LLE list = %v after roundtrip", loaded.UserLLEPaths())
	}
}
