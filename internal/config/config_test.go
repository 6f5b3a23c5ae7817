package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate points the home and working directories at empty temp dirs so
// only the embedded defaults are visible.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadSettingsEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, src, err := LoadSettings("")
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %q, expected embedded", src)
	}
	if cfg != DefaultSettings() {
		t.Errorf("embedded settings = %+v, expected %+v", cfg, DefaultSettings())
	}
	if cfg.TickInterval() != 600*time.Millisecond {
		t.Errorf("TickInterval() = %v", cfg.TickInterval())
	}
}

func TestLoadSettingsSearchOrder(t *testing.T) {
	home := isolate(t)

	writeFile(t, filepath.Join("configs", SettingsFile), "tick_ms: 300\n")
	cfg, src, err := LoadSettings("")
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if src != filepath.Join("configs", SettingsFile) || cfg.TickMS != 300 {
		t.Errorf("local config not used: src=%q tick=%d", src, cfg.TickMS)
	}

	// User directory wins over ./configs
	writeFile(t, filepath.Join(home, ".skillquest", "configs", SettingsFile), "tick_ms: 200\n")
	cfg, _, _ = LoadSettings("")
	if cfg.TickMS != 200 {
		t.Errorf("user config not preferred, tick=%d", cfg.TickMS)
	}

	// Explicit path wins over everything
	custom := filepath.Join(t.TempDir(), "mine.yaml")
	writeFile(t, custom, "tick_ms: 100\nvault:\n  stack_limit: 25\n")
	cfg, src, err = LoadSettings(custom)
	if err != nil {
		t.Fatalf("LoadSettings(custom) failed: %v", err)
	}
	if src != custom || cfg.TickMS != 100 || cfg.Vault.StackLimit != 25 {
		t.Errorf("custom config: src=%q cfg=%+v", src, cfg)
	}
	// Unset fields keep their defaults
	if cfg.FPS != 60 || cfg.Inventory.Capacity != 50 {
		t.Errorf("partial file should keep defaults, got %+v", cfg)
	}
}

func TestLoadSettingsErrors(t *testing.T) {
	isolate(t)

	if _, _, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "tick_ms: [")
	if _, _, err := LoadSettings(bad); err == nil {
		t.Error("malformed yaml should fail")
	}

	negative := filepath.Join(t.TempDir(), "neg.yaml")
	writeFile(t, negative, "inventory:\n  capacity: -3\n")
	if _, _, err := LoadSettings(negative); !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("negative capacity error = %v, expected ErrInvalidSettings", err)
	}
}

func TestSettingsConversions(t *testing.T) {
	cfg := DefaultSettings()
	cfg.TickMS = 250
	cfg.FPS = 30
	cfg.Seed = 9

	rt := cfg.Runtime()
	if rt.TickInterval != 250*time.Millisecond || rt.FPS != 30 || rt.Seed != 9 {
		t.Errorf("Runtime() = %+v", rt)
	}

	opts := cfg.PlayerOptions()
	if opts.InventoryCapacity != 50 || opts.VaultCapacity != 100 || opts.Partitions != 10 {
		t.Errorf("PlayerOptions() = %+v", opts)
	}
}

func TestLoadCatalog(t *testing.T) {
	isolate(t)

	cat, src, err := LoadCatalog("")
	if err != nil {
		t.Fatalf("LoadCatalog() failed: %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %q, expected embedded", src)
	}
	if len(cat.Resources()) != 5 {
		t.Errorf("embedded catalog has %d resources, expected 5", len(cat.Resources()))
	}
	gold, ok := cat.ResourceByName("gold")
	if !ok || gold.MinLevel() != 20 {
		t.Error("embedded catalog should match the built-in one")
	}

	custom := filepath.Join(t.TempDir(), "cat.yaml")
	writeFile(t, custom, `
items: [{id: clay}]
resources:
  - {id: pit, drops: [{item: clay, level: 1, exp: 2, rate: 3}]}
`)
	cat, _, err = LoadCatalog(custom)
	if err != nil {
		t.Fatalf("LoadCatalog(custom) failed: %v", err)
	}
	if _, ok := cat.ResourceByName("pit"); !ok {
		t.Error("custom catalog not loaded")
	}
}

func TestLoadCatalogInvalidFileFails(t *testing.T) {
	isolate(t)
	writeFile(t, filepath.Join("configs", CatalogFile), `
resources:
  - {id: pit, drops: [{item: clay, level: 1, exp: 2, rate: 0}]}
`)

	if _, _, err := LoadCatalog(""); err == nil {
		t.Error("an invalid catalog on disk should fail instead of falling through")
	}
}

func TestExpandHome(t *testing.T) {
	home := isolate(t)

	got, err := ExpandHome("~/.skillquest/records.db")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, ".skillquest", "records.db") {
		t.Errorf("ExpandHome() = %q", got)
	}
	if got, _ := ExpandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed to %q", got)
	}
}
