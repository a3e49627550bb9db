package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TEMPURA_ADDR", "TEMPURA_DATA_DIR", "TEMPURA_MENU_FILE",
		"TEMPURA_BILLS_FILE", "TEMPURA_CONFIG", "DEBUG",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr != DefaultAddr {
		t.Errorf("Addr = %s, expected %s", cfg.Addr, DefaultAddr)
	}
	if cfg.MenuFile != DefaultMenuFile || cfg.BillsFile != DefaultBillsFile {
		t.Errorf("files = %s/%s, expected defaults", cfg.MenuFile, cfg.BillsFile)
	}
	if len(cfg.Restaurant.Tables) != 8 {
		t.Errorf("default table count = %d, expected 8", len(cfg.Restaurant.Tables))
	}
	if cfg.Debug {
		t.Error("Debug defaulted to true")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TEMPURA_ADDR", "0.0.0.0:8080")
	t.Setenv("TEMPURA_DATA_DIR", "/var/lib/tempura")
	t.Setenv("TEMPURA_MENU_FILE", "catalog.csv")
	t.Setenv("DEBUG", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr != "0.0.0.0:8080" {
		t.Errorf("Addr = %s, expected override", cfg.Addr)
	}
	if got := cfg.MenuPath(); got != filepath.Join("/var/lib/tempura", "catalog.csv") {
		t.Errorf("MenuPath = %s", got)
	}
	if got := cfg.BillsPath(); got != filepath.Join("/var/lib/tempura", "bills.csv") {
		t.Errorf("BillsPath = %s", got)
	}
	if !cfg.Debug {
		t.Error("Debug not picked up")
	}
}

func TestLoadRestaurantYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "tempura.yaml")
	content := "name: Chai Corner\ntables: [T1, T2, T3]\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	t.Setenv("TEMPURA_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Restaurant.Name != "Chai Corner" {
		t.Errorf("Name = %s, expected Chai Corner", cfg.Restaurant.Name)
	}
	// Address left empty in the file keeps its default.
	if cfg.Restaurant.Address == "" {
		t.Error("Address default lost")
	}
	if len(cfg.Restaurant.Tables) != 3 || cfg.Restaurant.Tables[0] != "T1" {
		t.Errorf("Tables = %v, expected the file's list", cfg.Restaurant.Tables)
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("TEMPURA_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	if _, err := Load(); err == nil {
		t.Error("expected error for missing config file")
	}
}
