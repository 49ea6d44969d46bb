// ABOUTME: Tests for configuration loading and saving.
// ABOUTME: Verifies defaults, round-trips, and env-based data dir override.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

func isolateXDG(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	isolateXDG(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Engine == "" || cfg.Model == "" {
		t.Errorf("defaults incomplete: %+v", cfg)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	isolateXDG(t)

	cfg := DefaultConfig()
	cfg.Engine = "http://localhost:9999"
	cfg.Model = "custom-model"
	cfg.AutoLoad = false

	if err := Save(cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if got.Engine != cfg.Engine || got.Model != cfg.Model || got.AutoLoad != cfg.AutoLoad {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	isolateXDG(t)

	if err := os.MkdirAll(ConfigDir(), 0750); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(ConfigPath(), []byte("engine: [broken"), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("expected parse error")
	}
}

func TestDataDirEnvOverride(t *testing.T) {
	t.Setenv("MOODLOG_DATA_DIR", "/tmp/custom-moodlog")

	if got := DataDir(); got != "/tmp/custom-moodlog" {
		t.Errorf("expected env override, got %q", got)
	}
	if got := DraftDir(); got != filepath.Join("/tmp/custom-moodlog", "drafts") {
		t.Errorf("unexpected draft dir %q", got)
	}
}
