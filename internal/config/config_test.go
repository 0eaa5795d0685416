package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/falconsdev/coursecatalog/internal/config"
)

func TestLoadConfig_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Catalog.DataPath != "data/courses.json" {
		t.Errorf("DataPath = %q", cfg.Catalog.DataPath)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("logging defaults mismatch: %+v", cfg.Logging)
	}
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "server:\n  port: \"9090\"\n  mode: release\ncatalog:\n  data_path: /srv/catalog/courses.json\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != "9090" || cfg.Server.Mode != "release" {
		t.Errorf("server config mismatch: %+v", cfg.Server)
	}
	if cfg.Catalog.DataPath != "/srv/catalog/courses.json" {
		t.Errorf("DataPath = %q", cfg.Catalog.DataPath)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: \"9090\"\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("CATALOG_DATA_PATH", "/tmp/alt.json")

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != "7070" {
		t.Errorf("Port = %q, want env override 7070", cfg.Server.Port)
	}
	if cfg.Catalog.DataPath != "/tmp/alt.json" {
		t.Errorf("DataPath = %q, want env override", cfg.Catalog.DataPath)
	}
}

func TestLoadConfig_InvalidMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  mode: sideways\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := config.LoadConfig(path); err == nil {
		t.Error("expected error for invalid server mode")
	}
}
