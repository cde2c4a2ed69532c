package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv(EnvSeed, "1234")
	t.Setenv(EnvScript, "runs/demo.yaml")
	t.Setenv(EnvHoneycombAPIKey, "key")
	t.Setenv(EnvHoneycombDataset, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Seed != 1234 {
		t.Errorf("Seed = %d, want 1234", cfg.Seed)
	}
	if cfg.ScriptPath != "runs/demo.yaml" {
		t.Errorf("ScriptPath = %q, want %q", cfg.ScriptPath, "runs/demo.yaml")
	}
	if cfg.HoneycombAPIKey != "key" {
		t.Errorf("HoneycombAPIKey = %q, want %q", cfg.HoneycombAPIKey, "key")
	}
	if cfg.HoneycombDataset != "wasteland" {
		t.Errorf("HoneycombDataset = %q, want default %q", cfg.HoneycombDataset, "wasteland")
	}
}

func TestLoadFromDotEnv(t *testing.T) {
	t.Setenv(EnvSeed, "")
	os.Unsetenv(EnvSeed)
	t.Setenv(EnvHoneycombDataset, "")
	os.Unsetenv(EnvHoneycombDataset)

	path := filepath.Join(t.TempDir(), ".env")
	content := EnvSeed + "=77\n" + EnvHoneycombDataset + "=custom\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Seed != 77 {
		t.Errorf("Seed = %d, want 77", cfg.Seed)
	}
	if cfg.HoneycombDataset != "custom" {
		t.Errorf("HoneycombDataset = %q, want %q", cfg.HoneycombDataset, "custom")
	}
}

func TestLoadInvalidSeed(t *testing.T) {
	t.Setenv(EnvSeed, "not-a-number")

	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("Load() with an invalid seed should fail")
	}
}

func TestGetEnvDefault(t *testing.T) {
	t.Setenv("WASTELAND_TEST_VALUE", "set")

	if got := GetEnvDefault("WASTELAND_TEST_VALUE", "fallback"); got != "set" {
		t.Errorf("GetEnvDefault(set) = %q, want %q", got, "set")
	}
	if got := GetEnvDefault("WASTELAND_TEST_UNSET_VALUE", "fallback"); got != "fallback" {
		t.Errorf("GetEnvDefault(unset) = %q, want %q", got, "fallback")
	}
}
