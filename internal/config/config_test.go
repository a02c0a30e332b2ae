package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Name != "promoPilot" {
		t.Errorf("expected Name=promoPilot, got %s", cfg.Name)
	}
	if cfg.LLM.Model != "gemini-2.0-flash" {
		t.Errorf("expected Model=gemini-2.0-flash, got %s", cfg.LLM.Model)
	}
	if cfg.Campaign.DurationDays != 28 {
		t.Errorf("expected DurationDays=28, got %d", cfg.Campaign.DurationDays)
	}
	if len(cfg.Campaign.DefaultPlatforms) != 5 {
		t.Errorf("expected 5 default platforms, got %d", len(cfg.Campaign.DefaultPlatforms))
	}
	if cfg.Output.Dir != "outputs" {
		t.Errorf("expected Output.Dir=outputs, got %s", cfg.Output.Dir)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	// Ensure no env vars interfere
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("PILOT_MODEL", "")
	t.Setenv("PILOT_OUTPUT_DIR", "")

	tmpDir := t.TempDir()

	cfg := DefaultConfig()
	cfg.LLM.APIKey = "test-key"
	cfg.Output.Dir = "exports"

	if err := cfg.Save(filepath.Join(tmpDir, "pilot.yaml")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.LLM.APIKey != "test-key" {
		t.Errorf("expected APIKey=test-key, got %s", loaded.LLM.APIKey)
	}
	if loaded.Output.Dir != "exports" {
		t.Errorf("expected Output.Dir=exports, got %s", loaded.Output.Dir)
	}
}

func TestConfig_LoadMissingFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("PILOT_MODEL", "")
	t.Setenv("PILOT_OUTPUT_DIR", "")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Name != "promoPilot" {
		t.Errorf("expected defaults when no config file, got Name=%s", cfg.Name)
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("PILOT_OUTPUT_DIR", "/tmp/out")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	if cfg.LLM.APIKey != "env-key" {
		t.Errorf("expected APIKey=env-key, got %s", cfg.LLM.APIKey)
	}
	if cfg.Output.Dir != "/tmp/out" {
		t.Errorf("expected Output.Dir=/tmp/out, got %s", cfg.Output.Dir)
	}
}

func TestConfig_DotEnv(t *testing.T) {
	// godotenv does not override existing vars, so the key must be absent.
	t.Setenv("GEMINI_API_KEY", "")
	os.Unsetenv("GEMINI_API_KEY")
	tmpDir := t.TempDir()

	if err := os.WriteFile(filepath.Join(tmpDir, ".env"), []byte("GEMINI_API_KEY=dotenv-key\n"), 0644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LLM.APIKey != "dotenv-key" {
		t.Errorf("expected APIKey from .env, got %q", cfg.LLM.APIKey)
	}
}
