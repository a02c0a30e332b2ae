// Package config loads promoPilot configuration from pilot.yaml with
// environment variable overrides. A .env file in the workspace is loaded
// first so demo setups can keep the API key out of the shell profile.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all promoPilot configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// LLM configuration for the planning/insights agents
	LLM LLMConfig `yaml:"llm"`

	// Campaign defaults
	Campaign CampaignConfig `yaml:"campaign"`

	// Output settings
	Output OutputConfig `yaml:"output"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// LLMConfig configures the agent layer.
type LLMConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	Timeout string `yaml:"timeout"`
}

// CampaignConfig holds campaign planning defaults.
type CampaignConfig struct {
	DurationDays     int      `yaml:"duration_days"`
	Frequency        string   `yaml:"frequency"` // once, daily, weekly
	DefaultPlatforms []string `yaml:"default_platforms"`
}

// OutputConfig configures where exports land.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig configures the categorized file logger.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Level      string          `yaml:"level"` // debug, info, warn, error
	Categories map[string]bool `yaml:"categories"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "promoPilot",
		Version: "0.1.0",

		LLM: LLMConfig{
			Model:   "gemini-2.0-flash",
			Timeout: "120s",
		},

		Campaign: CampaignConfig{
			DurationDays: 28,
			Frequency:    "daily",
			DefaultPlatforms: []string{
				"LinkedIn", "Twitter", "Instagram", "Facebook", "TikTok",
			},
		},

		Output: OutputConfig{
			Dir: "outputs",
		},

		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration for the given workspace. Order: defaults,
// then pilot.yaml if present, then .env, then environment variables.
func Load(workspace string) (*Config, error) {
	cfg := DefaultConfig()

	// .env is optional; ignore absence, surface parse errors.
	envPath := filepath.Join(workspace, ".env")
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	data, err := os.ReadFile(filepath.Join(workspace, "pilot.yaml"))
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.LLM.APIKey = key
	}
	if model := os.Getenv("PILOT_MODEL"); model != "" {
		c.LLM.Model = model
	}
	if dir := os.Getenv("PILOT_OUTPUT_DIR"); dir != "" {
		c.Output.Dir = dir
	}
}

// GetLLMTimeout returns the LLM timeout as a duration.
func (c *Config) GetLLMTimeout() time.Duration {
	d, err := time.ParseDuration(c.LLM.Timeout)
	if err != nil {
		return 120 * time.Second
	}
	return d
}
