package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Addr != "0.0.0.0:8000" {
		t.Fatalf("expected default addr, got %q", cfg.Addr)
	}
	if cfg.TextBaseURL != "https://text.pollinations.ai" {
		t.Fatalf("expected default text base URL, got %q", cfg.TextBaseURL)
	}
	if cfg.RequestTimeout != 300*time.Second {
		t.Fatalf("expected 300s request timeout, got %v", cfg.RequestTimeout)
	}
	if cfg.MaxHistoryTurns != 10 || cfg.PromptWindowTurns != 6 {
		t.Fatalf("expected history bounds 10/6, got %d/%d", cfg.MaxHistoryTurns, cfg.PromptWindowTurns)
	}
	if cfg.TextModel != "openai" || cfg.SearchModel != "searchgpt" || cfg.AudioVoice != "nova" {
		t.Fatalf("unexpected model defaults: %+v", cfg)
	}
	if cfg.TracingEnabled {
		t.Fatal("expected tracing disabled by default")
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("MEGAGENT_ADDR", "127.0.0.1:9000")
	t.Setenv("MEGAGENT_TEXT_MODEL", "mistral")
	t.Setenv("MEGAGENT_MAX_HISTORY_TURNS", "20")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Addr != "127.0.0.1:9000" {
		t.Fatalf("expected env addr, got %q", cfg.Addr)
	}
	if cfg.TextModel != "mistral" {
		t.Fatalf("expected env text model, got %q", cfg.TextModel)
	}
	if cfg.MaxHistoryTurns != 20 {
		t.Fatalf("expected env history turns, got %d", cfg.MaxHistoryTurns)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := "addr: 10.0.0.1:8080\nimage_model: turbo\nrequest_timeout: 30s\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Addr != "10.0.0.1:8080" {
		t.Fatalf("expected file addr, got %q", cfg.Addr)
	}
	if cfg.ImageModel != "turbo" {
		t.Fatalf("expected file image model, got %q", cfg.ImageModel)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Fatalf("expected 30s timeout, got %v", cfg.RequestTimeout)
	}
	if cfg.TextModel != "openai" {
		t.Fatalf("expected unset keys to keep defaults, got %q", cfg.TextModel)
	}
}

func TestLoadMissingConfigFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for an explicitly named missing file")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	valid := func() Config {
		return Config{
			Addr:              "0.0.0.0:8000",
			TextBaseURL:       "https://text.pollinations.ai",
			ImageBaseURL:      "https://image.pollinations.ai",
			RequestTimeout:    time.Minute,
			MaxHistoryTurns:   10,
			PromptWindowTurns: 6,
		}
	}

	testCases := []struct {
		name     string
		mutate   func(*Config)
		expected error
	}{
		{name: "empty addr", mutate: func(c *Config) { c.Addr = " " }, expected: ErrInvalidAddr},
		{name: "bad base URL", mutate: func(c *Config) { c.TextBaseURL = "text.pollinations.ai" }, expected: ErrInvalidBaseURL},
		{name: "zero timeout", mutate: func(c *Config) { c.RequestTimeout = 0 }, expected: ErrInvalidTimeout},
		{name: "zero history", mutate: func(c *Config) { c.MaxHistoryTurns = 0 }, expected: ErrInvalidHistoryTurns},
		{name: "negative window", mutate: func(c *Config) { c.PromptWindowTurns = -1 }, expected: ErrInvalidPromptWindow},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			cfg := valid()
			testCase.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, testCase.expected) {
				t.Fatalf("expected %v, got %v", testCase.expected, err)
			}
		})
	}
}
