// Package config loads gateway configuration from defaults, an optional YAML
// file and MEGAGENT_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var (
	// ErrInvalidAddr indicates the listen address is empty.
	ErrInvalidAddr = errors.New("invalid listen address")

	// ErrInvalidBaseURL indicates a provider base URL is empty or malformed.
	ErrInvalidBaseURL = errors.New("invalid base URL")

	// ErrInvalidHistoryTurns indicates the history retention bound is not positive.
	ErrInvalidHistoryTurns = errors.New("invalid history turns")

	// ErrInvalidPromptWindow indicates the prompt window bound is not positive.
	ErrInvalidPromptWindow = errors.New("invalid prompt window turns")

	// ErrInvalidTimeout indicates the provider request timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid request timeout")
)

// Config stores gateway configuration.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `mapstructure:"addr"`

	// TextBaseURL is the streaming completion provider endpoint.
	TextBaseURL string `mapstructure:"text_base_url"`
	// ImageBaseURL is the image provider endpoint.
	ImageBaseURL string `mapstructure:"image_base_url"`

	// RequestTimeout bounds a single provider request, streaming included.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`

	// MaxHistoryTurns bounds how many turns each session retains.
	MaxHistoryTurns int `mapstructure:"max_history_turns"`
	// PromptWindowTurns bounds how many retained turns accompany each prompt.
	PromptWindowTurns int `mapstructure:"prompt_window_turns"`

	// Per-capability model defaults. The audio voice stands in for a model
	// because the audio model itself is fixed.
	TextModel      string `mapstructure:"text_model"`
	SearchModel    string `mapstructure:"search_model"`
	ReasoningModel string `mapstructure:"reasoning_model"`
	ImageModel     string `mapstructure:"image_model"`
	AudioVoice     string `mapstructure:"audio_voice"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`

	// TracingEnabled turns on span export over OTLP/HTTP.
	TracingEnabled bool `mapstructure:"tracing_enabled"`
	// TracingEndpoint is the OTLP/HTTP collector host:port.
	TracingEndpoint string `mapstructure:"tracing_endpoint"`
}

// Load reads configuration. configPath optionally names a YAML file; when it
// is empty only defaults and environment variables apply. Environment
// variables use the MEGAGENT_ prefix with underscores, e.g.
// MEGAGENT_TEXT_MODEL.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("MEGAGENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("addr", "0.0.0.0:8000")

	v.SetDefault("text_base_url", "https://text.pollinations.ai")
	v.SetDefault("image_base_url", "https://image.pollinations.ai")
	v.SetDefault("request_timeout", 300*time.Second)

	v.SetDefault("max_history_turns", 10)
	v.SetDefault("prompt_window_turns", 6)

	v.SetDefault("text_model", "openai")
	v.SetDefault("search_model", "searchgpt")
	v.SetDefault("reasoning_model", "openai-reasoning")
	v.SetDefault("image_model", "flux")
	v.SetDefault("audio_voice", "nova")

	v.SetDefault("log_level", "info")

	v.SetDefault("tracing_enabled", false)
	v.SetDefault("tracing_endpoint", "localhost:4318")
}

// Validate checks the configuration for values no component can run with.
// Model names are not validated here; unrecognized ones pass through to the
// provider.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return ErrInvalidAddr
	}
	for _, baseURL := range []string{c.TextBaseURL, c.ImageBaseURL} {
		if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
			return fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
		}
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidTimeout, c.RequestTimeout)
	}
	if c.MaxHistoryTurns <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidHistoryTurns, c.MaxHistoryTurns)
	}
	if c.PromptWindowTurns <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPromptWindow, c.PromptWindowTurns)
	}
	return nil
}
