// Package config handles reading and writing the leafecho config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the top-level structure for config.yaml.
type Config struct {
	Version    int              `yaml:"version" validate:"gte=1"`
	Share      ShareConfig      `yaml:"share"`
	Ritual     RitualConfig     `yaml:"ritual"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Log        LogConfig        `yaml:"log"`
}

// ShareConfig controls clipboard export.
type ShareConfig struct {
	Tag string `yaml:"tag" validate:"required,startswith=#"`
}

// RitualConfig controls the draw animation timing.
type RitualConfig struct {
	RingMs   int `yaml:"ring_ms" validate:"gte=0,lte=10000"`   // chime swinging
	RevealMs int `yaml:"reveal_ms" validate:"gte=0,lte=10000"` // echo reveal before the editor opens
}

// SummarizerConfig selects the optional text-generation service.
type SummarizerConfig struct {
	Provider   string `yaml:"provider" validate:"oneof=none gemini deepseek"`
	Model      string `yaml:"model"`
	APIKeyEnv  string `yaml:"api_key_env" validate:"required_unless=Provider none"`
	Endpoint   string `yaml:"endpoint" validate:"omitempty,url"`
	TimeoutSec int    `yaml:"timeout_sec" validate:"gte=1,lte=300"`
}

// LogConfig controls the JSONL event log.
type LogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"` // empty means the config directory
}

const (
	appDir     = "leafecho"
	configFile = "config.yaml"
)

// DefaultDir returns the per-user config directory, e.g. ~/.config/leafecho.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(base, appDir), nil
}

// Path returns the config file path inside dir.
func Path(dir string) string {
	return filepath.Join(dir, configFile)
}

// ReadConfig reads config.yaml from dir. Fields missing from the file keep
// their defaults. Returns an error if the file is missing, malformed or
// invalid.
func ReadConfig(dir string) (*Config, error) {
	return ReadFile(Path(dir))
}

// ReadFile reads a config file at an explicit path.
func ReadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault reads config.yaml from dir, falling back to DefaultConfig
// when the file does not exist.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := ReadConfig(dir)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// WriteConfig writes cfg to config.yaml in dir, creating dir if needed.
func WriteConfig(dir string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Share: ShareConfig{
			Tag: "#2024YearEndReflection",
		},
		Ritual: RitualConfig{
			RingMs:   2500,
			RevealMs: 1500,
		},
		Summarizer: SummarizerConfig{
			Provider:   "none",
			TimeoutSec: 60,
		},
		Log: LogConfig{
			Enabled: true,
		},
	}
}

// RingDuration returns the chime duration of the draw ritual.
func (c *Config) RingDuration() time.Duration {
	return time.Duration(c.Ritual.RingMs) * time.Millisecond
}

// RevealDuration returns the reveal pause after the chime.
func (c *Config) RevealDuration() time.Duration {
	return time.Duration(c.Ritual.RevealMs) * time.Millisecond
}

// APIKey returns the summarizer API key from the configured environment
// variable.
func (s SummarizerConfig) APIKey() string {
	if s.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(s.APIKeyEnv)
}

// Timeout returns the per-request summarizer timeout.
func (s SummarizerConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSec) * time.Second
}

var validate = validator.New()

// Validate checks cfg against its field rules.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating config: %w", err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, formatFieldError(fe))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required", "required_unless":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "startswith":
		return fmt.Sprintf("%s must start with %q", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
