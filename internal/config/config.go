// Package config loads the CLI configuration of a project directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/purush7/graphql-engine/internal/actions"
)

const (
	FileName = "config.yaml"
	EnvFile  = ".env"
)

// Config is the root configuration structure.
type Config struct {
	MetadataDirectory string        `yaml:"metadata_directory"`
	Actions           ActionsConfig `yaml:"actions"`
	Logging           LoggingConfig `yaml:"logging"`
	Otel              OtelConfig    `yaml:"otel"`
}

// ActionsConfig holds defaults applied to actions and codegen settings.
type ActionsConfig struct {
	Kind                  actions.Kind  `yaml:"kind"`
	HandlerWebhookBaseURL string        `yaml:"handler_webhook_baseurl"`
	Codegen               CodegenConfig `yaml:"codegen"`
}

type CodegenConfig struct {
	Framework string `yaml:"framework,omitempty" json:"framework,omitempty"`
	OutputDir string `yaml:"output_dir,omitempty" json:"output_dir,omitempty"`
	URI       string `yaml:"uri,omitempty" json:"uri,omitempty"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "console"
}

// OtelConfig enables tracing of codegen runs when Endpoint is set.
type OtelConfig struct {
	Endpoint string `yaml:"endpoint"`
	Service  string `yaml:"service"`
}

// Load reads config.yaml and .env from dir. Both files are optional.
// Environment variables override file values.
func Load(dir string) (*Config, error) {
	if err := godotenv.Load(filepath.Join(dir, EnvFile)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", EnvFile, err)
	}

	var cfg Config
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		data = []byte(os.ExpandEnv(string(data)))
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// MetadataPath returns the metadata directory resolved against dir.
func (c *Config) MetadataPath(dir string) string {
	if filepath.IsAbs(c.MetadataDirectory) {
		return c.MetadataDirectory
	}
	return filepath.Join(dir, c.MetadataDirectory)
}

// applyEnvOverrides applies GQLCTL_* environment variables to the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GQLCTL_METADATA_DIRECTORY"); v != "" {
		cfg.MetadataDirectory = v
	}
	if v := os.Getenv("GQLCTL_ACTIONS_KIND"); v != "" {
		cfg.Actions.Kind = actions.Kind(v)
	}
	if v := os.Getenv("GQLCTL_ACTIONS_HANDLER_WEBHOOK_BASEURL"); v != "" {
		cfg.Actions.HandlerWebhookBaseURL = v
	}
	if v := os.Getenv("GQLCTL_CODEGEN_FRAMEWORK"); v != "" {
		cfg.Actions.Codegen.Framework = v
	}
	if v := os.Getenv("GQLCTL_CODEGEN_OUTPUT_DIR"); v != "" {
		cfg.Actions.Codegen.OutputDir = v
	}
	if v := os.Getenv("GQLCTL_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("GQLCTL_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("GQLCTL_OTEL_ENDPOINT"); v != "" {
		cfg.Otel.Endpoint = v
	}
}

func setDefaults(cfg *Config) {
	if cfg.MetadataDirectory == "" {
		cfg.MetadataDirectory = "metadata"
	}
	if cfg.Actions.Kind == "" {
		cfg.Actions.Kind = actions.Synchronous
	}
	if cfg.Actions.HandlerWebhookBaseURL == "" {
		cfg.Actions.HandlerWebhookBaseURL = "http://localhost:3000"
	}
	if cfg.Actions.Codegen.OutputDir == "" {
		cfg.Actions.Codegen.OutputDir = "codegen"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
	if cfg.Otel.Service == "" {
		cfg.Otel.Service = "gqlctl"
	}
}

func validate(cfg *Config) error {
	switch cfg.Actions.Kind {
	case actions.Synchronous, actions.Asynchronous:
	default:
		return fmt.Errorf("actions.kind must be %q or %q, got %q", actions.Synchronous, actions.Asynchronous, cfg.Actions.Kind)
	}
	switch cfg.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", cfg.Logging.Format)
	}
	return nil
}
