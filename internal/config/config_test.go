package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/purush7/graphql-engine/internal/actions"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, "metadata", cfg.MetadataDirectory)
	require.Equal(t, actions.Synchronous, cfg.Actions.Kind)
	require.Equal(t, "http://localhost:3000", cfg.Actions.HandlerWebhookBaseURL)
	require.Equal(t, "codegen", cfg.Actions.Codegen.OutputDir)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "console", cfg.Logging.Format)
	require.Equal(t, "gqlctl", cfg.Otel.Service)
}

func TestFileEnvAndDotenv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`
metadata_directory: meta
actions:
  kind: asynchronous
  handler_webhook_baseurl: ${GQLCTL_TEST_BASE}
  codegen:
    framework: typescript-express
logging:
  level: debug
  format: json
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, EnvFile), []byte("GQLCTL_TEST_BASE=http://from-dotenv:8080\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("GQLCTL_TEST_BASE") })
	t.Setenv("GQLCTL_LOG_LEVEL", "error")

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, "meta", cfg.MetadataDirectory)
	require.Equal(t, actions.Asynchronous, cfg.Actions.Kind)
	require.Equal(t, "http://from-dotenv:8080", cfg.Actions.HandlerWebhookBaseURL)
	require.Equal(t, "typescript-express", cfg.Actions.Codegen.Framework)
	require.Equal(t, "error", cfg.Logging.Level, "environment wins over file")
	require.Equal(t, "json", cfg.Logging.Format)
	require.Equal(t, filepath.Join(dir, "meta"), cfg.MetadataPath(dir))
}

func TestValidate(t *testing.T) {
	t.Setenv("GQLCTL_ACTIONS_KIND", "eventual")
	_, err := Load(t.TempDir())
	require.ErrorContains(t, err, "actions.kind")
}

func TestMetadataPathAbsolute(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "elsewhere")
	cfg := &Config{MetadataDirectory: abs}
	require.Equal(t, abs, cfg.MetadataPath("/project"))
}
