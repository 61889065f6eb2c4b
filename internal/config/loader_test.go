package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadFromDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	dir := t.TempDir()
	writeConfig(t, dir, "config.yaml", "app:\n  name: prompt-enhancer\n")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "gpt-4", cfg.LLM.Model)
	assert.Equal(t, 400, cfg.LLM.MaxTokens)
	assert.InDelta(t, 0.7, cfg.LLM.Temperature, 1e-9)
	assert.Equal(t, 50, cfg.Prompt.MinWordLimit)
	assert.Equal(t, 2000, cfg.Prompt.MaxWordLimit)
	assert.Equal(t, 300, cfg.Prompt.DefaultWordLimit)
	assert.Equal(t, 8080, cfg.Server.HTTP.Port)
	assert.Equal(t, 120*time.Second, cfg.Server.HTTP.WriteTimeout)
	assert.Equal(t, "/metrics", cfg.Observability.Metrics.Path)
}

func TestLoadFromEnvFileAndPlaceholders(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	t.Setenv("PE_TEST_MODEL", "gpt-4o-mini")
	dir := t.TempDir()
	writeConfig(t, dir, "config.yaml", "llm:\n  model: ${PE_TEST_MODEL:gpt-4}\n  base_url: ${PE_TEST_UNSET_URL:https://api.example.com/v1}\n")
	writeConfig(t, dir, "config.staging.yaml", "llm:\n  max_tokens: 800\n")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, "https://api.example.com/v1", cfg.LLM.BaseURL)
	assert.Equal(t, 800, cfg.LLM.MaxTokens)
}

func TestLoadFromKeepsExplicitZeroTemperature(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	dir := t.TempDir()
	writeConfig(t, dir, "config.yaml", "llm:\n  temperature: 0\n")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Zero(t, cfg.LLM.Temperature)
}

func TestLoadFromMissingBaseFile(t *testing.T) {
	_, err := LoadFrom(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadFromRejectsBadWordLimits(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	dir := t.TempDir()
	writeConfig(t, dir, "config.yaml", "prompt:\n  min_word_limit: 500\n  max_word_limit: 100\n")

	_, err := LoadFrom(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "word limit")
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("PE_TEST_SET", "value")

	assert.Equal(t, "a=value", expandEnv("a=${PE_TEST_SET}"))
	assert.Equal(t, "a=fallback", expandEnv("a=${PE_TEST_MISSING:fallback}"))
	assert.Equal(t, "a=", expandEnv("a=${PE_TEST_MISSING:}"))
	assert.Equal(t, "a=${PE_TEST_MISSING}", expandEnv("a=${PE_TEST_MISSING}"))
}
