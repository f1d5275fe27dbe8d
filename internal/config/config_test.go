package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tritris/internal/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tritris.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault_MatchesDomainRules(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, domain.DefaultRules(), cfg.Rules())
	assert.Equal(t, 50*time.Millisecond, cfg.PollInterval())
}

func TestLoad_OverridesOnlyGivenKeys(t *testing.T) {
	path := writeConfig(t, `{"width": 12, "seed": 42}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Width)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, domain.DefaultHeight, cfg.Height)
	assert.Equal(t, uint64(42), cfg.ResolvedSeed())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") }},
		{"bad json", func(t *testing.T) string { return writeConfig(t, `{"width":`) }},
		{"invalid value", func(t *testing.T) string { return writeConfig(t, `{"width": 2}`) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path(t))
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"narrow", func(c *Config) { c.Width = 3 }},
		{"short", func(c *Config) { c.Height = 61 }},
		{"zero fall", func(c *Config) { c.FallIntervalMs = 0 }},
		{"floor above fall", func(c *Config) { c.MinFallIntervalMs = c.FallIntervalMs + 1 }},
		{"factor above one", func(c *Config) { c.SpeedUpFactor = 1.5 }},
		{"zero poll", func(c *Config) { c.PollIntervalMs = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestFromEnv(t *testing.T) {
	path := writeConfig(t, `{"height": 20}`)
	t.Setenv(EnvConfigPath, path)
	t.Setenv(EnvSeed, "7")
	t.Setenv(EnvLogFile, "/tmp/tritris.log")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Height)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "/tmp/tritris.log", cfg.LogFile)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestFromEnv_BadSeed(t *testing.T) {
	t.Setenv(EnvSeed, "seven")
	_, err := FromEnv()
	assert.Error(t, err)
}
