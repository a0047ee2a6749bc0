package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "siyuanmcp.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(Options{ConfigPath: filepath.Join(t.TempDir(), "absent.toml")})
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:6806", cfg.BaseURL)
	assert.Equal(t, 15000, cfg.TimeoutMS)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Token)
	assert.Empty(t, cfg.AuditDB)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, "base_url = \"http://10.0.0.5:6806\"\ntimeout_ms = 30000\nlog_level = \"debug\"\n")
	cfg, err := Load(Options{ConfigPath: path})
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:6806", cfg.BaseURL)
	assert.Equal(t, 30000, cfg.TimeoutMS)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "base_url = \"http://from-file:6806\"\n")
	t.Setenv("SIYUAN_BASE_URL", "http://from-env:6806")
	t.Setenv("SIYUAN_TOKEN", "env-token")
	t.Setenv("SIYUAN_TIMEOUT_MS", "5000")

	cfg, err := Load(Options{ConfigPath: path})
	require.NoError(t, err)
	assert.Equal(t, "http://from-env:6806", cfg.BaseURL)
	assert.Equal(t, "env-token", cfg.Token)
	assert.Equal(t, 5000, cfg.TimeoutMS)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("SIYUAN_BASE_URL", "http://from-env:6806")
	baseURL := "http://from-flag:6806"
	timeout := 2500
	cfg, err := Load(Options{
		ConfigPath: filepath.Join(t.TempDir(), "absent.toml"),
		Overrides:  &Overrides{BaseURL: &baseURL, TimeoutMS: &timeout},
	})
	require.NoError(t, err)
	assert.Equal(t, "http://from-flag:6806", cfg.BaseURL)
	assert.Equal(t, 2500, cfg.TimeoutMS)
}

func TestLoad_MalformedTOMLFails(t *testing.T) {
	path := writeConfigFile(t, "base_url = [broken\n")
	_, err := Load(Options{ConfigPath: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed TOML")
}

func TestLoad_InvalidEnvTimeoutIgnored(t *testing.T) {
	t.Setenv("SIYUAN_TIMEOUT_MS", "not-a-number")
	cfg, err := Load(Options{ConfigPath: filepath.Join(t.TempDir(), "absent.toml")})
	require.NoError(t, err)
	assert.Equal(t, 15000, cfg.TimeoutMS)
}
