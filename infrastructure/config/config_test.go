package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "file:sampark-audit?mode=memory&cache=shared", cfg.SQLite.Path)
	assert.Equal(t, "admin", cfg.DemoUser.Role)
	assert.False(t, cfg.HTTP.EnableCSRF)
	assert.EqualValues(t, 10, cfg.HTTP.MaxUploadMB)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sampark.yaml")
	body := "http:\n  addr: \":9090\"\n  enable_csrf: true\ndemo_user:\n  role: user\n  full_name: Field Officer\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.True(t, cfg.HTTP.EnableCSRF)
	assert.Equal(t, "user", cfg.DemoUser.Role)
	assert.Equal(t, "Field Officer", cfg.DemoUser.FullName)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadRejectsUnknownRole(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DEMO_USER_ROLE", "auditor")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "demo_user.role")
}
