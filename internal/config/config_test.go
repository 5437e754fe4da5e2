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
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaultsAndFile(t *testing.T) {
	path := writeConfigFile(t, `
jwt:
  secret: test-secret
admin:
  allowlist:
    - admin@almokadam.edu
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "backoffice", cfg.Database.DBName)
	assert.Equal(t, "30m", cfg.Editor.SessionTTL)
	assert.Equal(t, []string{"admin@almokadam.edu"}, cfg.Admin.Allowlist)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ADMIN_ALLOWLIST", "a@x.com, b@x.com")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, cfg.Admin.Allowlist)
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret")
}

func TestIsAllowlisted(t *testing.T) {
	cfg := &Config{}
	cfg.Admin.Allowlist = []string{"Admin@Almokadam.edu"}

	assert.True(t, cfg.IsAllowlisted("admin@almokadam.edu"))
	assert.True(t, cfg.IsAllowlisted("  ADMIN@almokadam.EDU "))
	assert.False(t, cfg.IsAllowlisted("other@almokadam.edu"))
	assert.False(t, (&Config{}).IsAllowlisted("admin@almokadam.edu"))
}
