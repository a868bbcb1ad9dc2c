package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "database/survey.db", cfg.DB.Path)
	assert.Equal(t, "http://localhost:5173", cfg.CORS.ClientOrigin)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FileThenEnvOverride(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "5000"
app:
  env: production
db:
  path: /tmp/x.db
server:
  write_timeout: 3s
`), 0o600))

	t.Setenv("CLIENT_ORIGIN", "https://survey.example.org")
	t.Setenv("PORT", "6000")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "6000", cfg.Port)
	assert.Equal(t, "/tmp/x.db", cfg.DB.Path)
	assert.Equal(t, "https://survey.example.org", cfg.CORS.ClientOrigin)
	assert.Equal(t, 3*time.Second, cfg.Server.WriteTimeout)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DB_PATH=from-dotenv.db\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("DB_PATH") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv.db", cfg.DB.Path)
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
