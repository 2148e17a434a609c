package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 20, cfg.Auth.LoginRate)
}

func TestLoad_FileThenEnv(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DATABASE_URL", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yml := "http:\n  port: \"9000\"\ndb:\n  path: /tmp/forest.db\nauth:\n  token_ttl: 2h\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	t.Run("file values", func(t *testing.T) {
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "9000", cfg.HTTP.Port)
		assert.Equal(t, "/tmp/forest.db", cfg.DB.Path)
		assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	})

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("MSITU_HTTP_PORT", "9100")
		t.Setenv("MSITU_AUTH_JWT_SECRET", "s3cret")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "9100", cfg.HTTP.Port)
		assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	})

	t.Run("plain PORT wins", func(t *testing.T) {
		t.Setenv("MSITU_HTTP_PORT", "9100")
		t.Setenv("PORT", "3000")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "3000", cfg.HTTP.Port)
	})
}

func TestValidate(t *testing.T) {
	cfg := Defaults()
	cfg.DB.Driver = "mysql"
	assert.Error(t, cfg.Validate())

	cfg = Defaults()
	cfg.DB.Driver = "postgres"
	assert.Error(t, cfg.Validate())
	cfg.DB.DSN = "postgres://localhost/forest"
	assert.NoError(t, cfg.Validate())

	cfg = Defaults()
	cfg.Log.Mode = "prod"
	assert.Error(t, cfg.Validate())
	cfg.Auth.JWTSecret = "real"
	assert.NoError(t, cfg.Validate())
}

func TestLoad_DotEnv(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DATABASE_URL", "")

	t.Run("values are picked up", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MSITU_DB_PATH=/tmp/from-dotenv.db\n"), 0o600))
		chdir(t, dir)
		t.Cleanup(func() { _ = os.Unsetenv("MSITU_DB_PATH") })

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/from-dotenv.db", cfg.DB.Path)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BAD-KEY=1\n"), 0o600))
		chdir(t, dir)

		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), ".env")
	})
}

// chdir mirrors testing.T.Chdir (Go 1.24+): it changes the working directory
// for the duration of the test and restores it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
