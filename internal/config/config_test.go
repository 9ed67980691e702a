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
	cfg, loaded, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.False(t, loaded)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, BackendFile, cfg.FavoritesBackend)
	assert.Equal(t, "data/prefs", cfg.FavoritesPath)
	assert.Equal(t, 1500*time.Millisecond, cfg.PaymentDelay)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr())
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env.local")
	require.NoError(t, os.WriteFile(path, []byte("FAVORITES_BACKEND=sqlite\nPAYMENT_DELAY=2s\nR_HOST=cache\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("FAVORITES_BACKEND")
		os.Unsetenv("PAYMENT_DELAY")
		os.Unsetenv("R_HOST")
	})

	cfg, loaded, err := Load(path)
	require.NoError(t, err)

	assert.True(t, loaded)
	assert.Equal(t, BackendSQLite, cfg.FavoritesBackend)
	assert.Equal(t, 2*time.Second, cfg.PaymentDelay)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr())
}

func TestLoad_UnknownBackend(t *testing.T) {
	t.Setenv("FAVORITES_BACKEND", "etcd")

	_, _, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, `unknown favorites backend "etcd"`)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	_, err := DatabaseConfig{Host: "db", Port: "5432"}.DSN()
	assert.Error(t, err)

	dsn, err := DatabaseConfig{Host: "db", Port: "5432", User: "film", Password: "pw", Name: "films"}.DSN()
	require.NoError(t, err)
	assert.Equal(t, "host=db port=5432 user=film password=pw dbname=films sslmode=disable", dsn)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("FILMAPP_TEST_VALUE", "set")

	assert.Equal(t, "set", GetEnv("FILMAPP_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", GetEnv("FILMAPP_TEST_UNSET", "fallback"))
}
