package container

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"filmapp/internal/config"
	"filmapp/internal/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		FavoritesBackend: config.BackendFile,
		FavoritesPath:    filepath.Join(dir, "prefs"),
		SQLitePath:       filepath.Join(dir, "filmapp.db"),
		PaymentDelay:     10 * time.Millisecond,
	}
}

func TestNew_FileBackend(t *testing.T) {
	cfg := baseConfig(t)
	ctx := context.Background()

	c, err := New(ctx, cfg, logger.Discard())
	require.NoError(t, err)
	require.NoError(t, c.Favorites.Add(ctx, 3))
	c.Close()

	reopened, err := New(ctx, cfg, logger.Discard())
	require.NoError(t, err)
	defer reopened.Close()

	assert.Equal(t, []int{3}, reopened.Favorites.List(ctx))
	assert.NotEmpty(t, reopened.Catalog.AllFilms())
}

func TestNew_SQLiteBackend(t *testing.T) {
	cfg := baseConfig(t)
	cfg.FavoritesBackend = config.BackendSQLite
	ctx := context.Background()

	c, err := New(ctx, cfg, logger.Discard())
	require.NoError(t, err)
	defer c.Close()

	require.NotNil(t, c.SQLite)
	require.NoError(t, c.Favorites.Add(ctx, 16))
	assert.True(t, c.Favorites.IsFavorite(ctx, 16))
}

func TestNew_RedisBackend(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port, err := net.SplitHostPort(mr.Addr())
	require.NoError(t, err)

	cfg := baseConfig(t)
	cfg.FavoritesBackend = config.BackendRedis
	cfg.Redis = config.RedisConfig{Host: host, Port: port}
	ctx := context.Background()

	c, err := New(ctx, cfg, logger.Discard())
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Favorites.Add(ctx, 44))
	members, err := mr.Members("favorites:fav_ids")
	require.NoError(t, err)
	assert.Equal(t, []string{"44"}, members)
}

func TestNew_PostgresMissingConfig(t *testing.T) {
	cfg := baseConfig(t)
	cfg.FavoritesBackend = config.BackendPostgres

	_, err := New(context.Background(), cfg, logger.Discard())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required database configuration")
}

func TestNew_UnknownBackend(t *testing.T) {
	cfg := baseConfig(t)
	cfg.FavoritesBackend = "etcd"

	_, err := New(context.Background(), cfg, logger.Discard())
	assert.ErrorContains(t, err, `unknown favorites backend "etcd"`)
}
