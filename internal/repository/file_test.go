package repository

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRepository_SaveLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	repo, err := NewFileRepository(fs, "prefs", "favorites")
	require.NoError(t, err)
	ctx := context.Background()

	members, err := repo.Load(ctx, "fav_ids")
	require.NoError(t, err)
	assert.Empty(t, members)

	require.NoError(t, repo.Save(ctx, "fav_ids", []string{"44", "3"}))

	members, err = repo.Load(ctx, "fav_ids")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"3", "44"}, members)

	data, err := afero.ReadFile(fs, "prefs/favorites.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"fav_ids":["3","44"]}`, string(data))

	exists, err := afero.Exists(fs, "prefs/favorites.json.tmp")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFileRepository_SurvivesReopen(t *testing.T) {
	fs := afero.NewMemMapFs()
	ctx := context.Background()

	first, err := NewFileRepository(fs, "prefs", "favorites")
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, "fav_ids", []string{"7"}))

	second, err := NewFileRepository(fs, "prefs", "favorites")
	require.NoError(t, err)
	members, err := second.Load(ctx, "fav_ids")
	require.NoError(t, err)
	assert.Equal(t, []string{"7"}, members)
}

func TestFileRepository_DeleteKeepsOtherKeys(t *testing.T) {
	fs := afero.NewMemMapFs()
	repo, err := NewFileRepository(fs, "prefs", "favorites")
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "fav_ids", []string{"1"}))
	require.NoError(t, repo.Save(ctx, "other", []string{"2"}))
	require.NoError(t, repo.Delete(ctx, "fav_ids"))

	members, err := repo.Load(ctx, "fav_ids")
	require.NoError(t, err)
	assert.Empty(t, members)

	members, err = repo.Load(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, members)
}

func TestFileRepository_CorruptDocument(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "prefs/favorites.json", []byte("{not json"), 0o600))

	repo, err := NewFileRepository(fs, "prefs", "favorites")
	require.NoError(t, err)
	ctx := context.Background()

	_, err = repo.Load(ctx, "fav_ids")
	assert.ErrorIs(t, err, ErrCorrupt)

	require.NoError(t, repo.Save(ctx, "fav_ids", []string{"5"}))
	members, err := repo.Load(ctx, "fav_ids")
	require.NoError(t, err)
	assert.Equal(t, []string{"5"}, members)
}

func TestFileRepository_WrongShape(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "prefs/favorites.json", []byte(`{"fav_ids": 12}`), 0o600))

	repo, err := NewFileRepository(fs, "prefs", "favorites")
	require.NoError(t, err)

	_, err = repo.Load(context.Background(), "fav_ids")
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestFileRepository_NullDocument(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "prefs/favorites.json", []byte("null"), 0o600))

	repo, err := NewFileRepository(fs, "prefs", "favorites")
	require.NoError(t, err)
	ctx := context.Background()

	members, err := repo.Load(ctx, "fav_ids")
	require.NoError(t, err)
	assert.Empty(t, members)

	assert.NotPanics(t, func() {
		require.NoError(t, repo.Save(ctx, "fav_ids", []string{"12"}))
	})
	members, err = repo.Load(ctx, "fav_ids")
	require.NoError(t, err)
	assert.Equal(t, []string{"12"}, members)

	require.NoError(t, afero.WriteFile(fs, "prefs/favorites.json", []byte("null"), 0o600))
	assert.NotPanics(t, func() {
		require.NoError(t, repo.Delete(ctx, "fav_ids"))
	})
}
