package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"filmapp/internal/logger"
	"filmapp/internal/models"
	"filmapp/internal/repository"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Load(ctx context.Context, key string) ([]string, error) {
	args := m.Called(ctx, key)
	members, _ := args.Get(0).([]string)
	return members, args.Error(1)
}

func (m *mockRepository) Save(ctx context.Context, key string, members []string) error {
	return m.Called(ctx, key, members).Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func newFileFavorites(t *testing.T, fs afero.Fs) *FavoritesService {
	t.Helper()
	repo, err := repository.NewFileRepository(fs, "prefs", FavoritesNamespace)
	require.NoError(t, err)
	return NewFavoritesService(repo, logger.Discard())
}

func TestFavorites_ReadAfterWrite(t *testing.T) {
	s := newFileFavorites(t, afero.NewMemMapFs())
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, 7))
	assert.True(t, s.IsFavorite(ctx, 7))

	require.NoError(t, s.Remove(ctx, 7))
	assert.False(t, s.IsFavorite(ctx, 7))
}

func TestFavorites_Idempotent(t *testing.T) {
	s := newFileFavorites(t, afero.NewMemMapFs())
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, 5))
	require.NoError(t, s.Add(ctx, 5))
	assert.Equal(t, []int{5}, s.List(ctx))

	require.NoError(t, s.Remove(ctx, 9))
	assert.Equal(t, []int{5}, s.List(ctx))
}

func TestFavorites_ListAscending(t *testing.T) {
	s := newFileFavorites(t, afero.NewMemMapFs())
	ctx := context.Background()

	for _, id := range []int{44, 3, 16} {
		require.NoError(t, s.Add(ctx, id))
	}
	assert.Equal(t, []int{3, 16, 44}, s.List(ctx))
	assert.Equal(t, 3, s.Count(ctx))
}

func TestFavorites_Clear(t *testing.T) {
	s := newFileFavorites(t, afero.NewMemMapFs())
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, 12))
	require.NoError(t, s.Clear(ctx))

	assert.Empty(t, s.List(ctx))
	assert.Equal(t, 0, s.Count(ctx))
}

func TestFavorites_SurviveRestart(t *testing.T) {
	fs := afero.NewMemMapFs()
	ctx := context.Background()

	first := newFileFavorites(t, fs)
	require.NoError(t, first.Add(ctx, 3))
	require.NoError(t, first.Add(ctx, 30))

	second := newFileFavorites(t, fs)
	assert.Equal(t, []int{3, 30}, second.List(ctx))
}

func TestFavorites_CorruptStateIsEmpty(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "prefs/favorites.json", []byte("garbage"), 0o600))
	s := newFileFavorites(t, fs)
	ctx := context.Background()

	assert.Empty(t, s.List(ctx))
	assert.Equal(t, 0, s.Count(ctx))
	assert.False(t, s.IsFavorite(ctx, 1))

	require.NoError(t, s.Add(ctx, 1))
	assert.Equal(t, []int{1}, s.List(ctx))
}

func TestFavorites_DropsNonNumericMembers(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "prefs/favorites.json", []byte(`{"fav_ids":["4","x","2"]}`), 0o600))
	s := newFileFavorites(t, fs)

	assert.Equal(t, []int{2, 4}, s.List(context.Background()))
}

func TestFavorites_Toggle(t *testing.T) {
	s := newFileFavorites(t, afero.NewMemMapFs())
	ctx := context.Background()

	on, err := s.Toggle(ctx, 8)
	require.NoError(t, err)
	assert.True(t, on)

	on, err = s.Toggle(ctx, 8)
	require.NoError(t, err)
	assert.False(t, on)
	assert.Empty(t, s.List(ctx))
}

func TestFavorites_SaveErrorIsReturned(t *testing.T) {
	repo := &mockRepository{}
	repo.On("Load", mock.Anything, "fav_ids").Return([]string{"1"}, nil)
	repo.On("Save", mock.Anything, "fav_ids", []string{"1", "2"}).Return(errors.New("disk full"))

	s := NewFavoritesService(repo, logger.Discard())
	err := s.Add(context.Background(), 2)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save favorites")
	repo.AssertExpectations(t)
}

func TestFavorites_ReadErrorDegrades(t *testing.T) {
	repo := &mockRepository{}
	repo.On("Load", mock.Anything, "fav_ids").Return(nil, errors.New("connection refused"))

	s := NewFavoritesService(repo, logger.Discard())

	assert.Empty(t, s.List(context.Background()))
	assert.Equal(t, 0, s.Count(context.Background()))
}

func TestFavorites_ClearErrorIsReturned(t *testing.T) {
	repo := &mockRepository{}
	repo.On("Delete", mock.Anything, "fav_ids").Return(errors.New("timeout"))

	s := NewFavoritesService(repo, logger.Discard())
	assert.ErrorContains(t, s.Clear(context.Background()), "failed to clear favorites")
}

func TestFavorites_ConcurrentAdds(t *testing.T) {
	s := newFileFavorites(t, afero.NewMemMapFs())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			assert.NoError(t, s.Add(ctx, id))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, s.Count(ctx))
}

func TestFavorites_FilmsView(t *testing.T) {
	s := newFileFavorites(t, afero.NewMemMapFs())
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, 3))
	require.NoError(t, s.Add(ctx, 1))
	require.NoError(t, s.Add(ctx, 99))

	catalog := []models.Film{{ID: 3, Title: "C"}, {ID: 2, Title: "B"}, {ID: 1, Title: "A"}}
	view := s.Films(ctx, catalog)

	require.Len(t, view, 2)
	assert.Equal(t, 3, view[0].ID)
	assert.Equal(t, 1, view[1].ID)
}

func TestFavorites_NullDocumentIsEmpty(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "prefs/favorites.json", []byte("null"), 0o600))
	s := newFileFavorites(t, fs)
	ctx := context.Background()

	assert.Empty(t, s.List(ctx))
	assert.NotPanics(t, func() {
		require.NoError(t, s.Add(ctx, 12))
	})
	assert.Equal(t, []int{12}, s.List(ctx))

	on, err := s.Toggle(ctx, 12)
	require.NoError(t, err)
	assert.False(t, on)
}
