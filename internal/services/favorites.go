package services

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"

	"filmapp/internal/models"
	"filmapp/internal/repository"

	"github.com/sirupsen/logrus"
)

const (
	FavoritesNamespace = "favorites"
	favoritesKey       = "fav_ids"
)

// FavoritesService keeps the persisted set of favorite film ids. Every mutation is
// written through before it returns; unreadable state is treated as empty.
type FavoritesService struct {
	mu     sync.Mutex
	repo   repository.FavoritesRepository
	logger *logrus.Logger
}

func NewFavoritesService(repo repository.FavoritesRepository, logger *logrus.Logger) *FavoritesService {
	return &FavoritesService{repo: repo, logger: logger}
}

func (s *FavoritesService) Add(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.load(ctx)
	if _, ok := ids[id]; ok {
		return nil
	}
	ids[id] = struct{}{}

	if err := s.save(ctx, ids); err != nil {
		return err
	}
	s.logger.WithField("film_id", id).Info("Film added to favorites")
	return nil
}

func (s *FavoritesService) Remove(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.load(ctx)
	if _, ok := ids[id]; !ok {
		return nil
	}
	delete(ids, id)

	if err := s.save(ctx, ids); err != nil {
		return err
	}
	s.logger.WithField("film_id", id).Info("Film removed from favorites")
	return nil
}

// Toggle flips membership and reports whether id is a favorite afterwards.
func (s *FavoritesService) Toggle(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.load(ctx)
	_, was := ids[id]
	if was {
		delete(ids, id)
	} else {
		ids[id] = struct{}{}
	}

	if err := s.save(ctx, ids); err != nil {
		return was, err
	}
	s.logger.WithFields(logrus.Fields{
		"film_id":  id,
		"favorite": !was,
	}).Info("Favorite toggled")
	return !was, nil
}

func (s *FavoritesService) IsFavorite(ctx context.Context, id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.load(ctx)[id]
	return ok
}

// List returns the favorite ids in ascending order.
func (s *FavoritesService) List(ctx context.Context) []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return sortedIDs(s.load(ctx))
}

func (s *FavoritesService) Count(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.load(ctx))
}

// Clear removes the whole set in a single write.
func (s *FavoritesService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(ctx, favoritesKey); err != nil {
		return fmt.Errorf("failed to clear favorites: %w", err)
	}
	s.logger.Info("Favorites cleared")
	return nil
}

// Films returns the films of catalog that are favorites, in catalog order.
func (s *FavoritesService) Films(ctx context.Context, catalog []models.Film) []models.Film {
	return FavoritesOnly(catalog, s.List(ctx))
}

func (s *FavoritesService) load(ctx context.Context) map[int]struct{} {
	ids := make(map[int]struct{})

	members, err := s.repo.Load(ctx, favoritesKey)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to read favorites, treating as empty")
		return ids
	}

	for _, m := range members {
		id, err := strconv.Atoi(m)
		if err != nil {
			s.logger.WithField("member", m).Warn("Dropping non-numeric favorite id")
			continue
		}
		ids[id] = struct{}{}
	}
	return ids
}

func (s *FavoritesService) save(ctx context.Context, ids map[int]struct{}) error {
	sorted := sortedIDs(ids)
	members := make([]string, len(sorted))
	for i, id := range sorted {
		members[i] = strconv.Itoa(id)
	}

	if err := s.repo.Save(ctx, favoritesKey, members); err != nil {
		return fmt.Errorf("failed to save favorites: %w", err)
	}
	return nil
}

func sortedIDs(ids map[int]struct{}) []int {
	out := make([]int, 0, len(ids))
	for id := range ids {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
