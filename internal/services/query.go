package services

import (
	"cmp"
	"slices"
	"strings"

	"filmapp/internal/models"

	"golang.org/x/text/cases"
)

// QueryParams describes one screen request over a film list.
type QueryParams struct {
	Text          string
	Sort          models.SortKey
	FavoritesOnly bool
	FavoriteIDs   []int
}

// Query applies the favorites predicate, then the text filter, then the sort.
func Query(films []models.Film, p QueryParams) []models.Film {
	out := films
	if p.FavoritesOnly {
		out = FavoritesOnly(out, p.FavoriteIDs)
	}
	return Sort(Filter(out, p.Text), p.Sort)
}

// Filter keeps films whose title or category contains query, ignoring case.
// A blank query keeps everything.
func Filter(films []models.Film, query string) []models.Film {
	query = strings.TrimSpace(query)
	if query == "" {
		return slices.Clone(films)
	}

	fold := cases.Fold()
	needle := fold.String(query)

	out := make([]models.Film, 0, len(films))
	for _, f := range films {
		if strings.Contains(fold.String(f.Title), needle) || strings.Contains(fold.String(f.Category), needle) {
			out = append(out, f)
		}
	}
	return out
}

// Sort returns a stably sorted copy. Title sorts ascending, rating and year
// descending; any other key keeps the input order.
func Sort(films []models.Film, key models.SortKey) []models.Film {
	out := slices.Clone(films)

	switch key {
	case models.SortTitle:
		slices.SortStableFunc(out, func(a, b models.Film) int { return strings.Compare(a.Title, b.Title) })
	case models.SortRating:
		slices.SortStableFunc(out, func(a, b models.Film) int { return cmp.Compare(b.Rating, a.Rating) })
	case models.SortYear:
		slices.SortStableFunc(out, func(a, b models.Film) int { return cmp.Compare(b.Year, a.Year) })
	}
	return out
}

// FavoritesOnly keeps films whose id is in ids, preserving the order of films.
func FavoritesOnly(films []models.Film, ids []int) []models.Film {
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	out := make([]models.Film, 0, len(set))
	for _, f := range films {
		if _, ok := set[f.ID]; ok {
			out = append(out, f)
		}
	}
	return out
}
