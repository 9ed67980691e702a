package services

import (
	"slices"
	"strings"
	"sync"

	"filmapp/internal/models"

	"github.com/sirupsen/logrus"
)

var filmFormMessages = map[string]string{
	"title.required":    "This field is required",
	"category.required": "This field is required",
	"rating.required":   "This field is required",
	"rating.gte":        "Rating must be between 1 and 10",
	"rating.lte":        "Rating must be between 1 and 10",
	"year.required":     "This field is required",
	"year.gte":          "Year must be between 1900 and 2030",
	"year.lte":          "Year must be between 1900 and 2030",
}

// CatalogService holds the merged film catalog. Category lists are fixed at
// construction; films added through AddFilm live for the process lifetime only.
type CatalogService struct {
	mu         sync.RWMutex
	categories []models.Category
	films      []models.Film
	index      map[int]int
	logger     *logrus.Logger
}

func NewCatalogService(categories []models.Category, logger *logrus.Logger) *CatalogService {
	ordered := orderCategories(categories)

	s := &CatalogService{
		categories: ordered,
		index:      make(map[int]int),
		logger:     logger,
	}

	for _, c := range ordered {
		for _, f := range c.Films {
			if _, seen := s.index[f.ID]; seen {
				continue
			}
			s.index[f.ID] = len(s.films)
			s.films = append(s.films, f)
		}
	}

	logger.WithFields(logrus.Fields{
		"categories": len(ordered),
		"films":      len(s.films),
	}).Info("Catalog loaded")

	return s
}

// orderCategories puts known categories in merge order, followed by any others in
// the order given. Film slices are copied so callers cannot alias catalog state.
func orderCategories(categories []models.Category) []models.Category {
	rank := make(map[string]int, len(models.CategoryOrder))
	for i, name := range models.CategoryOrder {
		rank[name] = i
	}

	out := make([]models.Category, 0, len(categories))
	for _, c := range categories {
		out = append(out, models.Category{Name: c.Name, Films: slices.Clone(c.Films)})
	}

	slices.SortStableFunc(out, func(a, b models.Category) int {
		ra, oka := rank[a.Name]
		rb, okb := rank[b.Name]
		switch {
		case oka && okb:
			return ra - rb
		case oka:
			return -1
		case okb:
			return 1
		default:
			return 0
		}
	})
	return out
}

// AllFilms returns every film once, in first-seen order.
func (s *CatalogService) AllFilms() []models.Film {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.films)
}

func (s *CatalogService) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.categories))
	for i, c := range s.categories {
		names[i] = c.Name
	}
	return names
}

// Category returns one category list as originally supplied, duplicates included.
func (s *CatalogService) Category(name string) ([]models.Film, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.Name == name {
			return slices.Clone(c.Films), true
		}
	}
	return nil, false
}

func (s *CatalogService) FilmByID(id int) (models.Film, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return models.Film{}, false
	}
	return s.films[i], true
}

// AddFilm validates the form and stores the film. A form whose ID matches an existing
// film replaces it in place; a zero ID gets the next free id.
func (s *CatalogService) AddFilm(form models.FilmForm) (models.Film, error) {
	form.Title = strings.TrimSpace(form.Title)
	form.Category = strings.TrimSpace(form.Category)

	if err := validate.Struct(form); err != nil {
		return models.Film{}, translate(err, filmFormMessages)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	film := models.Film{
		ID:            form.ID,
		Title:         form.Title,
		Category:      form.Category,
		Description:   strings.TrimSpace(form.Description),
		Duration:      strings.TrimSpace(form.Duration),
		Year:          *form.Year,
		Rating:        *form.Rating,
		ImageURL:      strings.TrimSpace(form.ImageURL),
		WatchPriority: models.ParsePriority(form.Priority),
	}

	if film.ID == 0 {
		film.ID = s.nextID()
	}

	if i, ok := s.index[film.ID]; ok {
		s.films[i] = film
		s.logger.WithField("film_id", film.ID).Info("Film updated")
		return film, nil
	}

	s.index[film.ID] = len(s.films)
	s.films = append(s.films, film)
	s.logger.WithField("film_id", film.ID).Info("Film added")
	return film, nil
}

func (s *CatalogService) nextID() int {
	maxID := 0
	for _, f := range s.films {
		maxID = max(maxID, f.ID)
	}
	return maxID + 1
}
