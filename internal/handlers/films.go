package handlers

import (
	"errors"
	"net/http"

	"filmapp/internal/container"
	"filmapp/internal/models"
	"filmapp/internal/services"

	"github.com/go-chi/chi/v5"
)

type filmsResponse struct {
	Films []models.Film `json:"films"`
	Total int           `json:"total"`
}

type filmDetailsResponse struct {
	Film     models.Film `json:"film"`
	Favorite bool        `json:"favorite"`
	Found    bool        `json:"found"`
}

type fieldErrorsResponse struct {
	Errors services.FieldErrors `json:"errors"`
}

func newFilmsResponse(films []models.Film) filmsResponse {
	if films == nil {
		films = []models.Film{}
	}
	return filmsResponse{Films: films, Total: len(films)}
}

// queryParams reads ?q= and ?sort=. An unrecognised sort leaves the order alone.
func queryParams(r *http.Request) services.QueryParams {
	key, _ := models.ParseSortKey(r.URL.Query().Get("sort"))
	return services.QueryParams{
		Text: r.URL.Query().Get("q"),
		Sort: key,
	}
}

func ListFilms(c *container.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		films := services.Query(c.Catalog.AllFilms(), queryParams(r))
		writeJSON(w, c.Logger, http.StatusOK, newFilmsResponse(films))
	}
}

func ListCategories(c *container.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, c.Logger, http.StatusOK, map[string][]string{
			"categories": c.Catalog.Categories(),
		})
	}
}

func CategoryFilms(c *container.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		films, ok := c.Catalog.Category(chi.URLParam(r, "name"))
		if !ok {
			writeError(w, c.Logger, http.StatusNotFound, "category not found")
			return
		}
		writeJSON(w, c.Logger, http.StatusOK, newFilmsResponse(films))
	}
}

// FilmDetails never fails: an unknown or malformed id yields an empty film with
// default fields and found=false.
func FilmDetails(c *container.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := idParam(r)

		film, ok := c.Catalog.FilmByID(id)
		if !ok {
			c.Logger.WithField("film_id", chi.URLParam(r, "id")).Debug("Film not found, using defaults")
			film = models.Film{ID: id, WatchPriority: models.PriorityMedium}
		}

		writeJSON(w, c.Logger, http.StatusOK, filmDetailsResponse{
			Film:     film,
			Favorite: ok && c.Favorites.IsFavorite(r.Context(), id),
			Found:    ok,
		})
	}
}

// SaveFilm handles the add/edit form. Edits answer 200, new films 201.
func SaveFilm(c *container.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form models.FilmForm
		if err := decodeJSON(r, &form); err != nil {
			writeError(w, c.Logger, http.StatusBadRequest, "invalid film payload")
			return
		}

		_, editing := c.Catalog.FilmByID(form.ID)
		editing = editing && form.ID != 0

		film, err := c.Catalog.AddFilm(form)
		var fieldErrs services.FieldErrors
		if errors.As(err, &fieldErrs) {
			writeJSON(w, c.Logger, http.StatusUnprocessableEntity, fieldErrorsResponse{Errors: fieldErrs})
			return
		}
		if err != nil {
			c.Logger.WithError(err).Error("Failed to save film")
			writeError(w, c.Logger, http.StatusInternalServerError, "failed to save film")
			return
		}

		status := http.StatusCreated
		if editing {
			status = http.StatusOK
		}
		writeJSON(w, c.Logger, status, film)
	}
}
