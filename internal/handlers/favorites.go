package handlers

import (
	"net/http"

	"filmapp/internal/container"
	"filmapp/internal/services"
)

type favoriteResponse struct {
	ID       int    `json:"id"`
	Favorite bool   `json:"favorite"`
	Notice   string `json:"notice,omitempty"`
}

type noticeResponse struct {
	Notice string `json:"notice,omitempty"`
}

// ListFavorites is the favorites screen: catalog films that are favorites, then the
// usual text filter and sort.
func ListFavorites(c *container.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := queryParams(r)
		params.FavoritesOnly = true
		params.FavoriteIDs = c.Favorites.List(r.Context())

		films := services.Query(c.Catalog.AllFilms(), params)
		writeJSON(w, c.Logger, http.StatusOK, newFilmsResponse(films))
	}
}

func FavoriteIDs(c *container.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ids := c.Favorites.List(r.Context())
		writeJSON(w, c.Logger, http.StatusOK, map[string]any{
			"ids":   ids,
			"count": len(ids),
		})
	}
}

func AddFavorite(c *container.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			writeError(w, c.Logger, http.StatusBadRequest, "invalid film id")
			return
		}

		if err := c.Favorites.Add(r.Context(), id); err != nil {
			c.Logger.WithError(err).WithField("film_id", id).Error("Failed to add favorite")
			writeError(w, c.Logger, http.StatusInternalServerError, "failed to update favorites")
			return
		}
		writeJSON(w, c.Logger, http.StatusOK, favoriteResponse{ID: id, Favorite: true})
	}
}

func RemoveFavorite(c *container.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			writeError(w, c.Logger, http.StatusBadRequest, "invalid film id")
			return
		}

		if err := c.Favorites.Remove(r.Context(), id); err != nil {
			c.Logger.WithError(err).WithField("film_id", id).Error("Failed to remove favorite")
			writeError(w, c.Logger, http.StatusInternalServerError, "failed to update favorites")
			return
		}

		resp := favoriteResponse{ID: id}
		if film, found := c.Catalog.FilmByID(id); found {
			resp.Notice = film.Title + " removed from favorites"
		}
		writeJSON(w, c.Logger, http.StatusOK, resp)
	}
}

func ToggleFavorite(c *container.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			writeError(w, c.Logger, http.StatusBadRequest, "invalid film id")
			return
		}

		favorite, err := c.Favorites.Toggle(r.Context(), id)
		if err != nil {
			c.Logger.WithError(err).WithField("film_id", id).Error("Failed to toggle favorite")
			writeError(w, c.Logger, http.StatusInternalServerError, "failed to update favorites")
			return
		}
		writeJSON(w, c.Logger, http.StatusOK, favoriteResponse{ID: id, Favorite: favorite})
	}
}

func ClearFavorites(c *container.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		had := c.Favorites.Count(r.Context())

		// The key is deleted even when nothing readable is stored, which also drops
		// corrupt state.
		if err := c.Favorites.Clear(r.Context()); err != nil {
			c.Logger.WithError(err).Error("Failed to clear favorites")
			writeError(w, c.Logger, http.StatusInternalServerError, "failed to clear favorites")
			return
		}
		if had == 0 {
			writeJSON(w, c.Logger, http.StatusOK, noticeResponse{})
			return
		}
		writeJSON(w, c.Logger, http.StatusOK, noticeResponse{Notice: "All favorites cleared"})
	}
}
