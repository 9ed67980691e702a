package handlers

import (
	"net/http"

	"filmapp/internal/container"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter mounts the screen-facing JSON API.
func NewRouter(c *container.Container) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(c.Logger))

	search := rateLimit(newSearchLimiter(c.Config.SearchRate, c.Config.SearchBurst), c.Logger)

	r.Get("/health", Health(c))

	r.Route("/films", func(r chi.Router) {
		r.With(search).Get("/", ListFilms(c))
		r.Post("/", SaveFilm(c))
		r.Get("/categories", ListCategories(c))
		r.Get("/categories/{name}", CategoryFilms(c))
		r.Get("/{id}", FilmDetails(c))
	})

	r.Route("/favorites", func(r chi.Router) {
		r.With(search).Get("/", ListFavorites(c))
		r.Delete("/", ClearFavorites(c))
		r.Get("/ids", FavoriteIDs(c))
		r.Put("/{id}", AddFavorite(c))
		r.Delete("/{id}", RemoveFavorite(c))
		r.Post("/{id}/toggle", ToggleFavorite(c))
	})

	r.Route("/payments", func(r chi.Router) {
		r.Post("/", StartPayment(c))
		r.Get("/{id}", PaymentStatus(c))
		r.Delete("/{id}", CancelPayment(c))
		r.Put("/{id}/level", SelectLevel(c))
		r.Put("/{id}/method", SelectMethod(c))
		r.Put("/{id}/card", EnterCard(c))
		r.Put("/{id}/paypal", EnterPayPal(c))
		r.Post("/{id}/confirm", ConfirmPayment(c))
	})

	return r
}

func Health(c *container.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, c.Logger, http.StatusOK, map[string]string{
			"status":  "ok",
			"backend": c.Config.FavoritesBackend,
		})
	}
}
