package hotel

import "github.com/go-chi/chi/v5"

// Routes returns hotel inventory routes
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Search)
	r.Post("/rates", h.Rates)
	r.Get("/{id}", h.Details)

	return r
}
