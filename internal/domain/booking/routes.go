package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns booking routes. Only the "my bookings" view needs an
// authenticated guest identity.
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Post("/check-availability", h.CheckAvailability)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/my", h.ListMine)
	})

	r.Get("/{id}", h.GetByID)

	return r
}
