package general

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the router for the general feature.
//
// When mounted at /general:
//   - GET /general/user/{id}
//   - GET /general/dashboard
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/user/{id}", h.GetUser)
	r.Get("/dashboard", h.GetDashboard)

	return r
}
