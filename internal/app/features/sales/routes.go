package sales

import "github.com/go-chi/chi/v5"

// Routes returns the router for the sales feature.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/sales", h.GetOverall)
	return r
}
