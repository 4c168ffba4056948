package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all company routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/company", func(r chi.Router) {
		r.Delete("/cache", h.HandleClearCache)
		r.Get("/search", h.HandleSearch)
		r.Get("/{symbol}", h.HandleGetCompany)
		r.Get("/{symbol}/history", h.HandleGetHistory)
	})
}
