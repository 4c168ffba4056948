package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers impact catalog and recommendation routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/impacts", h.HandleGetImpacts)
	r.Get("/recommendations", h.HandleGetRecommendations)
}
