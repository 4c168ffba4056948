// Package handlers provides HTTP handlers for impact categories and recommendations.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/aristath/impact/internal/domain"
	"github.com/aristath/impact/internal/modules/recommendations"
	"github.com/rs/zerolog"
)

// Handler handles impact catalog and recommendation requests
type Handler struct {
	service *recommendations.Service
	log     zerolog.Logger
}

// NewHandler creates a new recommendations handler
func NewHandler(service *recommendations.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "recommendations").Logger(),
	}
}

// HandleGetImpacts handles GET /api/impacts
func (h *Handler) HandleGetImpacts(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, recommendations.Categories())
}

// HandleGetRecommendations handles GET /api/recommendations?impact=&limit=&real=
func (h *Handler) HandleGetRecommendations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	category := domain.ImpactCategory(query.Get("impact"))
	if category == "" {
		category = domain.CategoryBroad
	}

	limit := recommendations.DefaultLimit
	if raw := query.Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	live := query.Get("real") == "true"

	results := h.service.Recommend(r.Context(), category, limit, live)
	h.writeJSON(w, http.StatusOK, results)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
