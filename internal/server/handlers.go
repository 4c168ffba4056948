package server

import (
	"encoding/json"
	"net/http"
)

// Version is reported by the root and health endpoints.
const Version = "1.0.0"

// handleRoot describes the API
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":    "MarketMakers Impact Investing API",
		"version": Version,
		"endpoints": map[string]string{
			"health":          "GET /api/health",
			"impacts":         "GET /api/impacts",
			"recommendations": "GET /api/recommendations?impact={category}",
			"company":         "GET /api/company/:symbol?impact={category}",
		},
	})
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": s.cfg.Env,
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusNotFound, map[string]string{"error": "Not found"})
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
