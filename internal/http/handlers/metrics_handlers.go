package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

// GetCatalogMetricsHandler godoc
// @Summary Catalog summary
// @Tags metrics
// @Produce json
// @Success 200 {object} repo.CatalogMetrics
// @Failure 500 {string} string "Internal error"
// @Router /api/metrics [get]
func (s *Server) GetCatalogMetricsHandler(w http.ResponseWriter, r *http.Request) {
	m, err := s.metricsRepo.GetCatalogMetrics(r.Context())
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Str("component", "GetCatalogMetricsHandler").Msg("")
		http.Error(w, "failed to fetch metrics", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, m); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to write JSON response")
	}
}
