package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/storefront/internal/predict"
	"github.com/rs/zerolog/log"
)

// PredictHandler godoc
// @Summary Estimate a house price
// @Description Runs the pre-trained regression on area, bedroom and bathroom counts.
// @Tags prediction
// @Accept json
// @Produce json
// @Param input body map[string]any true "total_sqft, bhk, bath"
// @Success 200 {object} PredictionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /predict [post]
func (s *Server) PredictHandler(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	var body map[string]any
	if err := readJSON(w, r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	features, err := predict.ParseFeatures(body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	estimate, err := s.predictor.Predict(features)
	if err != nil {
		logger.Error().Err(err).Str("component", "PredictHandler").Msg("inference failed")
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	if err := writeJSON(w, http.StatusOK, PredictionResponse{PredictedPrice: predict.FormatPrice(estimate)}); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")
	}
}
