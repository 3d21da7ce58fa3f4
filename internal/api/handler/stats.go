package handler

import (
	"net/http"
	"strconv"

	"github.com/puzzlecraft/cryptogram-go/internal/api/apierr"
	"github.com/puzzlecraft/cryptogram-go/internal/api/response"
	"github.com/puzzlecraft/cryptogram-go/internal/services/stats"
)

const (
	defaultTrials = 1000
	// maxTrials bounds the work a single request can demand
	maxTrials = 1000000
)

// StatsHandler handles generator statistics endpoints
type StatsHandler struct {
	stats *stats.Service
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(statsService *stats.Service) *StatsHandler {
	return &StatsHandler{stats: statsService}
}

// Attempts handles GET /stats/attempts
func (h *StatsHandler) Attempts(w http.ResponseWriter, r *http.Request) {
	trials := defaultTrials
	if raw := r.URL.Query().Get("trials"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			apierr.WriteError(w, apierr.NewInvalidRequestError("trials must be an integer"))
			return
		}
		trials = parsed
	}

	if trials > maxTrials {
		apierr.WriteError(w, apierr.NewInvalidRequestError("trials is too large"))
		return
	}

	average, err := h.stats.AverageAttempts(trials)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Stats{
		Trials:  trials,
		Average: average,
	})
}
