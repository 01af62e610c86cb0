package handler

import (
	"net/http"
	"strings"

	"github.com/minjae-ko/habitquest/internal/domain"
	"github.com/minjae-ko/habitquest/internal/logger"
	"github.com/minjae-ko/habitquest/internal/stats"
)

// AllocateStatRequest represents a request to spend stat points on one
// dimension.
type AllocateStatRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	StatType string `json:"stat_type" validate:"required,stat_type"`
	Points   int    `json:"points" validate:"required"`
}

// StatsResponse wraps the six graded dimensions for a user.
type StatsResponse struct {
	UserID string             `json:"user_id"`
	Stats  []stats.GradedStat `json:"stats"`
}

// HandleGetStats returns every stat dimension with its grade, zero-filled for
// dimensions with no record yet.
func HandleGetStats(statsService stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		graded, err := statsService.GetUserStats(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get stats", err)
			return
		}

		respondJSON(w, http.StatusOK, StatsResponse{UserID: userID, Stats: graded})
	}
}

// HandleAllocateStat spends points on a single stat dimension.
func HandleAllocateStat(statsService stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req AllocateStatRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Allocate stat"); err != nil {
			return
		}

		statType := domain.StatType(strings.ToUpper(req.StatType))
		graded, err := statsService.Allocate(r.Context(), req.UserID, statType, req.Points)
		if err != nil {
			respondServiceError(w, r, "Allocate stat", err)
			return
		}

		log.Info("Stat points allocated",
			"user_id", req.UserID,
			"stat_type", statType,
			"points", req.Points)
		respondJSON(w, http.StatusOK, DataResponse{Data: graded})
	}
}
