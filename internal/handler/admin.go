package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/minjae-ko/habitquest/internal/logger"
)

// DailyResetRunner runs a full daily reset cycle: expire leftover missions,
// generate the day's mission set, and announce the reset.
type DailyResetRunner interface {
	RunDailyReset(ctx context.Context, day time.Time) (int64, error)
}

// DailyResetResponse reports the outcome of a manual reset run.
type DailyResetResponse struct {
	Date              string `json:"date"`
	MissionsGenerated int64  `json:"missions_generated"`
}

// HandleTriggerDailyReset runs the daily reset on demand. The scheduled worker
// runs the same cycle at midnight UTC; this endpoint exists for operators.
func HandleTriggerDailyReset(runner DailyResetRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		day := time.Now().UTC()
		if raw := GetOptionalQueryParam(r, "date", ""); raw != "" {
			parsed, err := time.Parse("2006-01-02", raw)
			if err != nil {
				respondError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
				return
			}
			day = parsed
		}

		generated, err := runner.RunDailyReset(r.Context(), day)
		if err != nil {
			log.Error("Manual daily reset failed", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgDailyResetFailed)
			return
		}

		log.Info("Manual daily reset complete", "date", day.Format("2006-01-02"), "missions_generated", generated)
		respondJSON(w, http.StatusOK, DailyResetResponse{
			Date:              day.Format("2006-01-02"),
			MissionsGenerated: generated,
		})
	}
}
