package handler

import (
	"net/http"

	"github.com/minjae-ko/habitquest/internal/achievement"
)

// AchievementListResponse wraps the full catalog with the user's progress.
type AchievementListResponse struct {
	UserID        string              `json:"user_id"`
	Achievements  []achievement.Entry `json:"achievements"`
	NewlyUnlocked []achievement.Entry `json:"newly_unlocked,omitempty"`
}

// HandleListAchievements returns every catalog entry with the user's progress
// filled in. Listing also persists any entry found at full progress, so a
// fresh unlock shows up in newly_unlocked exactly once.
func HandleListAchievements(achievementService achievement.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		result, err := achievementService.ListForUser(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "List achievements", err)
			return
		}

		respondJSON(w, http.StatusOK, AchievementListResponse{
			UserID:        userID,
			Achievements:  result.Entries,
			NewlyUnlocked: result.NewlyUnlocked,
		})
	}
}
