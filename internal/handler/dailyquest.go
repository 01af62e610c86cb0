package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/minjae-ko/habitquest/internal/dailyquest"
	"github.com/minjae-ko/habitquest/internal/domain"
	"github.com/minjae-ko/habitquest/internal/logger"
)

// CompleteQuestRequest checks off one of today's quest slots.
type CompleteQuestRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	QuestType string `json:"quest_type" validate:"required,quest_type"`
}

// UncompleteQuestRequest unchecks a quest slot. Only today's records may be
// unchecked.
type UncompleteQuestRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	QuestType string `json:"quest_type" validate:"required,quest_type"`
}

// DailyQuestsResponse wraps the day status plus the user's current streak.
type DailyQuestsResponse struct {
	UserID  string                `json:"user_id"`
	Date    string                `json:"date"`
	Day     *dailyquest.DayStatus `json:"day"`
	Streak  int                   `json:"streak"`
	Message string                `json:"message"`
}

// HandleGetDailyQuests returns the quest checklist and summary for a day. The
// optional `date` query parameter (YYYY-MM-DD) defaults to today.
func HandleGetDailyQuests(questService dailyquest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		day := time.Now().UTC()
		if raw := GetOptionalQueryParam(r, "date", ""); raw != "" {
			parsed, err := time.Parse("2006-01-02", raw)
			if err != nil {
				respondError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
				return
			}
			day = parsed
		}

		status, err := questService.GetDay(r.Context(), userID, day)
		if err != nil {
			respondServiceError(w, r, "Get daily quests", err)
			return
		}

		streak, err := questService.GetStreak(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get daily quests", err)
			return
		}

		respondJSON(w, http.StatusOK, DailyQuestsResponse{
			UserID:  userID,
			Date:    dailyquest.DateOf(day).Format("2006-01-02"),
			Day:     status,
			Streak:  streak,
			Message: dailyquest.StatusMessageFor(status.Summary.CompletionPct.Int()),
		})
	}
}

// HandleCompleteQuest checks off one of today's quests and returns the points
// and special reward tiers earned by the check.
func HandleCompleteQuest(questService dailyquest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CompleteQuestRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Complete daily quest"); err != nil {
			return
		}

		questType := domain.QuestType(strings.ToUpper(req.QuestType))
		result, err := questService.CompleteQuest(r.Context(), req.UserID, questType)
		if err != nil {
			respondServiceError(w, r, "Complete daily quest", err)
			return
		}

		log.Info("Daily quest checked",
			"user_id", req.UserID,
			"quest_type", questType,
			"already_completed", result.AlreadyCompleted,
			"completion_pct", result.Summary.CompletionPct.Int())
		respondJSON(w, http.StatusOK, DataResponse{Data: result})
	}
}

// HandleUncompleteQuest unchecks one of today's quests. Earned tiers and
// points are kept; only the checklist state and percentage move back.
func HandleUncompleteQuest(questService dailyquest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req UncompleteQuestRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Uncheck daily quest"); err != nil {
			return
		}

		questType := domain.QuestType(strings.ToUpper(req.QuestType))
		summary, err := questService.UncompleteQuest(r.Context(), req.UserID, questType, time.Now().UTC())
		if err != nil {
			respondServiceError(w, r, "Uncheck daily quest", err)
			return
		}

		log.Info("Daily quest unchecked", "user_id", req.UserID, "quest_type", questType)
		respondJSON(w, http.StatusOK, DataResponse{Data: summary})
	}
}
