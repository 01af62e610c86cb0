package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/minjae-ko/habitquest/internal/domain"
	"github.com/minjae-ko/habitquest/internal/logger"
	"github.com/minjae-ko/habitquest/internal/mission"
)

// StartMissionRequest identifies the mission a user wants to start.
type StartMissionRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	MissionID string `json:"mission_id" validate:"required,uuid"`
}

// UpdateMissionProgressRequest moves an in-progress mission to a new
// completion percentage.
type UpdateMissionProgressRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	MissionID string `json:"mission_id" validate:"required,uuid"`
	Progress  int    `json:"progress"`
}

// CompleteMissionRequest marks an in-progress mission as done.
type CompleteMissionRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	MissionID string `json:"mission_id" validate:"required,uuid"`
}

// MissionListResponse wraps a day's mission set.
type MissionListResponse struct {
	UserID   string           `json:"user_id"`
	Date     string           `json:"date"`
	Missions []domain.Mission `json:"missions"`
}

// HandleListMissions returns the user's missions for a day. The optional
// `date` query parameter (YYYY-MM-DD) defaults to today.
func HandleListMissions(missionService mission.Service) http.HandlerFunc {
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

		missions, err := missionService.ListUserMissions(r.Context(), userID, day)
		if err != nil {
			respondServiceError(w, r, "List missions", err)
			return
		}

		respondJSON(w, http.StatusOK, MissionListResponse{
			UserID:   userID,
			Date:     day.Format("2006-01-02"),
			Missions: missions,
		})
	}
}

// HandleStartMission moves an assigned mission to IN_PROGRESS.
func HandleStartMission(missionService mission.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req StartMissionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Start mission"); err != nil {
			return
		}

		missionID, err := uuid.Parse(req.MissionID)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidMissionID)
			return
		}

		m, err := missionService.StartMission(r.Context(), req.UserID, missionID)
		if err != nil {
			respondServiceError(w, r, "Start mission", err)
			return
		}

		log.Info("Mission started", "user_id", req.UserID, "mission_id", missionID)
		respondJSON(w, http.StatusOK, DataResponse{Data: m})
	}
}

// HandleUpdateMissionProgress sets an in-progress mission to a new percentage.
func HandleUpdateMissionProgress(missionService mission.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateMissionProgressRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update mission progress"); err != nil {
			return
		}

		missionID, err := uuid.Parse(req.MissionID)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidMissionID)
			return
		}

		m, err := missionService.UpdateProgress(r.Context(), req.UserID, missionID, req.Progress)
		if err != nil {
			respondServiceError(w, r, "Update mission progress", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: m})
	}
}

// HandleCompleteMission completes an in-progress mission and returns the
// rewards earned, including any level-up.
func HandleCompleteMission(missionService mission.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CompleteMissionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Complete mission"); err != nil {
			return
		}

		missionID, err := uuid.Parse(req.MissionID)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidMissionID)
			return
		}

		completion, err := missionService.CompleteMission(r.Context(), req.UserID, missionID)
		if err != nil {
			respondServiceError(w, r, "Complete mission", err)
			return
		}

		log.Info("Mission completed",
			"user_id", req.UserID,
			"mission_id", missionID,
			"reward_points", completion.RewardPoints.Int(),
			"level_up", completion.LevelUp != nil)
		respondJSON(w, http.StatusOK, DataResponse{Data: completion})
	}
}
