package handler

import (
	"net/http"

	"github.com/minjae-ko/habitquest/internal/logger"
	"github.com/minjae-ko/habitquest/internal/user"
)

// RegisterUserRequest represents the request to register a new user.
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,min=2,max=32,excludesall= "`
}

// RegisterUserResponse wraps the created user record.
type RegisterUserResponse struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	TotalPoints int    `json:"total_points"`
}

// HandleRegisterUser creates a new user account.
func HandleRegisterUser(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RegisterUserRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register user"); err != nil {
			return
		}

		u, err := userService.Register(r.Context(), req.Username)
		if err != nil {
			respondServiceError(w, r, "Register user", err)
			return
		}

		log.Info("User registered", "user_id", u.ID, "username", u.Username)
		respondJSON(w, http.StatusCreated, RegisterUserResponse{
			UserID:      u.ID,
			Username:    u.Username,
			TotalPoints: u.TotalPoints.Int(),
		})
	}
}

// HandleGetProfile returns the user record with level progress and all six
// graded stat dimensions.
func HandleGetProfile(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		profile, err := userService.GetProfile(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get profile", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: profile})
	}
}
