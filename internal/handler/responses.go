package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/minjae-ko/habitquest/internal/domain"
	"github.com/minjae-ko/habitquest/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent at this point, so only log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped
// user-facing error response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, userMsg := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err)
	}
	respondError(w, status, userMsg)
}

// User-facing error messages for service errors
// These messages are derived from domain errors and provide helpful guidance to users
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgAuthFailedError     = "Authentication failed. Please check your API key."

	// User messages
	ErrMsgUserNotFoundError = "User not found"

	// Mission messages
	ErrMsgMissionNotFoundError    = "Mission not found"
	ErrMsgMissionNotAssignedError = "Mission cannot be started from its current state"
	ErrMsgMissionNotInProgressErr = "Mission is not in progress"
	ErrMsgMissionCompletedError   = "Mission is already completed"
	ErrMsgMissionInProgressError  = "Finish your current mission before starting another"
	ErrMsgDailyLimitExceededError = "Daily mission start limit reached. Try again tomorrow"
	ErrMsgInvalidPercentageError  = "Progress must be a multiple of 25 between 0 and 100"

	// Stat messages
	ErrMsgStatCapacityError     = "That stat is already at its maximum"
	ErrMsgStatPointsPositiveErr = "Stat points must be positive"
	ErrMsgInvalidStatTypeError  = "Invalid stat type"

	// Daily quest messages
	ErrMsgInvalidQuestTypeError = "Invalid quest type"
	ErrMsgBusinessRuleError     = "That operation is not allowed"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// It converts internal service errors to appropriate HTTP status codes and
// messages that users can understand and act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	// Check for specific domain errors
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrMissionNotFound):
		return http.StatusNotFound, ErrMsgMissionNotFoundError
	case errors.Is(err, domain.ErrMissionNotAssigned):
		return http.StatusConflict, ErrMsgMissionNotAssignedError
	case errors.Is(err, domain.ErrMissionNotInProgress):
		return http.StatusConflict, ErrMsgMissionNotInProgressErr
	case errors.Is(err, domain.ErrMissionAlreadyCompleted):
		return http.StatusConflict, ErrMsgMissionCompletedError
	case errors.Is(err, domain.ErrMissionInProgress):
		return http.StatusConflict, ErrMsgMissionInProgressError
	case errors.Is(err, domain.ErrDailyLimitExceeded):
		return http.StatusConflict, ErrMsgDailyLimitExceededError
	case errors.Is(err, domain.ErrStatCapacityExceeded):
		return http.StatusBadRequest, ErrMsgStatCapacityError
	case errors.Is(err, domain.ErrNonPositiveStatPoints):
		return http.StatusBadRequest, ErrMsgStatPointsPositiveErr
	case errors.Is(err, domain.ErrNegativePoints):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrInvalidPercentage):
		return http.StatusBadRequest, ErrMsgInvalidPercentageError
	case errors.Is(err, domain.ErrInvalidStatType):
		return http.StatusBadRequest, ErrMsgInvalidStatTypeError
	case errors.Is(err, domain.ErrInvalidQuestType):
		return http.StatusBadRequest, ErrMsgInvalidQuestTypeError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrBusinessRuleViolation):
		return http.StatusUnprocessableEntity, ErrMsgBusinessRuleError
	}

	// For wrapped errors with domain errors as the base, try unwrapping
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	// Surface short custom messages (tests, fakes) rather than hiding them
	errMsg := err.Error()
	if errMsg != "" && len(errMsg) < 200 {
		return http.StatusInternalServerError, errMsg
	}

	// Default to generic message for very long or system-level errors
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
