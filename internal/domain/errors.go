package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound = "user not found"

	// Mission state errors
	ErrMsgMissionNotFound         = "mission not found"
	ErrMsgMissionNotAssigned      = "mission is not in assigned state"
	ErrMsgMissionNotInProgress    = "mission is not in progress"
	ErrMsgMissionAlreadyCompleted = "mission already completed"
	ErrMsgMissionInProgress       = "another mission is already in progress"

	// Limit errors
	ErrMsgDailyLimitExceeded = "daily mission start limit exceeded"

	// Capacity errors
	ErrMsgStatCapacityExceeded = "stat capacity exceeded"

	// Validation errors
	ErrMsgNegativePoints        = "points cannot be negative"
	ErrMsgNonPositiveStatPoints = "stat points must be positive"
	ErrMsgInvalidPercentage     = "completion percentage must be a multiple of 25 in [0,100]"
	ErrMsgInvalidStatType       = "invalid stat type"
	ErrMsgInvalidQuestType      = "invalid quest type"
	ErrMsgInvalidInput          = "invalid input"

	// Business rule errors
	ErrMsgBusinessRuleViolation = "operation violates a business rule"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	// Mission state errors
	ErrMissionNotFound         = errors.New(ErrMsgMissionNotFound)
	ErrMissionNotAssigned      = errors.New(ErrMsgMissionNotAssigned)
	ErrMissionNotInProgress    = errors.New(ErrMsgMissionNotInProgress)
	ErrMissionAlreadyCompleted = errors.New(ErrMsgMissionAlreadyCompleted)
	ErrMissionInProgress       = errors.New(ErrMsgMissionInProgress)

	// Limit errors
	ErrDailyLimitExceeded = errors.New(ErrMsgDailyLimitExceeded)

	// Capacity errors
	ErrStatCapacityExceeded = errors.New(ErrMsgStatCapacityExceeded)

	// Validation errors
	ErrNegativePoints        = errors.New(ErrMsgNegativePoints)
	ErrNonPositiveStatPoints = errors.New(ErrMsgNonPositiveStatPoints)
	ErrInvalidPercentage     = errors.New(ErrMsgInvalidPercentage)
	ErrInvalidStatType       = errors.New(ErrMsgInvalidStatType)
	ErrInvalidQuestType      = errors.New(ErrMsgInvalidQuestType)
	ErrInvalidInput          = errors.New(ErrMsgInvalidInput)

	// Business rule errors
	ErrBusinessRuleViolation = errors.New(ErrMsgBusinessRuleViolation)
)
