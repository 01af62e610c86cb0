package domain

import (
	"time"

	"github.com/google/uuid"
)

// MissionStatus is the lifecycle state of a mission instance.
type MissionStatus string

const (
	MissionAssigned   MissionStatus = "ASSIGNED"
	MissionInProgress MissionStatus = "IN_PROGRESS"
	MissionCompleted  MissionStatus = "COMPLETED"
	MissionFailed     MissionStatus = "FAILED"
	MissionExpired    MissionStatus = "EXPIRED"
)

// Terminal reports whether no further transitions are accepted from s.
func (s MissionStatus) Terminal() bool {
	switch s {
	case MissionCompleted, MissionFailed, MissionExpired:
		return true
	}
	return false
}

// MissionDifficulty determines the fixed point reward of a mission.
type MissionDifficulty string

const (
	DifficultyEasy   MissionDifficulty = "EASY"
	DifficultyMedium MissionDifficulty = "MEDIUM"
	DifficultyHard   MissionDifficulty = "HARD"
)

// AllDifficulties lists difficulties in ascending reward order.
var AllDifficulties = []MissionDifficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// RewardPoints returns the fixed point reward for the difficulty.
func (d MissionDifficulty) RewardPoints() Points {
	switch d {
	case DifficultyEasy:
		return 10
	case DifficultyMedium:
		return 20
	case DifficultyHard:
		return 30
	}
	return 0
}

// StatGain returns the automatic stat increase granted on completion.
func (d MissionDifficulty) StatGain() int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	}
	return 0
}

// MissionCategory groups missions by the life area they train.
type MissionCategory string

const (
	CategoryHealth    MissionCategory = "HEALTH"
	CategoryStudy     MissionCategory = "STUDY"
	CategoryCreative  MissionCategory = "CREATIVE"
	CategorySocial    MissionCategory = "SOCIAL"
	CategoryAdventure MissionCategory = "ADVENTURE"
	CategoryRoutine   MissionCategory = "ROUTINE"
)

// Stat returns the stat dimension a category trains.
func (c MissionCategory) Stat() StatType {
	switch c {
	case CategoryHealth:
		return StatStrength
	case CategoryStudy:
		return StatIntelligence
	case CategoryCreative:
		return StatCreativity
	case CategorySocial:
		return StatSociability
	case CategoryAdventure:
		return StatAdventurous
	case CategoryRoutine:
		return StatDiscipline
	}
	return StatDiscipline
}

// Mission is a single user-assigned task instance.
type Mission struct {
	ID           uuid.UUID         `json:"id"`
	UserID       string            `json:"user_id"`
	Title        string            `json:"title"`
	Category     MissionCategory   `json:"category"`
	Difficulty   MissionDifficulty `json:"difficulty"`
	Status       MissionStatus     `json:"status"`
	Progress     int               `json:"progress"`
	RewardPoints Points            `json:"reward_points"`
	AssignedAt   time.Time         `json:"assigned_at"`
	StartedAt    *time.Time        `json:"started_at,omitempty"`
	CompletedAt  *time.Time        `json:"completed_at,omitempty"`
	ExpiresAt    time.Time         `json:"expires_at"`
}

// MissionTemplate is a pool entry used by daily mission generation.
type MissionTemplate struct {
	ID         int               `json:"id"`
	Title      string            `json:"title"`
	Category   MissionCategory   `json:"category"`
	Difficulty MissionDifficulty `json:"difficulty"`
	Active     bool              `json:"active"`
}

// MissionCompletion is the result of completing a mission: the reward the
// caller applies to the user's aggregates plus any derived level change.
type MissionCompletion struct {
	Mission      Mission  `json:"mission"`
	RewardPoints Points   `json:"reward_points"`
	StatType     StatType `json:"stat_type"`
	StatGain     int      `json:"stat_gain"`
	NewTotal     Points   `json:"new_total_points"`
	LevelUp      *LevelUp `json:"level_up,omitempty"`
}
