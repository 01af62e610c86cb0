package domain

import "time"

// User is the owning aggregate for all progression state.
type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	TotalPoints Points    `json:"total_points"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserProfile is the read model returned by the profile endpoint.
type UserProfile struct {
	User     User          `json:"user"`
	Progress LevelProgress `json:"progress"`
	Stats    []UserStat    `json:"stats"`
}
