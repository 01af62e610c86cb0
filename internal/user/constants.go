package user

import "time"

// Cache configuration
const (
	// DefaultCacheSize is the maximum number of cached users
	DefaultCacheSize = 1000

	// DefaultCacheTTL bounds staleness of cached point totals
	DefaultCacheTTL = 30 * time.Second
)

// Error message constants
const (
	ErrMsgUserIDRequired   = "user id is required"
	ErrMsgUsernameRequired = "username is required"
	ErrMsgUsernameTaken    = "username is already taken"
)

// Log message constants
const (
	LogMsgUserRegistered   = "User registered"
	LogMsgCacheInvalidated = "User cache entry invalidated"
)
