package repository

import (
	"context"

	"github.com/minjae-ko/habitquest/internal/domain"
)

// Users defines the interface for user persistence
type Users interface {
	CreateUser(ctx context.Context, username string) (*domain.User, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListUserIDs(ctx context.Context) ([]string, error)

	// AddPoints atomically adds delta to the user's point total and returns
	// the new total.
	AddPoints(ctx context.Context, userID string, delta domain.Points) (domain.Points, error)
}
