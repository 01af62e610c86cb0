package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/minjae-ko/habitquest/internal/domain"
	"github.com/minjae-ko/habitquest/internal/level"
	"github.com/minjae-ko/habitquest/internal/logger"
	"github.com/minjae-ko/habitquest/internal/repository"
)

// Service defines the interface for user operations
type Service interface {
	Register(ctx context.Context, username string) (*domain.User, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)

	// GetProfile composes the user record, its level progress, and all six
	// graded stat dimensions.
	GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error)

	// InvalidateCache drops the cached record for a user. Event handlers call
	// this when a point total changes outside this package.
	InvalidateCache(userID string)
}

type service struct {
	repo  repository.Users
	stats repository.Stats
	cache *userCache
}

// NewService creates a new user service
func NewService(repo repository.Users, stats repository.Stats) Service {
	return &service{
		repo:  repo,
		stats: stats,
		cache: newUserCache(DefaultCacheSize, DefaultCacheTTL),
	}
}

func (s *service) Register(ctx context.Context, username string) (*domain.User, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUsernameRequired)
	}

	existing, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUsernameTaken)
	}

	u, err := s.repo.CreateUser(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info(LogMsgUserRegistered, "user_id", u.ID, "username", u.Username)
	return u, nil
}

func (s *service) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUserIDRequired)
	}

	if cached, ok := s.cache.Get(userID); ok {
		return cached, nil
	}

	u, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}

	s.cache.Set(u)
	return u, nil
}

func (s *service) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	u, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats, err := s.stats.GetUserStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}

	return &domain.UserProfile{
		User:     *u,
		Progress: level.Compute(u.TotalPoints),
		Stats:    stats,
	}, nil
}

func (s *service) InvalidateCache(userID string) {
	s.cache.Invalidate(userID)
}
