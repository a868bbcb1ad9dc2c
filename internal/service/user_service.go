package service

import (
	"context"
	"fmt"
	"strings"

	"community_survey/internal/models"
	"community_survey/internal/repository"
)

// UserProfile is the result of a profile lookup. Found is false for ids that
// never saved a profile; User then carries only the id.
type UserProfile struct {
	User  models.User
	Found bool
}

type UserService struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetUser never reports a missing profile as an error.
func (s *UserService) GetUser(ctx context.Context, userID string) (UserProfile, error) {
	if strings.TrimSpace(userID) == "" {
		return UserProfile{}, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}
	u, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return UserProfile{}, err
	}
	if u == nil {
		return UserProfile{User: models.User{UserID: userID}}, nil
	}
	return UserProfile{User: *u, Found: true}, nil
}

// SaveUser replaces every profile field; nil fields are stored as NULL.
func (s *UserService) SaveUser(ctx context.Context, u models.User) (models.User, error) {
	if strings.TrimSpace(u.UserID) == "" {
		return models.User{}, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}
	if err := s.userRepo.Upsert(ctx, u); err != nil {
		return models.User{}, err
	}
	return u, nil
}
