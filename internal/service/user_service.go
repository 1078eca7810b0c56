package service

import (
	"context"

	"blogCPT/internal/models"
	"blogCPT/internal/repository"
)

type UserService interface {
	Get(ctx context.Context, userID string) (*models.User, error)
	Me(ctx context.Context, identity *models.Identity) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Get(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

func (s *userService) Me(ctx context.Context, identity *models.Identity) (*models.User, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}

	return s.userRepo.GetUserByID(ctx, identity.UserID)
}
