package services

import (
	"context"
	"project-manager-service/models"
	"project-manager-service/repositories"
)

type UserManager interface {
	GetUser(ctx context.Context, userID int64) (*models.User, error)
}

type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetUserTx(ctx, nil, userID)
}
