package user

import (
	"context"

	userRepo "smartcal/database/repository/user"
	"smartcal/models"
)

// UserService manages accounts and device-bound sessions.
type UserService interface {
	Register(ctx context.Context, in models.UserRegistration) (*models.AuthResult, error)
	Login(ctx context.Context, in models.UserCredentials) (*models.AuthResult, error)
	Logout(ctx context.Context, userID, deviceID string) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	SetFCMToken(ctx context.Context, userID, token string) error
	DeleteAccount(ctx context.Context, userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	repo userRepo.UserRepository
}

func NewDefaultUserService(repo userRepo.UserRepository) *DefaultUserService {
	return &DefaultUserService{repo: repo}
}
