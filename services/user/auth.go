package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"smartcal/models"
	"smartcal/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// session tokens live for 30 days; the auth cache entry is refreshed on use.
const sessionDuration = 30 * 24 * time.Hour

// Register creates an account and opens a session bound to the registering
// device.
func (s *DefaultUserService) Register(ctx context.Context, in models.UserRegistration) (*models.AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if existing, err := s.repo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, fmt.Errorf("an account with email %s already exists", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u := &models.User{
		Name:         in.Name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return s.openSession(ctx, u, in.DeviceID)
}

// Login verifies credentials and opens a session bound to the device.
func (s *DefaultUserService) Login(ctx context.Context, in models.UserCredentials) (*models.AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.openSession(ctx, u, in.DeviceID)
}

// openSession issues the device-bound JWT, records the device on the user
// document and primes the auth cache with the token hash.
func (s *DefaultUserService) openSession(ctx context.Context, u *models.User, deviceID string) (*models.AuthResult, error) {
	token, err := utils.GenerateToken(u.ID, deviceID, sessionDuration)
	if err != nil {
		return nil, fmt.Errorf("generating session token: %w", err)
	}
	tokenHash := utils.HashToken(token)

	device := models.Device{
		DeviceID:  deviceID,
		LastLogin: time.Now(),
		TokenHash: tokenHash,
	}
	if err := s.repo.UpsertDevice(ctx, u.ID, device); err != nil {
		return nil, fmt.Errorf("recording device: %w", err)
	}

	cacheKey := utils.AuthCachePrefix + u.ID + ":" + deviceID
	if err := utils.GetAuthCacheClient().Set(ctx, cacheKey, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
		// Mongo remains the source of truth; a cold cache only costs a lookup.
		utils.GetLogger().Warn("priming auth cache failed", zap.String("userId", u.ID), zap.Error(err))
	}

	return &models.AuthResult{UserID: u.ID, Token: token}, nil
}

// Logout invalidates the device's session in both the cache and the user
// document.
func (s *DefaultUserService) Logout(ctx context.Context, userID, deviceID string) error {
	cacheKey := utils.AuthCachePrefix + userID + ":" + deviceID
	if err := utils.GetAuthCacheClient().Del(ctx, cacheKey).Err(); err != nil {
		utils.GetLogger().Warn("clearing auth cache failed", zap.String("userId", userID), zap.Error(err))
	}

	device := models.Device{DeviceID: deviceID, LastLogin: time.Now(), TokenHash: ""}
	return s.repo.UpsertDevice(ctx, userID, device)
}

func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *DefaultUserService) SetFCMToken(ctx context.Context, userID, token string) error {
	return s.repo.SetFCMToken(ctx, userID, token)
}

func (s *DefaultUserService) DeleteAccount(ctx context.Context, userID string) error {
	return s.repo.Delete(ctx, userID)
}
