package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lostfound/internal/auth"
	apperrors "lostfound/internal/errors"
	"lostfound/internal/model"
	"lostfound/internal/repository"
)

const bcryptCost = 10

// AdminSession is the result of a successful admin login.
type AdminSession struct {
	Admin       *model.Admin
	AccessToken string
}

// AdminService handles admin authentication.
type AdminService interface {
	Login(ctx context.Context, email, password string) (*AdminSession, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}

type adminService struct {
	repo       repository.AdminRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
}

// NewAdminService creates a new admin service.
func NewAdminService(repo repository.AdminRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AdminService {
	return &adminService{
		repo:       repo,
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

// HashPassword hashes an admin password for storage.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Login checks credentials and issues an access token. An unknown email and a
// wrong password both yield ErrInvalidCredentials.
func (s *adminService) Login(ctx context.Context, email, password string) (*AdminSession, error) {
	admin, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateAccessToken(admin.ID, admin.Email)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	return &AdminSession{Admin: admin, AccessToken: token}, nil
}

// Logout revokes an access token for the rest of its lifetime.
func (s *adminService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if err := s.tokenStore.Revoke(ctx, tokenID, time.Until(expiresAt)); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}
