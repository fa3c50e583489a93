package service

import (
	"context"
	"fmt"
	"time"

	"equipment-rental-backend/internal/logger"
	"equipment-rental-backend/internal/security"
)

type adminService struct {
	passwords security.PasswordChecker
	tokens    security.TokenManager
}

func NewAdminService(passwords security.PasswordChecker, tokens security.TokenManager) AdminService {
	return &adminService{
		passwords: passwords,
		tokens:    tokens,
	}
}

// Login checks the shared admin password and hands out a short-lived token.
func (s *adminService) Login(ctx context.Context, password string) (string, time.Time, error) {
	if password == "" || !s.passwords.Check(password) {
		logger.WarnContext(ctx, "Admin login rejected")
		return "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.GenerateAdminToken()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to issue admin token: %w", err)
	}
	logger.InfoContext(ctx, "Admin logged in", "expiresAt", expiresAt)
	return token, expiresAt, nil
}

func (s *adminService) Authorize(token string) error {
	if token == "" {
		return ErrUnauthorized
	}
	if _, err := s.tokens.ValidateToken(token); err != nil {
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	return nil
}
