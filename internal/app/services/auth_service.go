package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/almokadam/backoffice/internal/app/models"
	"github.com/almokadam/backoffice/internal/app/models/dto"
	"github.com/almokadam/backoffice/internal/app/repositories"
	"github.com/almokadam/backoffice/internal/config"
	"github.com/almokadam/backoffice/internal/pkg/apperrors"
	"github.com/almokadam/backoffice/internal/pkg/auth"
)

// refreshRecord tracks an issued refresh token. Tokens are opaque UUIDs held
// in memory; restarting the server invalidates outstanding refresh tokens,
// which is acceptable for a single-instance back office.
type refreshRecord struct {
	userID    int64
	expiresAt time.Time
}

// AuthService handles authentication operations
type AuthService struct {
	adminRepo  *repositories.AdminRepository
	jwtService *auth.JWTService
	cfg        *config.Config
	logger     zerolog.Logger

	mu            sync.Mutex
	refreshTokens map[string]refreshRecord
}

// NewAuthService creates a new AuthService
func NewAuthService(
	adminRepo *repositories.AdminRepository,
	jwtService *auth.JWTService,
	cfg *config.Config,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		adminRepo:     adminRepo,
		jwtService:    jwtService,
		cfg:           cfg,
		logger:        logger,
		refreshTokens: make(map[string]refreshRecord),
	}
}

// Login authenticates an admin account. The email must belong to an existing
// active account and be present on the configured allow-list.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !s.cfg.IsAllowlisted(email) {
		s.logger.Warn().Str("email", email).Msg("Login attempt from non-allowlisted email")
		return nil, apperrors.ErrNotAllowlisted
	}

	user, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error retrieving account: %w", err)
	}

	if !user.Active {
		return nil, apperrors.ErrAccountDisabled
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.generateTokenResponse(user)
}

// RefreshToken exchanges a refresh token for a new token pair. The old
// refresh token is revoked so it cannot be replayed.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	s.mu.Lock()
	record, ok := s.refreshTokens[refreshToken]
	if ok {
		delete(s.refreshTokens, refreshToken)
	}
	s.mu.Unlock()

	if !ok {
		return nil, apperrors.ErrTokenInvalid
	}
	if time.Now().After(record.expiresAt) {
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.adminRepo.GetByID(ctx, record.userID)
	if err != nil {
		return nil, apperrors.ErrTokenInvalid
	}
	if !user.Active {
		return nil, apperrors.ErrAccountDisabled
	}

	return s.generateTokenResponse(user)
}

// GetProfile returns the account behind a user ID
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	user, err := s.adminRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.ProfileResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}, nil
}

func (s *AuthService) generateTokenResponse(user *models.AdminUser) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("error generating tokens: %w", err)
	}

	s.mu.Lock()
	s.refreshTokens[refreshToken] = refreshRecord{
		userID:    user.ID,
		expiresAt: s.jwtService.GetRefreshTokenExpiry(),
	}
	// Drop expired records while we hold the lock
	now := time.Now()
	for token, rec := range s.refreshTokens {
		if now.After(rec.expiresAt) {
			delete(s.refreshTokens, token)
		}
	}
	s.mu.Unlock()

	return &dto.TokenResponse{
		AccessToken:           accessToken,
		TokenType:             "Bearer",
		ExpiresIn:             expiresIn,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresIn,
	}, nil
}
