package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tech-store/internal/data/entity"
	"tech-store/internal/data/repository"
	"tech-store/internal/dto/response"
	"tech-store/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TokenService issues, refreshes and revokes the session token pair.
// Access tokens are self-verifying and expire on their own; refresh
// tokens are individually revocable through the persisted jti blacklist.
type TokenService interface {
	Issue(ctx context.Context, user *entity.User) (accessToken, refreshToken string, err error)
	Refresh(ctx context.Context, refreshToken string) (*response.TokenResponse, error)
	Revoke(ctx context.Context, refreshToken string) error
}

type tokenService struct {
	tokenRepo repository.TokenRepository
	userRepo  repository.UserRepository
	config    *utils.Config
	log       *zap.Logger
}

func NewTokenService(
	tokenRepo repository.TokenRepository,
	userRepo repository.UserRepository,
	config *utils.Config,
	log *zap.Logger,
) TokenService {
	return &tokenService{
		tokenRepo: tokenRepo,
		userRepo:  userRepo,
		config:    config,
		log:       log,
	}
}

func (s *tokenService) accessTTL() time.Duration {
	return time.Duration(s.config.JWT.AccessExpiryMinutes) * time.Minute
}

func (s *tokenService) refreshTTL() time.Duration {
	return time.Duration(s.config.JWT.RefreshExpiryHours) * time.Hour
}

// Issue mints a fresh access+refresh pair. Prior tokens are never reused.
func (s *tokenService) Issue(ctx context.Context, user *entity.User) (string, string, error) {
	accessToken, _, err := utils.GenerateAccessToken(
		user.ID.String(), string(user.Role), s.config.JWT.Secret, s.accessTTL())
	if err != nil {
		s.log.Error("Failed to mint access token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return "", "", fmt.Errorf("issue access token: %w", err)
	}

	refreshToken, jti, _, err := utils.GenerateRefreshToken(
		user.ID.String(), s.config.JWT.Secret, s.refreshTTL())
	if err != nil {
		s.log.Error("Failed to mint refresh token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return "", "", fmt.Errorf("issue refresh token: %w", err)
	}

	s.log.Info("Token pair issued",
		zap.String("user_id", user.ID.String()),
		zap.String("jti", jti.String()),
	)

	return accessToken, refreshToken, nil
}

// Refresh mints a new access token off a valid, non-blacklisted refresh
// token. No password re-check, the refresh token is the credential.
func (s *tokenService) Refresh(ctx context.Context, refreshToken string) (*response.TokenResponse, error) {
	claims, jti, err := s.parseRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	// Blacklist lookup happens on every refresh, the check is the
	// revocation guarantee
	blacklisted, err := s.tokenRepo.IsBlacklisted(ctx, jti)
	if err != nil {
		return nil, storeFault("check blacklist", err)
	}
	if blacklisted {
		s.log.Warn("Refresh attempt with blacklisted token", zap.String("jti", jti.String()))
		return nil, fmt.Errorf("%w: token is blacklisted", ErrInvalidToken)
	}

	// Resolve identity so the new access token carries the current role
	// and a deactivated account stops refreshing immediately
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed user id", ErrInvalidToken)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, storeFault("resolve token user", err)
	}
	if user == nil || !user.IsActive {
		s.log.Warn("Refresh attempt for missing or disabled user", zap.String("user_id", claims.UserID))
		return nil, fmt.Errorf("%w: user no longer active", ErrInvalidToken)
	}

	accessToken, expiresAt, err := utils.GenerateAccessToken(
		user.ID.String(), string(user.Role), s.config.JWT.Secret, s.accessTTL())
	if err != nil {
		s.log.Error("Failed to mint access token on refresh", zap.Error(err))
		return nil, fmt.Errorf("refresh access token: %w", err)
	}

	return &response.TokenResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}, nil
}

// Revoke blacklists the refresh token's jti. Once this returns nil every
// later Refresh sees the entry. Revoking an already-revoked token reports
// the invalid-token kind instead of crashing, a double logout is harmless.
func (s *tokenService) Revoke(ctx context.Context, refreshToken string) error {
	claims, jti, err := s.parseRefresh(refreshToken)
	if err != nil {
		return err
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return fmt.Errorf("%w: malformed user id", ErrInvalidToken)
	}

	entry := &entity.BlacklistedToken{
		JTI:           jti,
		UserID:        userID,
		ExpiresAt:     claims.ExpiresAt.Time,
		BlacklistedAt: time.Now(),
	}

	if err := s.tokenRepo.Blacklist(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrAlreadyBlacklisted) {
			s.log.Warn("Revoke of already-blacklisted token", zap.String("jti", jti.String()))
			return fmt.Errorf("%w: already revoked", ErrInvalidToken)
		}
		return storeFault("blacklist token", err)
	}

	s.log.Info("Refresh token revoked",
		zap.String("jti", jti.String()),
		zap.String("user_id", claims.UserID),
	)

	return nil
}

// parseRefresh validates signature, expiry and shape. Malformed and
// expired tokens both come back as the invalid-token kind, with the
// cause kept in the chain for logs.
func (s *tokenService) parseRefresh(refreshToken string) (*utils.RefreshClaims, uuid.UUID, error) {
	claims, err := utils.ParseRefreshToken(refreshToken, s.config.JWT.Secret)
	if err != nil {
		s.log.Warn("Refresh token rejected", zap.Error(err))
		return nil, uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	jti, err := claims.JTI()
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("%w: malformed jti", ErrInvalidToken)
	}

	return claims, jti, nil
}
