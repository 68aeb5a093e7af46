package usecase

import (
	"context"
	"strings"

	"tech-store/internal/data/entity"
	"tech-store/internal/dto/request"
	"tech-store/internal/dto/response"

	"go.uber.org/zap"
)

// AuthService is the entry point external callers invoke. It coordinates
// the credential and token services, it holds no state of its own.
type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	Refresh(ctx context.Context, refreshToken string) (*response.TokenResponse, error)
}

type authService struct {
	credentials CredentialService
	tokens      TokenService
	log         *zap.Logger
}

func NewAuthService(credentials CredentialService, tokens TokenService, log *zap.Logger) AuthService {
	return &authService{
		credentials: credentials,
		tokens:      tokens,
		log:         log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// 1. Confirmation check comes before any mutation
	if req.Password != req.PasswordConfirm {
		return nil, NewValidationError("password_confirm", "Passwords must match")
	}

	// 2. Create the account
	user, err := s.credentials.RegisterUser(ctx, req, entity.RoleCustomer)
	if err != nil {
		return nil, err
	}

	// 3. Issue the token pair. The user row is not rolled back when this
	// fails, the account exists and the caller can retry at login.
	accessToken, refreshToken, err := s.tokens.Issue(ctx, user)
	if err != nil {
		s.log.Error("Token issuance failed after registration, account persists",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return nil, err
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
	)

	return response.AuthToResponse(user, accessToken, refreshToken), nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := validateLogin(req); errs != nil {
		return nil, errs
	}

	// 2. Verify credentials
	user, err := s.credentials.VerifyCredentials(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	// 3. Fresh pair on every login
	accessToken, refreshToken, err := s.tokens.Issue(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	return response.AuthToResponse(user, accessToken, refreshToken), nil
}

// Logout revokes the refresh token. An absent token is a no-op success,
// there is nothing to revoke.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if strings.TrimSpace(refreshToken) == "" {
		return nil
	}

	return s.tokens.Revoke(ctx, refreshToken)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*response.TokenResponse, error) {
	return s.tokens.Refresh(ctx, refreshToken)
}

func validateLogin(req *request.LoginRequest) error {
	fields := make(map[string]string)
	if strings.TrimSpace(req.Email) == "" {
		fields["email"] = "This field is required"
	}
	if req.Password == "" {
		fields["password"] = "This field is required"
	}
	if len(fields) > 0 {
		return ValidationFromFields(fields)
	}
	return nil
}
