package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"tech-store/internal/data/entity"
	"tech-store/internal/data/repository"
	"tech-store/internal/dto/request"
	"tech-store/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CredentialService owns user records and password handling. It is the
// only place a plaintext password ever reaches, and it leaves hashed.
type CredentialService interface {
	RegisterUser(ctx context.Context, req *request.RegisterRequest, role entity.UserRole) (*entity.User, error)
	VerifyCredentials(ctx context.Context, email, password string) (*entity.User, error)
	CreateAdminUser(ctx context.Context, req *request.CreateAdminRequest) (*entity.User, error)
}

type credentialService struct {
	userRepo repository.UserRepository
	config   *utils.Config
	log      *zap.Logger
}

func NewCredentialService(userRepo repository.UserRepository, config *utils.Config, log *zap.Logger) CredentialService {
	return &credentialService{
		userRepo: userRepo,
		config:   config,
		log:      log,
	}
}

func (s *credentialService) RegisterUser(ctx context.Context, req *request.RegisterRequest, role entity.UserRole) (*entity.User, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, ValidationFromFields(errs)
	}

	// 2. Password policy
	if err := utils.ValidatePassword(req.Password, s.config.Password.MinLength); err != nil {
		return nil, NewValidationError("password", err.Error())
	}

	return s.createUser(ctx, createUserParams{
		email:       req.Email,
		password:    req.Password,
		firstName:   req.FirstName,
		secondName:  req.SecondName,
		phoneNumber: req.PhoneNumber,
		role:        role,
	})
}

func (s *credentialService) VerifyCredentials(ctx context.Context, email, password string) (*entity.User, error) {
	// 1. Lookup by normalized email
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err))
		return nil, storeFault("verify credentials", err)
	}

	// 2. Unknown email and wrong password report the same failure
	if user == nil {
		s.log.Warn("Login attempt for unknown email")
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	// 3. A disabled account beats a correct password
	if !user.IsActive {
		s.log.Warn("Disabled account tried to login", zap.String("user_id", user.ID.String()))
		return nil, ErrAccountDisabled
	}

	return user, nil
}

func (s *credentialService) CreateAdminUser(ctx context.Context, req *request.CreateAdminRequest) (*entity.User, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create admin validation failed", zap.Any("errors", errs))
		return nil, ValidationFromFields(errs)
	}

	// 2. Guard against accidental demotion: the caller has to mean it
	if !req.IsStaff {
		return nil, NewValidationError("is_staff", "Admin user must have is_staff=true")
	}
	if !req.IsSuperuser {
		return nil, NewValidationError("is_superuser", "Admin user must have is_superuser=true")
	}

	// 3. Password policy
	if err := utils.ValidatePassword(req.Password, s.config.Password.MinLength); err != nil {
		return nil, NewValidationError("password", err.Error())
	}

	return s.createUser(ctx, createUserParams{
		email:       req.Email,
		password:    req.Password,
		firstName:   req.FirstName,
		secondName:  req.SecondName,
		phoneNumber: req.PhoneNumber,
		role:        entity.RoleAdmin,
	})
}

// createUserParams spells out every field of a new account, no implicit
// fallbacks
type createUserParams struct {
	email       string
	password    string
	firstName   string
	secondName  string
	phoneNumber string
	role        entity.UserRole
}

func (s *credentialService) createUser(ctx context.Context, params createUserParams) (*entity.User, error) {
	email := normalizeEmail(params.email)

	// Pre-checks give precise field errors, the unique constraints below
	// stay authoritative under concurrent registration.
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", email))
		return nil, storeFault("check email", err)
	}
	if existing != nil {
		return nil, NewValidationError("email", "Email already registered")
	}

	existing, err = s.userRepo.FindByPhoneNumber(ctx, params.phoneNumber)
	if err != nil {
		s.log.Error("Failed to check phone number", zap.Error(err))
		return nil, storeFault("check phone number", err)
	}
	if existing != nil {
		return nil, NewValidationError("phone_number", "Phone number already registered")
	}

	hashedPassword, err := utils.HashPassword(params.password, s.config.Password.BcryptCost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, storeFault("hash password", err)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        email,
		FirstName:    params.firstName,
		SecondName:   params.secondName,
		PhoneNumber:  params.phoneNumber,
		PasswordHash: hashedPassword,
		Role:         params.role,
		IsActive:     true,
		IsStaff:      params.role.IsPrivileged(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// A concurrent registration can still win the unique constraint
		// after the pre-checks passed
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, NewValidationError("email", "Email already registered")
		case errors.Is(err, repository.ErrDuplicatePhone):
			return nil, NewValidationError("phone_number", "Phone number already registered")
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", email))
		return nil, storeFault("create user", err)
	}

	s.log.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)),
	)

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
