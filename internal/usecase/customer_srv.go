package usecase

import (
	"context"
	"time"

	"tech-store/internal/data/entity"
	"tech-store/internal/data/repository"
	"tech-store/internal/dto/request"
	"tech-store/internal/dto/response"
	"tech-store/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CustomerService owns the profile attached 1:1 to a user
type CustomerService interface {
	// GetOrCreateProfile is idempotent: an existing profile comes back
	// unchanged with created=false.
	GetOrCreateProfile(ctx context.Context, userID uuid.UUID, req *request.CustomerProfileRequest) (*response.CustomerResponse, bool, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.CustomerResponse, error)
}

type customerService struct {
	customerRepo repository.CustomerRepository
	userRepo     repository.UserRepository
	log          *zap.Logger
}

func NewCustomerService(
	customerRepo repository.CustomerRepository,
	userRepo repository.UserRepository,
	log *zap.Logger,
) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		userRepo:     userRepo,
		log:          log,
	}
}

func (s *customerService) GetOrCreateProfile(ctx context.Context, userID uuid.UUID, req *request.CustomerProfileRequest) (*response.CustomerResponse, bool, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Customer profile validation failed", zap.Any("errors", errs))
		return nil, false, ValidationFromFields(errs)
	}

	var dateOfBirth *time.Time
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return nil, false, NewValidationError("date_of_birth", "Invalid date format, use YYYY-MM-DD")
		}
		dateOfBirth = &dob
	}

	// 2. The profile needs its user
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, false, storeFault("find profile user", err)
	}
	if user == nil {
		return nil, false, ErrNotFound
	}

	// 3. Insert-or-fetch in one go
	customer := &entity.Customer{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:      userID,
		DateOfBirth: dateOfBirth,
	}

	customer, created, err := s.customerRepo.GetOrCreate(ctx, customer)
	if err != nil {
		s.log.Error("Failed to get or create customer", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, false, storeFault("get or create customer", err)
	}

	if created {
		s.log.Info("Customer profile created",
			zap.String("customer_id", customer.ID.String()),
			zap.String("user_id", userID.String()),
		)
	}

	return response.CustomerToResponse(customer, user), created, nil
}

func (s *customerService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.CustomerResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, storeFault("find profile user", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}

	customer, err := s.customerRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, storeFault("find customer", err)
	}
	if customer == nil {
		return nil, ErrNotFound
	}

	return response.CustomerToResponse(customer, user), nil
}
