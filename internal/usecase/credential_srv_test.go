package usecase

import (
	"context"
	"testing"
	"time"

	"tech-store/internal/data/entity"
	"tech-store/internal/data/repository"
	"tech-store/internal/dto/request"
	"tech-store/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.User, error) {
	args := m.Called(ctx, phoneNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func testConfig() *utils.Config {
	return &utils.Config{
		JWT: utils.JWTConfig{
			Secret:              "test-secret",
			AccessExpiryMinutes: 15,
			RefreshExpiryHours:  24,
		},
		Password: utils.PasswordConfig{
			MinLength:  8,
			BcryptCost: bcrypt.MinCost,
		},
	}
}

func validRegisterRequest() *request.RegisterRequest {
	return &request.RegisterRequest{
		Email:           "Ann@X.com",
		Password:        "Pw1!aaaa",
		PasswordConfirm: "Pw1!aaaa",
		FirstName:       "Ann",
		SecondName:      "Lee",
		PhoneNumber:     "+15551234567",
	}
}

func testUser(password string, active bool) *entity.User {
	hash, _ := utils.HashPassword(password, bcrypt.MinCost)
	now := time.Now()
	return &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        "ann@x.com",
		FirstName:    "Ann",
		SecondName:   "Lee",
		PhoneNumber:  "+15551234567",
		PasswordHash: hash,
		Role:         entity.RoleCustomer,
		IsActive:     active,
	}
}

func TestRegisterUser_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewCredentialService(userRepo, testConfig(), zap.NewNop())

	var created *entity.User
	userRepo.On("FindByEmail", mock.Anything, "ann@x.com").Return(nil, nil)
	userRepo.On("FindByPhoneNumber", mock.Anything, "+15551234567").Return(nil, nil)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.User)
		}).
		Return(nil)

	user, err := svc.RegisterUser(context.Background(), validRegisterRequest(), entity.RoleCustomer)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "ann@x.com", user.Email, "email should be case-normalized")
	assert.Equal(t, entity.RoleCustomer, user.Role)
	assert.False(t, user.IsStaff)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, uuid.Nil, user.ID)

	// Password is stored one-way, never the plaintext
	require.NotNil(t, created)
	assert.NotEqual(t, "Pw1!aaaa", created.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("Pw1!aaaa", created.PasswordHash))

	userRepo.AssertExpectations(t)
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewCredentialService(userRepo, testConfig(), zap.NewNop())

	userRepo.On("FindByEmail", mock.Anything, "ann@x.com").Return(testUser("Pw1!aaaa", true), nil)

	_, err := svc.RegisterUser(context.Background(), validRegisterRequest(), entity.RoleCustomer)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "email")
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterUser_DuplicateEmailRace(t *testing.T) {
	// Pre-checks pass but a concurrent registration wins the unique
	// constraint: the conflict still comes back as a validation error.
	userRepo := new(MockUserRepository)
	svc := NewCredentialService(userRepo, testConfig(), zap.NewNop())

	userRepo.On("FindByEmail", mock.Anything, "ann@x.com").Return(nil, nil)
	userRepo.On("FindByPhoneNumber", mock.Anything, "+15551234567").Return(nil, nil)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicateEmail)

	_, err := svc.RegisterUser(context.Background(), validRegisterRequest(), entity.RoleCustomer)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "email")
}

func TestRegisterUser_WeakPasswords(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"too short", "Pw1!a"},
		{"entirely numeric", "1122334455"},
		{"too common", "password123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			svc := NewCredentialService(userRepo, testConfig(), zap.NewNop())

			req := validRegisterRequest()
			req.Password = tt.password
			req.PasswordConfirm = tt.password

			_, err := svc.RegisterUser(context.Background(), req, entity.RoleCustomer)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr.Fields, "password")
			userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestRegisterUser_InvalidPhoneNumber(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewCredentialService(userRepo, testConfig(), zap.NewNop())

	req := validRegisterRequest()
	req.PhoneNumber = "not-a-phone"

	_, err := svc.RegisterUser(context.Background(), req, entity.RoleCustomer)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "PhoneNumber")
}

func TestVerifyCredentials_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewCredentialService(userRepo, testConfig(), zap.NewNop())

	userRepo.On("FindByEmail", mock.Anything, "nobody@x.com").Return(nil, nil)
	userRepo.On("FindByEmail", mock.Anything, "ann@x.com").Return(testUser("Pw1!aaaa", true), nil)

	_, errUnknown := svc.VerifyCredentials(context.Background(), "nobody@x.com", "Pw1!aaaa")
	_, errWrongPw := svc.VerifyCredentials(context.Background(), "ann@x.com", "wrong-password")

	require.Error(t, errUnknown)
	require.Error(t, errWrongPw)
	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
	// The caller cannot tell which factor failed
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestVerifyCredentials_DisabledAccountBeatsCorrectPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewCredentialService(userRepo, testConfig(), zap.NewNop())

	userRepo.On("FindByEmail", mock.Anything, "ann@x.com").Return(testUser("Pw1!aaaa", false), nil)

	_, err := svc.VerifyCredentials(context.Background(), "ann@x.com", "Pw1!aaaa")

	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestVerifyCredentials_NormalizesEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewCredentialService(userRepo, testConfig(), zap.NewNop())

	userRepo.On("FindByEmail", mock.Anything, "ann@x.com").Return(testUser("Pw1!aaaa", true), nil)

	user, err := svc.VerifyCredentials(context.Background(), "  ANN@X.COM ", "Pw1!aaaa")

	require.NoError(t, err)
	assert.Equal(t, "ann@x.com", user.Email)
}

func TestCreateAdminUser_RequiresStaffAndSuperuserFlags(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewCredentialService(userRepo, testConfig(), zap.NewNop())

	req := &request.CreateAdminRequest{
		Email:       "root@x.com",
		Password:    "Pw1!aaaa",
		FirstName:   "Root",
		SecondName:  "Admin",
		PhoneNumber: "+15559876543",
		IsStaff:     false,
		IsSuperuser: true,
	}

	_, err := svc.CreateAdminUser(context.Background(), req)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "is_staff")
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateAdminUser_ForcesAdminRole(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewCredentialService(userRepo, testConfig(), zap.NewNop())

	userRepo.On("FindByEmail", mock.Anything, "root@x.com").Return(nil, nil)
	userRepo.On("FindByPhoneNumber", mock.Anything, "+15559876543").Return(nil, nil)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)

	req := &request.CreateAdminRequest{
		Email:       "root@x.com",
		Password:    "Pw1!aaaa",
		FirstName:   "Root",
		SecondName:  "Admin",
		PhoneNumber: "+15559876543",
		IsStaff:     true,
		IsSuperuser: true,
	}

	user, err := svc.CreateAdminUser(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.True(t, user.IsStaff)
	userRepo.AssertExpectations(t)
}
