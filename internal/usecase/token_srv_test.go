package usecase

import (
	"context"
	"testing"
	"time"

	"tech-store/internal/data/entity"
	"tech-store/internal/data/repository"
	"tech-store/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeTokenRepo is an in-memory blacklist with the same semantics as the
// pg-backed one: first insert wins, the second reports the conflict.
type fakeTokenRepo struct {
	blacklisted map[uuid.UUID]struct{}
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{blacklisted: make(map[uuid.UUID]struct{})}
}

func (f *fakeTokenRepo) Blacklist(ctx context.Context, token *entity.BlacklistedToken) error {
	if _, found := f.blacklisted[token.JTI]; found {
		return repository.ErrAlreadyBlacklisted
	}
	f.blacklisted[token.JTI] = struct{}{}
	return nil
}

func (f *fakeTokenRepo) IsBlacklisted(ctx context.Context, jti uuid.UUID) (bool, error) {
	_, found := f.blacklisted[jti]
	return found, nil
}

func (f *fakeTokenRepo) DeleteExpired(ctx context.Context) error {
	return nil
}

func newTokenServiceForTest(t *testing.T, user *entity.User) (TokenService, *fakeTokenRepo) {
	t.Helper()

	tokenRepo := newFakeTokenRepo()
	userRepo := new(MockUserRepository)
	if user != nil {
		userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	}

	return NewTokenService(tokenRepo, userRepo, testConfig(), zap.NewNop()), tokenRepo
}

func TestIssue_FreshPairEveryTime(t *testing.T) {
	user := testUser("Pw1!aaaa", true)
	svc, _ := newTokenServiceForTest(t, user)

	access1, refresh1, err := svc.Issue(context.Background(), user)
	require.NoError(t, err)
	access2, refresh2, err := svc.Issue(context.Background(), user)
	require.NoError(t, err)

	assert.NotEmpty(t, access1)
	assert.NotEmpty(t, refresh1)
	assert.NotEqual(t, refresh1, refresh2, "refresh tokens must not be reused")
	assert.NotEqual(t, access1, access2)

	// Each refresh token carries its own jti
	claims1, err := utils.ParseRefreshToken(refresh1, "test-secret")
	require.NoError(t, err)
	claims2, err := utils.ParseRefreshToken(refresh2, "test-secret")
	require.NoError(t, err)
	assert.NotEqual(t, claims1.ID, claims2.ID)
}

func TestRefresh_RoundTrip(t *testing.T) {
	user := testUser("Pw1!aaaa", true)
	svc, _ := newTokenServiceForTest(t, user)

	_, refreshToken, err := svc.Issue(context.Background(), user)
	require.NoError(t, err)

	resp, err := svc.Refresh(context.Background(), refreshToken)

	require.NoError(t, err)
	require.NotNil(t, resp)

	claims, err := utils.ParseAccessToken(resp.AccessToken, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, string(entity.RoleCustomer), claims.Role)
}

func TestRefresh_AfterRevokeFails(t *testing.T) {
	user := testUser("Pw1!aaaa", true)
	svc, _ := newTokenServiceForTest(t, user)

	_, refreshToken, err := svc.Issue(context.Background(), user)
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(context.Background(), refreshToken))

	_, err = svc.Refresh(context.Background(), refreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRevoke_Idempotent(t *testing.T) {
	user := testUser("Pw1!aaaa", true)
	svc, _ := newTokenServiceForTest(t, user)

	_, refreshToken, err := svc.Issue(context.Background(), user)
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(context.Background(), refreshToken))

	// Second revoke reports the already-invalid condition, it never panics
	// or corrupts the blacklist
	err = svc.Revoke(context.Background(), refreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.Refresh(context.Background(), refreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefresh_MalformedToken(t *testing.T) {
	svc, _ := newTokenServiceForTest(t, nil)

	_, err := svc.Refresh(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefresh_AccessTokenRejected(t *testing.T) {
	// An access token must not pass as a refresh token even though the
	// signature is valid
	user := testUser("Pw1!aaaa", true)
	svc, _ := newTokenServiceForTest(t, user)

	accessToken, _, err := svc.Issue(context.Background(), user)
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), accessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefresh_ExpiredToken(t *testing.T) {
	user := testUser("Pw1!aaaa", true)
	svc, _ := newTokenServiceForTest(t, user)

	expired, _, _, err := utils.GenerateRefreshToken(user.ID.String(), "test-secret", -time.Minute)
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefresh_DeactivatedUser(t *testing.T) {
	user := testUser("Pw1!aaaa", false)
	svc, _ := newTokenServiceForTest(t, user)

	_, refreshToken, err := svc.Issue(context.Background(), user)
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), refreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRevoke_TokenWithoutExpiry(t *testing.T) {
	// A signed refresh token missing exp must be rejected at parse, not
	// reach the blacklist write with a nil expiry
	svc, tokenRepo := newTokenServiceForTest(t, nil)

	userID := uuid.New().String()
	claims := &utils.RefreshClaims{
		UserID:    userID,
		TokenType: utils.RefreshTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:      uuid.New().String(),
			Subject: userID,
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	err = svc.Revoke(context.Background(), signed)

	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Empty(t, tokenRepo.blacklisted)
}

func TestRevoke_MalformedToken(t *testing.T) {
	svc, tokenRepo := newTokenServiceForTest(t, nil)

	err := svc.Revoke(context.Background(), "garbage")

	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Empty(t, tokenRepo.blacklisted)
}
