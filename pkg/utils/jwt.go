package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	AccessTokenType  = "access"
	RefreshTokenType = "refresh"
)

// AccessClaims carries the identity claim of a short-lived access token
type AccessClaims struct {
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// RefreshClaims carries the jti that makes a refresh token individually
// revocable
type RefreshClaims struct {
	UserID    string `json:"user_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// JTI returns the token's unique identifier
func (c *RefreshClaims) JTI() (uuid.UUID, error) {
	return uuid.Parse(c.ID)
}

// GenerateAccessToken mints a signed HS256 access token. The jti makes
// every mint distinct, two logins in the same second never share a token.
func GenerateAccessToken(userID, role, secret string, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)

	claims := &AccessClaims{
		UserID:    userID,
		Role:      role,
		TokenType: AccessTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign access token: %w", err)
	}

	return signed, expiresAt, nil
}

// GenerateRefreshToken mints a signed HS256 refresh token with a fresh jti
func GenerateRefreshToken(userID, secret string, ttl time.Duration) (string, uuid.UUID, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)
	jti := uuid.New()

	claims := &RefreshClaims{
		UserID:    userID,
		TokenType: RefreshTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti.String(),
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", uuid.Nil, time.Time{}, fmt.Errorf("sign refresh token: %w", err)
	}

	return signed, jti, expiresAt, nil
}

// ParseAccessToken verifies signature and expiry, returns the claims.
// A token without an exp claim is rejected outright.
func ParseAccessToken(tokenString, secret string) (*AccessClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*AccessClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.TokenType != AccessTokenType {
		return nil, errors.New("not an access token")
	}

	return claims, nil
}

// ParseRefreshToken verifies signature, expiry, token type and jti format.
// Requiring exp here keeps the claims safe to dereference downstream, the
// blacklist entry needs the expiry for its retention window.
func ParseRefreshToken(tokenString, secret string) (*RefreshClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &RefreshClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*RefreshClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.TokenType != RefreshTokenType {
		return nil, errors.New("not a refresh token")
	}
	if _, err := claims.JTI(); err != nil {
		return nil, errors.New("refresh token missing jti")
	}

	return claims, nil
}
