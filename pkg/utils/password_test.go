package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name      string
		password  string
		minLength int
		wantErr   string
	}{
		{
			name:      "acceptable password",
			password:  "Pw1!aaaa",
			minLength: 8,
		},
		{
			name:      "too short",
			password:  "Pw1!a",
			minLength: 8,
			wantErr:   "This password is too short. It must contain at least 8 characters",
		},
		{
			name:      "entirely numeric",
			password:  "1122334455",
			minLength: 8,
			wantErr:   "This password is entirely numeric",
		},
		{
			name:      "common password",
			password:  "password123",
			minLength: 8,
			wantErr:   "This password is too common",
		},
		{
			name:      "common password uppercased",
			password:  "PASSWORD123",
			minLength: 8,
			wantErr:   "This password is too common",
		},
		{
			name:      "zero min length falls back to 8",
			password:  "short1!",
			minLength: 0,
			wantErr:   "This password is too short. It must contain at least 8 characters",
		},
		{
			name:      "digits mixed with letters",
			password:  "a1234567",
			minLength: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password, tt.minLength)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("Pw1!aaaa", 4)

	assert.NoError(t, err)
	assert.NotEqual(t, "Pw1!aaaa", hash)
	assert.True(t, CheckPasswordHash("Pw1!aaaa", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}
