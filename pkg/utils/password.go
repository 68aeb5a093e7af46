package utils

import (
	"fmt"
	"strings"
	"unicode"
)

// commonPasswords are rejected outright regardless of length. Short list
// of the usual suspects; the uniqueness and length rules catch the rest.
var commonPasswords = map[string]struct{}{
	"password":    {},
	"password1":   {},
	"password123": {},
	"12345678":    {},
	"123456789":   {},
	"qwerty123":   {},
	"qwertyuiop":  {},
	"iloveyou":    {},
	"admin123":    {},
	"welcome1":    {},
	"letmein":     {},
	"sunshine":    {},
	"football":    {},
	"princess":    {},
	"dragon123":   {},
}

// ValidatePassword enforces the minimum strength rules: length, not
// entirely numeric, not a known common password.
func ValidatePassword(password string, minLength int) error {
	if minLength <= 0 {
		minLength = 8
	}

	if len(password) < minLength {
		return fmt.Errorf("This password is too short. It must contain at least %d characters", minLength)
	}

	numeric := true
	for _, r := range password {
		if !unicode.IsDigit(r) {
			numeric = false
			break
		}
	}
	if numeric {
		return fmt.Errorf("This password is entirely numeric")
	}

	if _, found := commonPasswords[strings.ToLower(password)]; found {
		return fmt.Errorf("This password is too common")
	}

	return nil
}
