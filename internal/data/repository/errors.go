package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors surfaced by the repositories. Uniqueness conflicts are
// detected off the database constraints themselves, so two concurrent
// registrations with the same email cannot both win the insert.
var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrDuplicatePhone     = errors.New("phone number already registered")
	ErrDuplicateUser      = errors.New("user already exists")
	ErrAlreadyBlacklisted = errors.New("token already blacklisted")
)

const uniqueViolationCode = "23505"

// mapUniqueViolation translates a pg unique violation into the matching
// duplicate sentinel, or returns nil when err is not a unique violation.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return nil
	}

	switch pgErr.ConstraintName {
	case "users_email_key":
		return ErrDuplicateEmail
	case "users_phone_number_key":
		return ErrDuplicatePhone
	default:
		return ErrDuplicateUser
	}
}
