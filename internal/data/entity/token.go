package entity

import (
	"time"

	"github.com/google/uuid"
)

// BlacklistedToken is one revoked refresh token, keyed by its jti.
// Rows stay until well past token expiry so revocation survives restarts.
type BlacklistedToken struct {
	JTI           uuid.UUID `db:"jti"`
	UserID        uuid.UUID `db:"user_id"`
	ExpiresAt     time.Time `db:"expires_at"`
	BlacklistedAt time.Time `db:"blacklisted_at"`
}
