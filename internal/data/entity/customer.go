package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is the profile attached 1:1 to a user. The row is created
// lazily, a user may exist without one until provisioned.
type Customer struct {
	BaseSimple
	UserID      uuid.UUID  `db:"user_id"`
	DateOfBirth *time.Time `db:"date_of_birth"`
}
