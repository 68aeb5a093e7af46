package repository

import (
	"context"
	"fmt"

	"tech-store/internal/data/entity"
	"tech-store/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CustomerRepository interface {
	// GetOrCreate returns the customer row for the user, creating it when
	// absent. The created flag reports which happened.
	GetOrCreate(ctx context.Context, customer *entity.Customer) (*entity.Customer, bool, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Customer, error)
}

type customerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCustomerRepository(db database.PgxIface, log *zap.Logger) CustomerRepository {
	return &customerRepository{
		db:  db,
		log: log.With(zap.String("repository", "customer")),
	}
}

func (cr *customerRepository) GetOrCreate(ctx context.Context, customer *entity.Customer) (*entity.Customer, bool, error) {
	// The unique index on user_id makes the insert race-safe: of two
	// concurrent calls exactly one row wins, the other falls through to
	// the lookup below.
	query := `
		INSERT INTO customers (id, user_id, date_of_birth, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO NOTHING
	`

	result, err := cr.db.Exec(ctx, query,
		customer.ID,
		customer.UserID,
		customer.DateOfBirth,
		customer.CreatedAt,
	)

	if err != nil {
		cr.log.Error("Failed to create customer",
			zap.Error(err),
			zap.String("user_id", customer.UserID.String()),
		)
		return nil, false, fmt.Errorf("create customer for user %s: %w", customer.UserID.String(), err)
	}

	if result.RowsAffected() > 0 {
		return customer, true, nil
	}

	existing, err := cr.FindByUserID(ctx, customer.UserID)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		// Row vanished between insert and lookup, the user was deleted
		return nil, false, fmt.Errorf("customer for user %s not found after insert", customer.UserID.String())
	}

	return existing, false, nil
}

func (cr *customerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Customer, error) {
	query := `
		SELECT id, user_id, date_of_birth, created_at
		FROM customers
		WHERE user_id = $1
	`

	var customer entity.Customer
	err := cr.db.QueryRow(ctx, query, userID).Scan(
		&customer.ID,
		&customer.UserID,
		&customer.DateOfBirth,
		&customer.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find customer",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find customer by user %s: %w", userID.String(), err)
	}

	return &customer, nil
}
