package repository

import (
	"context"
	"fmt"

	"tech-store/internal/data/entity"
	"tech-store/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TokenRepository interface {
	// Blacklist marks the jti revoked. Returns ErrAlreadyBlacklisted when
	// the jti is on the list already, so a double revoke is detectable
	// without being a hard failure.
	Blacklist(ctx context.Context, token *entity.BlacklistedToken) error
	IsBlacklisted(ctx context.Context, jti uuid.UUID) (bool, error)
	DeleteExpired(ctx context.Context) error
}

type tokenRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTokenRepository(db database.PgxIface, log *zap.Logger) TokenRepository {
	return &tokenRepository{
		db:  db,
		log: log.With(zap.String("repository", "token")),
	}
}

func (tr *tokenRepository) Blacklist(ctx context.Context, token *entity.BlacklistedToken) error {
	// Primary key on jti keeps this atomic: once the insert commits, every
	// later IsBlacklisted sees the entry.
	query := `
		INSERT INTO token_blacklist (jti, user_id, expires_at, blacklisted_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (jti) DO NOTHING
	`

	result, err := tr.db.Exec(ctx, query,
		token.JTI,
		token.UserID,
		token.ExpiresAt,
		token.BlacklistedAt,
	)

	if err != nil {
		tr.log.Error("Failed to blacklist token",
			zap.Error(err),
			zap.String("jti", token.JTI.String()),
		)
		return fmt.Errorf("blacklist token %s: %w", token.JTI.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrAlreadyBlacklisted
	}

	return nil
}

func (tr *tokenRepository) IsBlacklisted(ctx context.Context, jti uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM token_blacklist WHERE jti = $1)`

	var blacklisted bool
	if err := tr.db.QueryRow(ctx, query, jti).Scan(&blacklisted); err != nil {
		tr.log.Error("Failed to check token blacklist",
			zap.Error(err),
			zap.String("jti", jti.String()),
		)
		return false, fmt.Errorf("check blacklist for %s: %w", jti.String(), err)
	}

	return blacklisted, nil
}

// DeleteExpired prunes entries whose token expired long ago. An expired
// token fails validation on its own, the row is only bookkeeping by then.
func (tr *tokenRepository) DeleteExpired(ctx context.Context) error {
	query := `
		DELETE FROM token_blacklist
		WHERE expires_at < NOW() - INTERVAL '7 days'
	`

	if _, err := tr.db.Exec(ctx, query); err != nil {
		tr.log.Error("Failed to prune token blacklist", zap.Error(err))
		return fmt.Errorf("prune token blacklist: %w", err)
	}

	return nil
}
