package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/wipetrack/erasure-api/internal/logger"
	"github.com/wipetrack/erasure-api/internal/models"
)

// SubuserReadRepository reads sub-account rows from the shared database.
type SubuserReadRepository struct {
	db *sqlx.DB
}

func NewSubuserReadRepository(db *sqlx.DB) *SubuserReadRepository {
	return &SubuserReadRepository{db: db}
}

// GetByEmail returns the sub-account with the given (lowercase) email along
// with its parent account email, or nil if no such sub-account exists.
func (r *SubuserReadRepository) GetByEmail(ctx context.Context, email string) (*models.SubuserDB, error) {
	const query = `
		SELECT s.subuser_id, s.email, s.name, s.password_hash, s.parent_user_id,
		       u.email AS parent_email, s.created_at, s.updated_at
		FROM subusers s
		JOIN users u ON u.user_id = s.parent_user_id
		WHERE s.email = $1
		LIMIT 1
	`

	var subuser models.SubuserDB
	err := r.db.GetContext(ctx, &subuser, query, email)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &subuser, nil
}

// ExistsByEmail reports whether a sub-account with the given email exists.
func (r *SubuserReadRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `
		SELECT EXISTS (SELECT 1 FROM subusers WHERE email = $1)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, email)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"result", exists,
		"error", err,
	)

	return exists, err
}
