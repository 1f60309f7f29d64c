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

// PrivateCloudConfigReadRepository reads private-cloud database descriptors.
type PrivateCloudConfigReadRepository struct {
	db *sqlx.DB
}

func NewPrivateCloudConfigReadRepository(db *sqlx.DB) *PrivateCloudConfigReadRepository {
	return &PrivateCloudConfigReadRepository{db: db}
}

// GetActiveByEmail returns the active private-cloud config owned by the given
// email, or nil when the account uses the shared database. Inactive rows are
// never returned.
func (r *PrivateCloudConfigReadRepository) GetActiveByEmail(ctx context.Context, email string) (*models.PrivateCloudConfigDB, error) {
	const query = `
		SELECT config_id, email, database_name, connection_string, is_active, created_at, updated_at
		FROM private_cloud_configs
		WHERE email = $1 AND is_active = TRUE
		LIMIT 1
	`

	var cfg models.PrivateCloudConfigDB
	err := r.db.GetContext(ctx, &cfg, query, email)

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
	return &cfg, nil
}

// PrivateCloudConfigWriteRepository mutates private-cloud descriptors.
// Used by the operator surface only.
type PrivateCloudConfigWriteRepository struct {
	db *sqlx.DB
}

func NewPrivateCloudConfigWriteRepository(db *sqlx.DB) *PrivateCloudConfigWriteRepository {
	return &PrivateCloudConfigWriteRepository{db: db}
}

// Upsert creates or replaces the config for an email.
func (r *PrivateCloudConfigWriteRepository) Upsert(ctx context.Context, email, databaseName, connectionString string, isActive bool) error {
	query := `
		INSERT INTO private_cloud_configs (email, database_name, connection_string, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (email) DO UPDATE
		SET database_name = EXCLUDED.database_name,
		    connection_string = EXCLUDED.connection_string,
		    is_active = EXCLUDED.is_active,
		    updated_at = NOW()
	`

	res, err := r.db.ExecContext(ctx, query, email, databaseName, connectionString, isActive)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email, databaseName, isActive},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Deactivate clears the active flag for an email. Returns sql.ErrNoRows when
// no config exists.
func (r *PrivateCloudConfigWriteRepository) Deactivate(ctx context.Context, email string) error {
	query := `
		UPDATE private_cloud_configs
		SET is_active = FALSE, updated_at = NOW()
		WHERE email = $1
	`

	res, err := r.db.ExecContext(ctx, query, email)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
