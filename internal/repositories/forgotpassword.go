package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/wipetrack/erasure-api/internal/logger"
	"github.com/wipetrack/erasure-api/internal/models"
)

// ForgotPasswordReadRepository reads password-reset request rows. Every read
// filters out used and expired rows and takes the most recently created
// remaining row.
type ForgotPasswordReadRepository struct {
	db *sqlx.DB
}

func NewForgotPasswordReadRepository(db *sqlx.DB) *ForgotPasswordReadRepository {
	return &ForgotPasswordReadRepository{db: db}
}

const forgotPasswordColumns = `request_id, email, otp_code, reset_token, is_used, created_at, expires_at`

func (r *ForgotPasswordReadRepository) getActive(ctx context.Context, query string, args ...any) (*models.ForgotPasswordRequestDB, error) {
	var req models.ForgotPasswordRequestDB
	err := r.db.GetContext(ctx, &req, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// GetActiveByEmail returns the newest unused, unexpired request for an email,
// or nil if there is none.
func (r *ForgotPasswordReadRepository) GetActiveByEmail(ctx context.Context, email string) (*models.ForgotPasswordRequestDB, error) {
	const query = `
		SELECT ` + forgotPasswordColumns + `
		FROM forgot_password_requests
		WHERE email = $1 AND NOT is_used AND expires_at > NOW()
		ORDER BY created_at DESC
		LIMIT 1
	`
	return r.getActive(ctx, query, email)
}

// GetActiveByToken returns the newest unused, unexpired request carrying the
// given reset token, or nil.
func (r *ForgotPasswordReadRepository) GetActiveByToken(ctx context.Context, token string) (*models.ForgotPasswordRequestDB, error) {
	const query = `
		SELECT ` + forgotPasswordColumns + `
		FROM forgot_password_requests
		WHERE reset_token = $1 AND NOT is_used AND expires_at > NOW()
		ORDER BY created_at DESC
		LIMIT 1
	`
	return r.getActive(ctx, query, token)
}

// GetActiveByEmailAndCode returns the newest unused, unexpired request
// matching (email, one-time code), or nil.
func (r *ForgotPasswordReadRepository) GetActiveByEmailAndCode(ctx context.Context, email, code string) (*models.ForgotPasswordRequestDB, error) {
	const query = `
		SELECT ` + forgotPasswordColumns + `
		FROM forgot_password_requests
		WHERE email = $1 AND otp_code = $2 AND NOT is_used AND expires_at > NOW()
		ORDER BY created_at DESC
		LIMIT 1
	`
	return r.getActive(ctx, query, email, code)
}

// CountActiveByEmail counts unused, unexpired requests for an email.
func (r *ForgotPasswordReadRepository) CountActiveByEmail(ctx context.Context, email string) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM forgot_password_requests
		WHERE email = $1 AND NOT is_used AND expires_at > NOW()
	`

	var count int64
	err := r.db.GetContext(ctx, &count, query, email)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"result", count,
		"error", err,
	)

	return count, err
}

// ForgotPasswordWriteRepository mutates password-reset request rows.
type ForgotPasswordWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewForgotPasswordWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ForgotPasswordWriteRepository {
	return &ForgotPasswordWriteRepository{db: db, txGetter: txGetter}
}

func (r *ForgotPasswordWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new reset request and returns its id.
func (r *ForgotPasswordWriteRepository) Save(ctx context.Context, email, otpCode, resetToken string, expiresAt time.Time) (int64, error) {
	query := `
		INSERT INTO forgot_password_requests (email, otp_code, reset_token, is_used, created_at, expires_at)
		VALUES ($1, $2, $3, FALSE, NOW(), $4)
		RETURNING request_id
	`

	var requestID int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &requestID, query, email, otpCode, resetToken, expiresAt)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email, expiresAt},
		"result", requestID,
		"error", err,
	)

	return requestID, err
}

// MarkUsed flags a request as consumed. Returns sql.ErrNoRows when the row
// does not exist or was already used.
func (r *ForgotPasswordWriteRepository) MarkUsed(ctx context.Context, requestID int64) error {
	query := `
		UPDATE forgot_password_requests
		SET is_used = TRUE
		WHERE request_id = $1 AND NOT is_used
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, requestID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{requestID},
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

// DeleteExpiredOrUsed bulk deletes rows that can never validate again and
// returns the number removed. Called by the periodic sweep.
func (r *ForgotPasswordWriteRepository) DeleteExpiredOrUsed(ctx context.Context) (int64, error) {
	query := `
		DELETE FROM forgot_password_requests
		WHERE is_used OR expires_at <= NOW()
	`

	res, err := r.executor(ctx).ExecContext(ctx, query)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
