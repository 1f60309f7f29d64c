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

// TenantDBProvider yields the database handle a request routes to: the shared
// handle for ordinary tenants, a dedicated one for private-cloud tenants.
type TenantDBProvider interface {
	DB(ctx context.Context) (*sqlx.DB, error)
}

// ErasureReportReadRepository reads erasure reports through the routed tenant
// handle. The same code path serves shared and private-cloud databases.
type ErasureReportReadRepository struct {
	tenantDB TenantDBProvider
}

func NewErasureReportReadRepository(tenantDB TenantDBProvider) *ErasureReportReadRepository {
	return &ErasureReportReadRepository{tenantDB: tenantDB}
}

// ListByEmail returns reports owned by the given effective email, newest first.
func (r *ErasureReportReadRepository) ListByEmail(ctx context.Context, email string, limit int) ([]models.ErasureReportDB, error) {
	const query = `
		SELECT report_id, email, device_serial, method, status, started_at, completed_at
		FROM erasure_reports
		WHERE email = $1
		ORDER BY started_at DESC
		LIMIT $2
	`

	db, err := r.tenantDB.DB(ctx)
	if err != nil {
		return nil, err
	}

	var reports []models.ErasureReportDB
	err = db.SelectContext(ctx, &reports, query, email, limit)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email, limit},
		"result", len(reports),
		"error", err,
	)

	return reports, err
}

// GetByID returns a single report owned by the given effective email, or nil
// when absent.
func (r *ErasureReportReadRepository) GetByID(ctx context.Context, email string, reportID int64) (*models.ErasureReportDB, error) {
	const query = `
		SELECT report_id, email, device_serial, method, status, started_at, completed_at
		FROM erasure_reports
		WHERE email = $1 AND report_id = $2
		LIMIT 1
	`

	db, err := r.tenantDB.DB(ctx)
	if err != nil {
		return nil, err
	}

	var report models.ErasureReportDB
	err = db.GetContext(ctx, &report, query, email, reportID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email, reportID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}
