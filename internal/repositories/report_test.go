package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

// fixedDBProvider routes every request to one handle, standing in for the
// tenant router.
type fixedDBProvider struct {
	db  *sqlx.DB
	err error
}

func (p *fixedDBProvider) DB(ctx context.Context) (*sqlx.DB, error) {
	return p.db, p.err
}

func TestErasureReportReadRepository(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	repo := NewErasureReportReadRepository(&fixedDBProvider{db: db})

	base := time.Now().Add(-time.Hour)
	_, err := db.Exec(`
		INSERT INTO erasure_reports (email, device_serial, method, status, started_at, completed_at)
		VALUES
			('owner@example.com', 'SN-001', 'nist-purge', 'completed', $1, $2),
			('owner@example.com', 'SN-002', 'nist-clear', 'running', $3, NULL),
			('other@example.com', 'SN-900', 'nist-purge', 'completed', $1, $2)
	`, base, base.Add(10*time.Minute), base.Add(30*time.Minute))
	assert.NoError(t, err)

	t.Run("ListByEmail newest first, scoped to the email", func(t *testing.T) {
		reports, err := repo.ListByEmail(ctx, "owner@example.com", 100)
		assert.NoError(t, err)
		assert.Len(t, reports, 2)
		assert.Equal(t, "SN-002", reports[0].DeviceSerial)
		assert.Equal(t, "SN-001", reports[1].DeviceSerial)
		assert.Nil(t, reports[0].CompletedAt)
		assert.NotNil(t, reports[1].CompletedAt)
	})

	t.Run("ListByEmail honors the limit", func(t *testing.T) {
		reports, err := repo.ListByEmail(ctx, "owner@example.com", 1)
		assert.NoError(t, err)
		assert.Len(t, reports, 1)
		assert.Equal(t, "SN-002", reports[0].DeviceSerial)
	})

	t.Run("GetByID scoped to the email", func(t *testing.T) {
		reports, err := repo.ListByEmail(ctx, "owner@example.com", 1)
		assert.NoError(t, err)

		report, err := repo.GetByID(ctx, "owner@example.com", reports[0].ReportID)
		assert.NoError(t, err)
		assert.NotNil(t, report)
		assert.Equal(t, "SN-002", report.DeviceSerial)

		// Another tenant's report is invisible
		report, err = repo.GetByID(ctx, "other@example.com", reports[0].ReportID)
		assert.NoError(t, err)
		assert.Nil(t, report)
	})

	t.Run("GetByID missing", func(t *testing.T) {
		report, err := repo.GetByID(ctx, "owner@example.com", 999999)
		assert.NoError(t, err)
		assert.Nil(t, report)
	})

	t.Run("routing failure propagates", func(t *testing.T) {
		routeErr := errors.New("tenant database unavailable")
		failing := NewErasureReportReadRepository(&fixedDBProvider{err: routeErr})

		_, err := failing.ListByEmail(ctx, "owner@example.com", 100)
		assert.ErrorIs(t, err, routeErr)

		_, err = failing.GetByID(ctx, "owner@example.com", 1)
		assert.ErrorIs(t, err, routeErr)
	})
}
