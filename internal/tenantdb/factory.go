package tenantdb

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/wipetrack/erasure-api/internal/logger"
)

// ErrDatabaseUnavailable is returned when a tenant database handle could not
// be constructed after the bounded retries were exhausted.
var ErrDatabaseUnavailable = errors.New("tenant database unavailable")

const (
	connectAttempts = 3
	connectDelay    = 500 * time.Millisecond

	// Keep tenant queries failing fast instead of hanging on a stalled
	// private-cloud database. Milliseconds, below the server default.
	statementTimeoutMS = 15000

	maxOpenConns = 4
	maxIdleConns = 2
)

// ConnectionStringProvider resolves the connection string a request or user
// routes to. Implemented by services.TenantConnectionService.
type ConnectionStringProvider interface {
	GetConnectionString(ctx context.Context) (string, error)
	GetConnectionStringForUser(ctx context.Context, email string) (string, error)
}

// ContextFactory builds live database handles for private-cloud tenants with
// a bounded retry policy. Construction failures are logged and surfaced to
// the caller; there is no fallback to another tenant's database.
type ContextFactory struct {
	conns  ConnectionStringProvider
	opener func(ctx context.Context, driverName, dsn string) (*sqlx.DB, error)
}

// Option configures a ContextFactory.
type Option func(*ContextFactory)

// WithOpener overrides how connections are opened. Used in tests.
func WithOpener(opener func(ctx context.Context, driverName, dsn string) (*sqlx.DB, error)) Option {
	return func(f *ContextFactory) { f.opener = opener }
}

// NewContextFactory creates a factory around a connection-string provider.
func NewContextFactory(conns ConnectionStringProvider, opts ...Option) *ContextFactory {
	f := &ContextFactory{
		conns:  conns,
		opener: sqlx.ConnectContext,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateForRequest builds a handle against the database the current request
// routes to.
func (f *ContextFactory) CreateForRequest(ctx context.Context) (*sqlx.DB, error) {
	dsn, err := f.conns.GetConnectionString(ctx)
	if err != nil {
		logger.Log.Errorw("failed to resolve request connection string", "error", err)
		return nil, err
	}
	return f.open(ctx, dsn)
}

// CreateForUser builds a handle against the database the given account
// routes to.
func (f *ContextFactory) CreateForUser(ctx context.Context, email string) (*sqlx.DB, error) {
	dsn, err := f.conns.GetConnectionStringForUser(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to resolve user connection string", "email", email, "error", err)
		return nil, err
	}
	return f.open(ctx, dsn)
}

// open connects with a fixed retry count and fixed delay between attempts.
// Retries cover only handle construction, never query results.
func (f *ContextFactory) open(ctx context.Context, dsn string) (*sqlx.DB, error) {
	dsn = withStatementTimeout(dsn)

	var lastErr error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		db, err := f.opener(ctx, "pgx", dsn)
		if err == nil {
			db.SetMaxOpenConns(maxOpenConns)
			db.SetMaxIdleConns(maxIdleConns)
			return db, nil
		}
		lastErr = err
		logger.Log.Warnw("tenant database connect failed",
			"attempt", attempt,
			"max_attempts", connectAttempts,
			"error", err,
		)

		if attempt == connectAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(connectDelay):
		}
	}

	logger.Log.Errorw("tenant database unavailable after retries", "error", lastErr)
	return nil, fmt.Errorf("%w: %v", ErrDatabaseUnavailable, lastErr)
}

// withStatementTimeout appends a statement_timeout runtime parameter to a
// postgres URL-style DSN. Non-URL DSNs are passed through unchanged.
func withStatementTimeout(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.Scheme == "" {
		return dsn
	}
	q := u.Query()
	if q.Get("statement_timeout") == "" {
		q.Set("statement_timeout", fmt.Sprintf("%d", statementTimeoutMS))
		u.RawQuery = q.Encode()
	}
	return u.String()
}
