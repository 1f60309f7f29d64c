package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/wipetrack/erasure-api/internal/logger"
	"github.com/wipetrack/erasure-api/internal/models"
	"github.com/wipetrack/erasure-api/internal/tenant"
)

// ErrConnectionResolution is returned when the tenant-connection lookup
// itself failed. "No private cloud configured" is not an error; it falls
// back to the shared connection string.
var ErrConnectionResolution = errors.New("tenant connection resolution failed")

// PrivateCloudResolver resolves an account's private-cloud descriptor.
type PrivateCloudResolver interface {
	Resolve(ctx context.Context, email string) (*models.PrivateCloudConfigDB, error)
}

// TenantConnectionService decides which physical database a caller's data
// lives in and produces the connection string for it.
type TenantConnectionService struct {
	resolver  PrivateCloudResolver
	sharedDSN string
}

// NewTenantConnectionService creates a TenantConnectionService around the
// shared (main) database connection string.
func NewTenantConnectionService(resolver PrivateCloudResolver, sharedDSN string) *TenantConnectionService {
	return &TenantConnectionService{resolver: resolver, sharedDSN: sharedDSN}
}

// GetConnectionString resolves the connection string for the ambient request
// identity: the effective email attached by the tenant middleware. Requests
// without routing info use the shared database.
func (s *TenantConnectionService) GetConnectionString(ctx context.Context) (string, error) {
	info := tenant.FromContext(ctx)
	if info == nil {
		return s.sharedDSN, nil
	}

	email := info.EffectiveEmail
	if email == "" {
		email = info.UserEmail
	}
	return s.GetConnectionStringForUser(ctx, email)
}

// GetConnectionStringForUser resolves the connection string for a specific
// account: the private-cloud connection when an active config exists, the
// shared connection otherwise.
func (s *TenantConnectionService) GetConnectionStringForUser(ctx context.Context, email string) (string, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return s.sharedDSN, nil
	}

	cfg, err := s.resolver.Resolve(ctx, email)
	if err != nil {
		logger.Log.Errorw("private-cloud resolution failed", "email", email, "error", err)
		return "", fmt.Errorf("%w: %v", ErrConnectionResolution, err)
	}
	if cfg == nil {
		return s.sharedDSN, nil
	}
	return cfg.ConnectionString, nil
}
