package services

import (
	"context"
	"encoding/json"

	"github.com/wipetrack/erasure-api/internal/logger"
	"github.com/wipetrack/erasure-api/internal/models"
)

// PrivateCloudConfigReader defines read access to the private-cloud-config
// store. Only active rows are ever returned.
type PrivateCloudConfigReader interface {
	GetActiveByEmail(ctx context.Context, email string) (*models.PrivateCloudConfigDB, error)
}

// PrivateCloudConfigWriter defines the operator mutations.
type PrivateCloudConfigWriter interface {
	Upsert(ctx context.Context, email, databaseName, connectionString string, isActive bool) error
	Deactivate(ctx context.Context, email string) error
}

// pcConfigEnvelope makes "no private cloud" cacheable. The model's JSON tags
// hide the connection string from API responses, so the cache carries its own
// representation.
type pcConfigEnvelope struct {
	Found  bool            `json:"found"`
	Config *cachedPCConfig `json:"config,omitempty"`
}

type cachedPCConfig struct {
	ConfigID         int64  `json:"config_id"`
	Email            string `json:"email"`
	DatabaseName     string `json:"database_name"`
	ConnectionString string `json:"connection_string"`
	IsActive         bool   `json:"is_active"`
}

func toCachedPCConfig(cfg *models.PrivateCloudConfigDB) *cachedPCConfig {
	if cfg == nil {
		return nil
	}
	return &cachedPCConfig{
		ConfigID:         cfg.ConfigID,
		Email:            cfg.Email,
		DatabaseName:     cfg.DatabaseName,
		ConnectionString: cfg.ConnectionString,
		IsActive:         cfg.IsActive,
	}
}

func (c *cachedPCConfig) toModel() *models.PrivateCloudConfigDB {
	return &models.PrivateCloudConfigDB{
		ConfigID:         c.ConfigID,
		Email:            c.Email,
		DatabaseName:     c.DatabaseName,
		ConnectionString: c.ConnectionString,
		IsActive:         c.IsActive,
	}
}

// PrivateCloudService resolves whether an account has a dedicated database
// and caches the resulting descriptor. Absence means "use shared database".
type PrivateCloudService struct {
	reader PrivateCloudConfigReader
	writer PrivateCloudConfigWriter
	cache  Cache
	audit  AuditPublisher
}

// NewPrivateCloudService creates a PrivateCloudService. writer and audit may
// be nil for read-only consumers.
func NewPrivateCloudService(reader PrivateCloudConfigReader, writer PrivateCloudConfigWriter, cache Cache, audit AuditPublisher) *PrivateCloudService {
	return &PrivateCloudService{reader: reader, writer: writer, cache: cache, audit: audit}
}

// Resolve returns the active private-cloud config for an email, or nil when
// the account lives in the shared database.
func (s *PrivateCloudService) Resolve(ctx context.Context, email string) (*models.PrivateCloudConfigDB, error) {
	email = NormalizeEmail(email)

	raw, err := s.cache.GetOrCreate(ctx, pcConfigKeyPrefix+email, privateCloudTTL, func(ctx context.Context) ([]byte, error) {
		cfg, err := s.reader.GetActiveByEmail(ctx, email)
		if err != nil {
			logger.Log.Errorw("failed to query private-cloud config store", "email", email, "error", err)
			return nil, err
		}
		return json.Marshal(pcConfigEnvelope{Found: cfg != nil, Config: toCachedPCConfig(cfg)})
	})
	if err != nil {
		return nil, err
	}

	var envelope pcConfigEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		logger.Log.Errorw("corrupt cached private-cloud config", "email", email, "error", err)
		return s.reader.GetActiveByEmail(ctx, email)
	}
	if !envelope.Found || envelope.Config == nil {
		return nil, nil
	}
	return envelope.Config.toModel(), nil
}

// Invalidate clears the cached descriptor for an email. Called whenever an
// operator edits or deactivates a config.
func (s *PrivateCloudService) Invalidate(ctx context.Context, email string) error {
	return s.cache.Remove(ctx, pcConfigKeyPrefix+NormalizeEmail(email))
}

// UpsertConfig creates or replaces the private-cloud config for an email and
// invalidates the cached descriptor.
func (s *PrivateCloudService) UpsertConfig(ctx context.Context, email, databaseName, connectionString string, isActive bool) error {
	email = NormalizeEmail(email)

	if err := s.writer.Upsert(ctx, email, databaseName, connectionString, isActive); err != nil {
		logger.Log.Errorw("failed to upsert private-cloud config", "email", email, "error", err)
		return err
	}
	if err := s.Invalidate(ctx, email); err != nil {
		return err
	}

	if s.audit != nil {
		s.audit.Publish(ctx, models.AuditPrivateCloudChanged, email, "upsert "+databaseName)
	}
	return nil
}

// DeactivateConfig clears the active flag and invalidates the cached
// descriptor; the account falls back to the shared database.
func (s *PrivateCloudService) DeactivateConfig(ctx context.Context, email string) error {
	email = NormalizeEmail(email)

	if err := s.writer.Deactivate(ctx, email); err != nil {
		logger.Log.Errorw("failed to deactivate private-cloud config", "email", email, "error", err)
		return err
	}
	if err := s.Invalidate(ctx, email); err != nil {
		return err
	}

	if s.audit != nil {
		s.audit.Publish(ctx, models.AuditPrivateCloudChanged, email, "deactivate")
	}
	return nil
}
