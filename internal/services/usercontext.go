package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/wipetrack/erasure-api/internal/logger"
	"github.com/wipetrack/erasure-api/internal/models"
)

// Cache keys and TTLs for identity resolution
const (
	userContextKeyPrefix  = "userctx:"
	subuserCheckKeyPrefix = "subuser:"
	pcConfigKeyPrefix     = "pcconfig:"

	userContextTTL  = 10 * time.Minute
	subuserCheckTTL = 15 * time.Minute
	privateCloudTTL = 10 * time.Minute
)

// UserReader defines read-only access to the primary account store.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// SubuserReader defines read-only access to the sub-account store.
type SubuserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.SubuserDB, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// Cache is a get-or-create key/value cache with TTL.
type Cache interface {
	GetOrCreate(ctx context.Context, key string, ttl time.Duration, producer func(ctx context.Context) ([]byte, error)) ([]byte, error)
	Remove(ctx context.Context, keys ...string) error
}

// NormalizeEmail lowercases and trims an email address. All cache keys and
// store lookups use the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// userContextEnvelope wraps a cached resolution so "not found" is cacheable
// alongside real contexts.
type userContextEnvelope struct {
	Found   bool                `json:"found"`
	Context *models.UserContext `json:"context,omitempty"`
}

// UserContextService resolves a caller's identity (primary account vs
// sub-account) with a cached lookup layer. Not-found is a normal outcome and
// is cached for the same TTL as hits, so an account created moments ago may
// take up to the TTL to become visible unless the mutation path invalidates.
type UserContextService struct {
	users    UserReader
	subusers SubuserReader
	cache    Cache
}

// NewUserContextService creates a UserContextService.
func NewUserContextService(users UserReader, subusers SubuserReader, cache Cache) *UserContextService {
	return &UserContextService{users: users, subusers: subusers, cache: cache}
}

// Resolve returns the UserContext for an email, or nil when the email matches
// neither the account store nor the sub-account store.
func (s *UserContextService) Resolve(ctx context.Context, email string) (*models.UserContext, error) {
	email = NormalizeEmail(email)

	raw, err := s.cache.GetOrCreate(ctx, userContextKeyPrefix+email, userContextTTL, func(ctx context.Context) ([]byte, error) {
		uc, err := s.resolveFromStore(ctx, email)
		if err != nil {
			return nil, err
		}
		return json.Marshal(userContextEnvelope{Found: uc != nil, Context: uc})
	})
	if err != nil {
		return nil, err
	}

	var envelope userContextEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		logger.Log.Errorw("corrupt cached user context", "email", email, "error", err)
		return s.resolveFromStore(ctx, email)
	}
	if !envelope.Found {
		return nil, nil
	}
	return envelope.Context, nil
}

// resolveFromStore queries the primary-account store first, then the
// sub-account store. A subuser context carries the parent email and never
// has private-API access.
func (s *UserContextService) resolveFromStore(ctx context.Context, email string) (*models.UserContext, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to query account store", "email", email, "error", err)
		return nil, err
	}
	if user != nil {
		userID := user.UserID
		return &models.UserContext{
			UserID:            &userID,
			Email:             NormalizeEmail(user.Email),
			Name:              user.Name,
			PrivateAPIEnabled: user.PrivateAPIEnabled,
		}, nil
	}

	subuser, err := s.subusers.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to query sub-account store", "email", email, "error", err)
		return nil, err
	}
	if subuser != nil {
		subuserID := subuser.SubuserID
		return &models.UserContext{
			Email:             NormalizeEmail(subuser.Email),
			Name:              subuser.Name,
			IsSubuser:         true,
			SubuserID:         &subuserID,
			ParentEmail:       NormalizeEmail(subuser.ParentEmail),
			PrivateAPIEnabled: false,
		}, nil
	}

	return nil, nil
}

// IsSubuser answers "does a sub-account with this email exist", cached
// independently of the full context.
func (s *UserContextService) IsSubuser(ctx context.Context, email string) (bool, error) {
	email = NormalizeEmail(email)

	raw, err := s.cache.GetOrCreate(ctx, subuserCheckKeyPrefix+email, subuserCheckTTL, func(ctx context.Context) ([]byte, error) {
		exists, err := s.subusers.ExistsByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		return json.Marshal(exists)
	})
	if err != nil {
		return false, err
	}

	var exists bool
	if err := json.Unmarshal(raw, &exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Invalidate clears both the context cache entry and the subuser-check entry
// for an email. Called by every mutation path that changes account or
// subuser membership.
func (s *UserContextService) Invalidate(ctx context.Context, email string) error {
	email = NormalizeEmail(email)
	return s.cache.Remove(ctx, userContextKeyPrefix+email, subuserCheckKeyPrefix+email)
}
