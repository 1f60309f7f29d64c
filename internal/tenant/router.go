package tenant

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// DatabaseFactory builds a dedicated database handle for the current request.
type DatabaseFactory interface {
	CreateForRequest(ctx context.Context) (*sqlx.DB, error)
}

// Router is the request-scoped routing gate. It is a process-wide component
// injected into repositories and handlers; all per-request state lives in the
// RequestInfo carried by the context. Requests without routing info, and
// requests not flagged private-cloud, get the shared handle without touching
// the factory.
type Router struct {
	shared  *sqlx.DB
	factory DatabaseFactory
}

// NewRouter creates a Router around the shared handle and the dynamic factory.
func NewRouter(shared *sqlx.DB, factory DatabaseFactory) *Router {
	return &Router{shared: shared, factory: factory}
}

// DB returns the database handle the current request routes to. The decision
// is made once per request: a private-cloud handle is built on first access
// and reused for the remainder of the request. A failed private-cloud
// construction is returned as an error, never silently replaced by the
// shared handle.
func (r *Router) DB(ctx context.Context) (*sqlx.DB, error) {
	info := FromContext(ctx)
	if info == nil || !info.IsPrivateCloud {
		return r.shared, nil
	}

	info.once.Do(func() {
		info.db, info.dbErr = r.factory.CreateForRequest(ctx)
	})
	if info.dbErr != nil {
		return nil, info.dbErr
	}
	return info.db, nil
}

// CurrentUserEmail returns the authenticated principal's email, or "" when
// no routing info is attached.
func (r *Router) CurrentUserEmail(ctx context.Context) string {
	if info := FromContext(ctx); info != nil {
		return info.UserEmail
	}
	return ""
}

// CurrentUserType returns the caller's user type, or "" when unknown.
func (r *Router) CurrentUserType(ctx context.Context) string {
	if info := FromContext(ctx); info != nil {
		return info.UserType
	}
	return ""
}

// IsPrivateCloud reports whether the current request routes to a dedicated
// database.
func (r *Router) IsPrivateCloud(ctx context.Context) bool {
	if info := FromContext(ctx); info != nil {
		return info.IsPrivateCloud
	}
	return false
}

// EffectiveEmail returns the account whose data the request operates on,
// falling back to the authenticated email when no override is present.
func (r *Router) EffectiveEmail(ctx context.Context) string {
	info := FromContext(ctx)
	if info == nil {
		return ""
	}
	if info.EffectiveEmail != "" {
		return info.EffectiveEmail
	}
	return info.UserEmail
}

// OriginalEmail returns the authenticated principal's email as recorded by
// the tenant middleware, with the same fallback as EffectiveEmail.
func (r *Router) OriginalEmail(ctx context.Context) string {
	info := FromContext(ctx)
	if info == nil {
		return ""
	}
	if info.OriginalEmail != "" {
		return info.OriginalEmail
	}
	return info.UserEmail
}
