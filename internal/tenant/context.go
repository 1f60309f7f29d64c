package tenant

import (
	"context"
	"sync"

	"github.com/jmoiron/sqlx"
)

// RequestInfo is the per-request routing decision: whether the caller routes
// to a private-cloud database and which account identities apply. It is
// created once by the tenant middleware, read-only afterward, and discarded
// at request end. The resolved handle is memoized here so a request never
// resolves its tenant twice.
type RequestInfo struct {
	IsPrivateCloud bool
	UserEmail      string // Authenticated principal
	UserType       string
	EffectiveEmail string // Account whose data the request operates on
	OriginalEmail  string

	once  sync.Once
	db    *sqlx.DB
	dbErr error
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var requestInfoKey = contextKey{}

// WithRequestInfo attaches routing info to the request context.
func WithRequestInfo(ctx context.Context, info *RequestInfo) context.Context {
	return context.WithValue(ctx, requestInfoKey, info)
}

// FromContext retrieves the routing info. Returns nil if the tenant
// middleware did not run for this request.
func FromContext(ctx context.Context) *RequestInfo {
	info, _ := ctx.Value(requestInfoKey).(*RequestInfo)
	return info
}

// DedicatedDB returns the memoized private-cloud handle, if one was opened.
// Used by the middleware to close it at request end.
func (i *RequestInfo) DedicatedDB() *sqlx.DB {
	return i.db
}
