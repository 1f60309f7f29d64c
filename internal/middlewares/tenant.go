package middlewares

import (
	"context"
	"net/http"

	"github.com/wipetrack/erasure-api/internal/logger"
	"github.com/wipetrack/erasure-api/internal/models"
	"github.com/wipetrack/erasure-api/internal/tenant"
)

// UserContextResolver resolves a caller's identity.
type UserContextResolver interface {
	Resolve(ctx context.Context, email string) (*models.UserContext, error)
}

// PrivateCloudChecker resolves whether an account routes to a dedicated
// database.
type PrivateCloudChecker interface {
	Resolve(ctx context.Context, email string) (*models.PrivateCloudConfigDB, error)
}

// TenantMiddleware classifies each authenticated request: it resolves the
// caller's identity, computes the effective account (parent for subusers),
// decides whether the request routes to a private-cloud database, and
// attaches the resulting routing info to the request context. Unresolvable
// identities route to the shared database; resolution errors fail the
// request. Any dedicated handle opened downstream is closed at request end.
func TenantMiddleware(users UserContextResolver, privateCloud PrivateCloudChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			claims := GetClaimsFromContext(ctx)
			if claims == nil {
				logger.Log.Errorw("tenant middleware requires authenticated request")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			info := &tenant.RequestInfo{
				UserEmail:     claims.Email,
				UserType:      claims.UserType,
				OriginalEmail: claims.Email,
			}

			uc, err := users.Resolve(ctx, claims.Email)
			if err != nil {
				logger.Log.Errorw("user context resolution failed", "email", claims.Email, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if uc != nil {
				info.UserType = uc.UserType()
				info.EffectiveEmail = uc.EffectiveEmail()

				cfg, err := privateCloud.Resolve(ctx, info.EffectiveEmail)
				if err != nil {
					logger.Log.Errorw("private-cloud resolution failed", "email", info.EffectiveEmail, "error", err)
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				info.IsPrivateCloud = cfg != nil
			}

			defer func() {
				if db := info.DedicatedDB(); db != nil {
					db.Close()
				}
			}()

			next.ServeHTTP(w, r.WithContext(tenant.WithRequestInfo(ctx, info)))
		})
	}
}
