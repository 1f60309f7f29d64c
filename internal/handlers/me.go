package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/wipetrack/erasure-api/internal/logger"
	"github.com/wipetrack/erasure-api/internal/models"
)

// IdentityResolver resolves a caller's identity.
type IdentityResolver interface {
	Resolve(ctx context.Context, email string) (*models.UserContext, error)
}

// TenantRouter exposes the per-request routing decision.
type TenantRouter interface {
	CurrentUserEmail(ctx context.Context) string
	CurrentUserType(ctx context.Context) string
	IsPrivateCloud(ctx context.Context) bool
	EffectiveEmail(ctx context.Context) string
	OriginalEmail(ctx context.Context) string
}

// MeResponse describes the caller's resolved identity and routing
// swagger:model MeResponse
type MeResponse struct {
	Email             string `json:"email"`
	Name              string `json:"name"`
	UserType          string `json:"user_type"`
	IsSubuser         bool   `json:"is_subuser"`
	ParentEmail       string `json:"parent_email,omitempty"`
	PrivateAPIEnabled bool   `json:"private_api_enabled"`
	IsPrivateCloud    bool   `json:"is_private_cloud"`
	EffectiveEmail    string `json:"effective_email"`
	OriginalEmail     string `json:"original_email"`
}

// NewMeHandler returns an HTTP handler that describes the caller.
// @Summary Current caller identity
// @Description Returns the resolved identity of the authenticated caller together with its tenant routing decision.
// @Tags identity
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.MeResponse "Resolved identity"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 404 {object} handlers.ErrorResponse "Account does not exist"
// @Router /me [get]
func NewMeHandler(resolver IdentityResolver, router TenantRouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		email := router.CurrentUserEmail(ctx)
		if email == "" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Not authenticated"})
			return
		}

		uc, err := resolver.Resolve(ctx, email)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if uc == nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Account does not exist"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MeResponse{
			Email:             uc.Email,
			Name:              uc.Name,
			UserType:          uc.UserType(),
			IsSubuser:         uc.IsSubuser,
			ParentEmail:       uc.ParentEmail,
			PrivateAPIEnabled: uc.PrivateAPIEnabled,
			IsPrivateCloud:    router.IsPrivateCloud(ctx),
			EffectiveEmail:    router.EffectiveEmail(ctx),
			OriginalEmail:     router.OriginalEmail(ctx),
		})
	}
}
