package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wipetrack/erasure-api/internal/logger"
)

// ConfigAdmin defines the operator mutations on private-cloud configs.
type ConfigAdmin interface {
	UpsertConfig(ctx context.Context, email, databaseName, connectionString string, isActive bool) error
	DeactivateConfig(ctx context.Context, email string) error
}

// UpsertConfigRequest represents the JSON body for a config upsert
// swagger:model UpsertConfigRequest
type UpsertConfigRequest struct {
	// Owner account email
	// required: true
	Email string `json:"email"`

	// Logical database name
	// required: true
	DatabaseName string `json:"database_name"`

	// Full connection string for the dedicated database
	// required: true
	ConnectionString string `json:"connection_string"`

	// Whether the config routes traffic
	// default: true
	IsActive bool `json:"is_active"`
}

// ConfigAdminResponse represents a successful operator mutation
// swagger:model ConfigAdminResponse
type ConfigAdminResponse struct {
	// Success message
	Message string `json:"message"`
}

// NewUpsertConfigHandler returns the operator handler that creates or
// replaces a private-cloud config and invalidates its cache entry.
// @Summary Upsert a private-cloud config
// @Tags admin
// @Accept json
// @Produce json
// @Param upsertConfigRequest body handlers.UpsertConfigRequest true "Config"
// @Success 200 {object} handlers.ConfigAdminResponse "Config stored"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Router /admin/private-cloud-configs [put]
func NewUpsertConfigHandler(svc ConfigAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpsertConfigRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
			req.Email == "" || req.DatabaseName == "" || req.ConnectionString == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		if err := svc.UpsertConfig(r.Context(), req.Email, req.DatabaseName, req.ConnectionString, req.IsActive); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ConfigAdminResponse{Message: "Config stored"})
	}
}

// NewDeactivateConfigHandler returns the operator handler that deactivates a
// private-cloud config; the account falls back to the shared database.
// @Summary Deactivate a private-cloud config
// @Tags admin
// @Produce json
// @Param email path string true "Owner account email"
// @Success 200 {object} handlers.ConfigAdminResponse "Config deactivated"
// @Failure 404 {object} handlers.ErrorResponse "No config for email"
// @Router /admin/private-cloud-configs/{email} [delete]
func NewDeactivateConfigHandler(svc ConfigAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := chi.URLParam(r, "email")
		if email == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "email is required"})
			return
		}

		if err := svc.DeactivateConfig(r.Context(), email); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "No config for email"})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ConfigAdminResponse{Message: "Config deactivated"})
	}
}
