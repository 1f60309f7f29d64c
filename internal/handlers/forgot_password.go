package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wipetrack/erasure-api/internal/logger"
	"github.com/wipetrack/erasure-api/internal/services"
)

// ResetInitiator starts a password reset for an email.
type ResetInitiator interface {
	Initiate(ctx context.Context, email string) (string, error)
}

// ForgotPasswordRequest represents the JSON body for reset initiation
// swagger:model ForgotPasswordRequest
type ForgotPasswordRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`
}

// ForgotPasswordResponse represents a successful initiation response
// swagger:model ForgotPasswordResponse
type ForgotPasswordResponse struct {
	// Success message
	// default: Password reset initiated
	Message string `json:"message"`
}

// NewForgotPasswordHandler returns an HTTP handler that starts a password
// reset.
// @Summary Initiate password reset
// @Description Creates a reset request with a one-time code and reset token for an existing account. Code delivery happens out of band.
// @Tags auth
// @Accept json
// @Produce json
// @Param forgotPasswordRequest body handlers.ForgotPasswordRequest true "Reset initiation request"
// @Success 202 {object} handlers.ForgotPasswordResponse "Reset initiated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.ErrorResponse "Account does not exist"
// @Failure 429 {object} handlers.ErrorResponse "Too many active reset requests"
// @Router /auth/forgot-password [post]
func NewForgotPasswordHandler(svc ResetInitiator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ForgotPasswordRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		_, err := svc.Initiate(r.Context(), req.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Account does not exist"})
			case errors.Is(err, services.ErrTooManyResetRequests):
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Too many active reset requests"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(ForgotPasswordResponse{Message: "Password reset initiated"})
	}
}
