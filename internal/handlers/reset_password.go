package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wipetrack/erasure-api/internal/logger"
	"github.com/wipetrack/erasure-api/internal/services"
)

// PasswordResetter confirms a password reset by code or token.
type PasswordResetter interface {
	Reset(ctx context.Context, email, code, newPassword string) error
	ResetByToken(ctx context.Context, token, newPassword string) error
}

// ResetPasswordRequest represents the JSON body for reset confirmation.
// Either (email, code) or token must be supplied.
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// Email, paired with the one-time code
	// default: john@example.com
	Email string `json:"email,omitempty"`

	// One-time code
	// default: 123456
	Code string `json:"code,omitempty"`

	// Reset token from the reset link
	Token string `json:"token,omitempty"`

	// New password
	// required: true
	NewPassword string `json:"new_password"`
}

// ResetPasswordResponse represents a successful reset response
// swagger:model ResetPasswordResponse
type ResetPasswordResponse struct {
	// Success message
	// default: Password updated
	Message string `json:"message"`
}

// NewResetPasswordHandler returns an HTTP handler that confirms a password
// reset.
// @Summary Confirm password reset
// @Description Validates the one-time code (or reset token), replaces the password, and consumes the reset request.
// @Tags auth
// @Accept json
// @Produce json
// @Param resetPasswordRequest body handlers.ResetPasswordRequest true "Reset confirmation request"
// @Success 200 {object} handlers.ResetPasswordResponse "Password updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body or reset code"
// @Router /auth/reset-password [post]
func NewResetPasswordHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetPasswordRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.NewPassword == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		var err error
		switch {
		case req.Token != "":
			err = svc.ResetByToken(r.Context(), req.Token, req.NewPassword)
		case req.Email != "" && req.Code != "":
			err = svc.Reset(r.Context(), req.Email, req.Code, req.NewPassword)
		default:
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "either token or email and code are required"})
			return
		}

		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidResetCode):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid or expired reset code"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ResetPasswordResponse{Message: "Password updated"})
	}
}
