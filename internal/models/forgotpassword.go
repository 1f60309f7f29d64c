package models

import "time"

// ForgotPasswordRequestDB is a password-reset attempt record. A row is valid
// only while !IsUsed and ExpiresAt is in the future; lookups take the most
// recently created valid row per email.
type ForgotPasswordRequestDB struct {
	RequestID  int64     `json:"request_id" db:"request_id"`
	Email      string    `json:"email" db:"email"`
	OTPCode    string    `json:"-" db:"otp_code"`     // One-time code sent to the user
	ResetToken string    `json:"-" db:"reset_token"`  // Opaque token for the reset link
	IsUsed     bool      `json:"is_used" db:"is_used"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	ExpiresAt  time.Time `json:"expires_at" db:"expires_at"`
}
