package models

import "time"

// UserDB represents a primary account row in the shared database
type UserDB struct {
	UserID            int64     `json:"user_id" db:"user_id"`                         // Primary key
	Email             string    `json:"email" db:"email"`                             // Unique, stored lowercase
	Name              string    `json:"name" db:"name"`                               // Display name
	PasswordHash      string    `json:"-" db:"password_hash"`                         // Hashed password
	PrivateAPIEnabled bool      `json:"private_api_enabled" db:"private_api_enabled"` // Whether the account may call the private API
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}

// SubuserDB represents a sub-account row. ParentEmail is resolved by joining
// the parent users row.
type SubuserDB struct {
	SubuserID    int64     `json:"subuser_id" db:"subuser_id"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	ParentUserID int64     `json:"parent_user_id" db:"parent_user_id"`
	ParentEmail  string    `json:"parent_email" db:"parent_email"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
