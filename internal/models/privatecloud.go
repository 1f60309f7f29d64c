package models

import "time"

// PrivateCloudConfigDB describes a dedicated, account-specific database.
// Absence of an active row for an email means "use the shared database".
type PrivateCloudConfigDB struct {
	ConfigID         int64     `json:"config_id" db:"config_id"`
	Email            string    `json:"email" db:"email"`                 // Owner account, lowercase
	DatabaseName     string    `json:"database_name" db:"database_name"` // Logical database name
	ConnectionString string    `json:"-" db:"connection_string"`         // Secret, never serialized
	IsActive         bool      `json:"is_active" db:"is_active"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}
