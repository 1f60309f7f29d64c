package models

import "time"

// Erasure report status values
const (
	ReportStatusRunning   = "running"
	ReportStatusCompleted = "completed"
	ReportStatusFailed    = "failed"
)

// ErasureReportDB represents a data-erasure report row. Reports live in
// whichever database the owning account routes to (shared or private cloud).
type ErasureReportDB struct {
	ReportID     int64      `json:"report_id" db:"report_id"`
	Email        string     `json:"email" db:"email"` // Owning (effective) account
	DeviceSerial string     `json:"device_serial" db:"device_serial"`
	Method       string     `json:"method" db:"method"` // Erasure method, e.g. "nist-800-88-purge"
	Status       string     `json:"status" db:"status"`
	StartedAt    time.Time  `json:"started_at" db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty" db:"completed_at"`
}
