package models

// Audit event types published to Kafka
const (
	AuditPasswordResetRequested = "password_reset_requested"
	AuditPasswordResetCompleted = "password_reset_completed"
	AuditUserRegistered         = "user_registered"
	AuditPrivateCloudChanged    = "private_cloud_config_changed"
)

// AuditEvent is the message published for every account mutation.
// OccurredAt uses the canonical wire timestamp format.
type AuditEvent struct {
	EventID    string `json:"event_id"`    // Unique identifier for the event
	EventType  string `json:"event_type"`  // One of the Audit* constants
	Email      string `json:"email"`       // Account the event concerns
	OccurredAt string `json:"occurred_at"` // Wire-format UTC timestamp
	Detail     string `json:"detail,omitempty"`
}
