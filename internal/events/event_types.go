package events

import (
	"time"

	"github.com/spec-kit/health-facility-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventHealthDataReported      EventType = "health_data_reported"
	EventHealthDataStatusChanged EventType = "health_data_status_changed"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	UserID string      `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID           string      `json:"id"`
	Type         EventType   `json:"type"`
	HealthDataID string      `json:"health_data_id"`
	Actor        Actor       `json:"actor"`
	Timestamp    time.Time   `json:"timestamp"`
	Payload      interface{} `json:"payload"`
}

// HealthDataReportedPayload payload.
type HealthDataReportedPayload struct {
	FacilityID   string `json:"facility_id"`
	DepartmentID string `json:"department_id"`
}

// HealthDataStatusChangedPayload payload.
type HealthDataStatusChangedPayload struct {
	OldStatus domain.HealthDataStatus `json:"old_status"`
	NewStatus domain.HealthDataStatus `json:"new_status"`
}
