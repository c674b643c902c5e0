package domain

import (
	"time"

	"github.com/google/uuid"
)

// AdminEventType names a mutation performed through the dashboard.
type AdminEventType string

const (
	EventUserDeleted    AdminEventType = "user.deleted"
	EventTicketDeleted  AdminEventType = "ticket.deleted"
	EventPaymentCreated AdminEventType = "payment.created"
)

// AdminEvent records a successful mutation for the audit trail and for
// downstream consumers.
type AdminEvent struct {
	ID         string
	Type       AdminEventType
	EntityID   string
	OccurredAt time.Time
	Details    map[string]string
}

// NewAdminEvent stamps a new event with a random id and the given time.
func NewAdminEvent(t AdminEventType, entityID string, at time.Time, details map[string]string) AdminEvent {
	return AdminEvent{
		ID:         uuid.NewString(),
		Type:       t,
		EntityID:   entityID,
		OccurredAt: at.UTC(),
		Details:    details,
	}
}
