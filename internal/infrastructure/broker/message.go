package broker

import (
	"encoding/json"
	"time"

	"github.com/parcelease/admin-dashboard/internal/core/domain"
)

// eventMessage is the JSON body published for every admin event.
type eventMessage struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	EntityID   string            `json:"entity_id"`
	OccurredAt time.Time         `json:"occurred_at"`
	Details    map[string]string `json:"details,omitempty"`
}

func encodeEvent(e domain.AdminEvent) ([]byte, error) {
	return json.Marshal(eventMessage{
		ID:         e.ID,
		Type:       string(e.Type),
		EntityID:   e.EntityID,
		OccurredAt: e.OccurredAt.UTC(),
		Details:    e.Details,
	})
}
