package broker

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/parcelease/admin-dashboard/internal/core/domain"
)

func TestEncodeEvent(t *testing.T) {
	ev := domain.AdminEvent{
		ID:         "ev-1",
		Type:       domain.EventPaymentCreated,
		EntityID:   "42",
		OccurredAt: time.Date(2024, 1, 10, 16, 0, 0, 0, time.FixedZone("CET", 3600)),
		Details:    map[string]string{"parcel_id": "P-9"},
	}

	body, err := encodeEvent(ev)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["type"] != "payment.created" || got["entity_id"] != "42" {
		t.Errorf("unexpected message: %s", body)
	}
	if got["occurred_at"] != "2024-01-10T15:00:00Z" {
		t.Errorf("expected UTC timestamp, got %v", got["occurred_at"])
	}
}

func TestEncodeEvent_OmitsEmptyDetails(t *testing.T) {
	body, err := encodeEvent(domain.AdminEvent{ID: "ev-2", Type: domain.EventTicketDeleted})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := got["details"]; ok {
		t.Errorf("expected no details key, got %s", body)
	}
}
