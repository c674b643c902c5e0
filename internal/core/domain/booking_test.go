package domain

import "testing"

func TestParseStatus(t *testing.T) {
	cases := map[string]BookingStatus{
		"pending":    StatusPending,
		"in-transit": StatusInTransit,
		"delivered":  StatusDelivered,
		"Confirmed":  StatusConfirmed,
		"confirmed":  StatusPending,
		"In Transit": StatusPending,
		"":           StatusPending,
		"shipped":    StatusPending,
	}
	for raw, want := range cases {
		if got := ParseStatus(raw); got != want {
			t.Errorf("ParseStatus(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestStatusesExcept(t *testing.T) {
	others := StatusesExcept(StatusPending)
	if len(others) != 9 {
		t.Fatalf("expected 9 other statuses, got %v", others)
	}
	for _, s := range others {
		if s == string(StatusPending) || !IsKnownStatus(s) {
			t.Errorf("unexpected status %q", s)
		}
	}
	if IsKnownStatus("shipped") || IsKnownStatus("PENDING") {
		t.Error("unknown statuses must not be reported as known")
	}
}
