package domain

import "time"

// Labels used by the synthesized tracking timeline.
const (
	EventOrderPlaced     = "Order Placed"
	EventPickupScheduled = "Pickup Scheduled"
	EventPickedUp        = "Picked Up"
	EventInTransit       = "In Transit"
	EventOutForDelivery  = "Out for Delivery"
	EventDelivered       = "Delivered"

	// DistributionCenter is the fixed location reported while a parcel is in transit.
	DistributionCenter = "Distribution Center"
)

// TimelineEvent is one synthetic step of a parcel's progress.
type TimelineEvent struct {
	Time     time.Time
	Status   string
	Location string
}

// SynthesizeTimeline derives the tracking events of a booking from its status
// and creation time. The result is always in chronological order and has 3, 4
// or 6 entries: the pickup steps, then "In Transit" for in-transit and
// delivered parcels, then the two drop-off steps for delivered ones.
func SynthesizeTimeline(b Booking) []TimelineEvent {
	at := func(offset time.Duration) time.Time { return b.CreatedAt.Add(offset) }

	events := make([]TimelineEvent, 0, 6)
	events = append(events,
		TimelineEvent{Time: at(-24 * time.Hour), Status: EventOrderPlaced, Location: b.PickupLocation},
		TimelineEvent{Time: at(-18 * time.Hour), Status: EventPickupScheduled, Location: b.PickupLocation},
		TimelineEvent{Time: at(-12 * time.Hour), Status: EventPickedUp, Location: b.PickupLocation},
	)

	if b.Status == StatusInTransit || b.Status == StatusDelivered {
		events = append(events, TimelineEvent{Time: at(-6 * time.Hour), Status: EventInTransit, Location: DistributionCenter})
	}

	if b.Status == StatusDelivered {
		events = append(events,
			TimelineEvent{Time: at(24 * time.Hour), Status: EventOutForDelivery, Location: b.DropLocation},
			TimelineEvent{Time: at(30 * time.Hour), Status: EventDelivered, Location: b.DropLocation},
		)
	}

	return events
}
