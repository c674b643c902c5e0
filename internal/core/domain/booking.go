package domain

import (
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus represents the lifecycle state shown for a parcel, ticket or user.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusInTransit BookingStatus = "in-transit"
	StatusDelivered BookingStatus = "delivered"
	StatusCancelled BookingStatus = "cancelled"
	StatusActive    BookingStatus = "active"
	StatusBlocked   BookingStatus = "blocked"
	StatusOpen      BookingStatus = "open"
	StatusClosed    BookingStatus = "closed"
	StatusConfirmed BookingStatus = "Confirmed"
	StatusFailed    BookingStatus = "failed"
)

var knownStatuses = map[BookingStatus]struct{}{
	StatusPending:   {},
	StatusInTransit: {},
	StatusDelivered: {},
	StatusCancelled: {},
	StatusActive:    {},
	StatusBlocked:   {},
	StatusOpen:      {},
	StatusClosed:    {},
	StatusConfirmed: {},
	StatusFailed:    {},
}

// ParseStatus coerces a raw status coming from the store. Anything outside the
// closed set becomes StatusPending; it is never an error.
func ParseStatus(raw string) BookingStatus {
	s := BookingStatus(raw)
	if _, ok := knownStatuses[s]; ok {
		return s
	}
	return StatusPending
}

// IsKnownStatus reports whether raw is one of the closed set of statuses.
func IsKnownStatus(raw string) bool {
	_, ok := knownStatuses[BookingStatus(raw)]
	return ok
}

// StatusesExcept lists every known status other than s, sorted.
func StatusesExcept(s BookingStatus) []string {
	out := make([]string, 0, len(knownStatuses))
	for k := range knownStatuses {
		if k != s {
			out = append(out, string(k))
		}
	}
	sort.Strings(out)
	return out
}

// DeliveryType is the service level chosen for a parcel.
type DeliveryType string

const (
	DeliveryNormal  DeliveryType = "normal"
	DeliveryExpress DeliveryType = "expressdelivery"
)

var ErrBookingNotFound = errors.New("booking not found")

// Booking is a parcel record as booked by a user.
type Booking struct {
	ID             string
	UserID         string
	PickupLocation string
	DropLocation   string
	DeliveryType   DeliveryType
	CreatedAt      time.Time
	Status         BookingStatus
	Amount         decimal.Decimal
}

// BookingFilter narrows the bookings list. Zero values mean "any".
type BookingFilter struct {
	Status string // status as displayed after ParseStatus; "all" is treated as empty
	Search string // case-insensitive substring over id, user, pickup and drop
}
