package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")

// User is a customer account together with how many parcels it has booked.
type User struct {
	ID            string
	Name          string
	Email         string
	Phone         string
	CreatedAt     time.Time
	BookingsCount int64
}

// UserDeletion reports what a cascading user delete removed.
type UserDeletion struct {
	UserID         string
	ParcelsRemoved int64
}
