package domain

import (
	"errors"
	"time"
)

var ErrTicketNotFound = errors.New("ticket not found")

// SupportTicket is a support request raised by a user.
type SupportTicket struct {
	ID        int64
	UserID    string
	Subject   string
	Message   string
	Response  string
	Status    BookingStatus
	CreatedAt time.Time
}

// FAQ is a question/answer pair shown on the help page.
type FAQ struct {
	ID        int64
	Question  string
	Answer    string
	CreatedAt time.Time
}
