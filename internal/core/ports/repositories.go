package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/parcelease/admin-dashboard/internal/core/domain"
)

// UserRepository handles user persistence.
type UserRepository interface {
	// ListWithBookingCounts returns every user, newest first, with the number
	// of parcels each one has booked.
	ListWithBookingCounts(ctx context.Context) ([]domain.User, error)
	// DeleteCascade removes the user's parcels and then the user inside one
	// transaction. It returns domain.ErrUserNotFound, and changes nothing,
	// when no such user exists.
	DeleteCascade(ctx context.Context, userID string) (*domain.UserDeletion, error)
}

// BookingRepository handles parcel persistence.
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error)
	FindByID(ctx context.Context, parcelID string) (*domain.Booking, error)
}

// TicketRepository handles support ticket persistence.
type TicketRepository interface {
	List(ctx context.Context) ([]domain.SupportTicket, error)
	// Delete returns domain.ErrTicketNotFound when nothing was removed.
	Delete(ctx context.Context, id int64) error
}

// CreatePaymentParams carries the columns of a new payment row.
type CreatePaymentParams struct {
	UserID        string
	ParcelID      string
	Amount        decimal.Decimal
	PaymentMethod string
	PaymentStatus string
	TransactionID string
}

// PaymentRepository handles payment persistence.
type PaymentRepository interface {
	List(ctx context.Context) ([]domain.Payment, error)
	FindByID(ctx context.Context, id int64) (*domain.Payment, error)
	Create(ctx context.Context, params CreatePaymentParams) (int64, error)
}

// FAQRepository reads the FAQ list.
type FAQRepository interface {
	List(ctx context.Context) ([]domain.FAQ, error)
}

// DashboardRepository runs the aggregate queries behind the dashboard.
type DashboardRepository interface {
	// DailyRevenue sums parcel amounts per calendar day for days in [from, to].
	DailyRevenue(ctx context.Context, from, to time.Time) ([]domain.DailyRevenue, error)
	CountBookingsSince(ctx context.Context, since time.Time) (int64, error)
	SumRevenueSince(ctx context.Context, since time.Time) (decimal.Decimal, error)
	CountBookingsByStatus(ctx context.Context, status domain.BookingStatus) (int64, error)
	// CountOpenTickets counts tickets still waiting for an answer.
	CountOpenTickets(ctx context.Context) (int64, error)
}
