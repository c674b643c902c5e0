package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/parcelease/admin-dashboard/internal/core/domain"
)

// UserService defines use-case operations for users.
type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

// BookingTimeline is a booking together with its synthesized tracking events.
type BookingTimeline struct {
	Booking domain.Booking
	Events  []domain.TimelineEvent
}

// BookingService defines use-case operations for bookings.
type BookingService interface {
	ListBookings(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error)
	GetBooking(ctx context.Context, parcelID string) (*domain.Booking, error)
	GetTimeline(ctx context.Context, parcelID string) (*BookingTimeline, error)
}

// TicketService defines use-case operations for support tickets.
type TicketService interface {
	ListTickets(ctx context.Context) ([]domain.SupportTicket, error)
	DeleteTicket(ctx context.Context, id string) error
}

// CreatePaymentInput is the DTO passed from the transport layer to PaymentService.
type CreatePaymentInput struct {
	UserID         string
	ParcelID       string
	Amount         decimal.Decimal
	PaymentMethod  string
	PaymentStatus  string
	TransactionID  string
	IdempotencyKey string
}

// PaymentResult is returned after creating a payment.
type PaymentResult struct {
	ID int64
	// AlreadyExisted is true when the Idempotency-Key matched an earlier insert.
	AlreadyExisted bool
}

// PaymentService defines use-case operations for payments.
type PaymentService interface {
	ListPayments(ctx context.Context) ([]domain.Payment, error)
	GetPayment(ctx context.Context, id string) (*domain.Payment, error)
	CreatePayment(ctx context.Context, input CreatePaymentInput) (*PaymentResult, error)
}

// FAQService lists FAQs.
type FAQService interface {
	ListFAQs(ctx context.Context) ([]domain.FAQ, error)
}

// DashboardService computes the dashboard's derived views.
type DashboardService interface {
	Revenue(ctx context.Context) (*domain.RevenueSeries, error)
	KPIs(ctx context.Context) ([]domain.KPI, error)
}

// Clock returns the current time. Services take one so tests can pin "today".
type Clock func() time.Time
