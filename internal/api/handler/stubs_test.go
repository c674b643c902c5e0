package handler

import (
	"context"

	"github.com/parcelease/admin-dashboard/internal/core/domain"
	"github.com/parcelease/admin-dashboard/internal/core/ports"
)

type stubUserService struct {
	listFn   func(ctx context.Context) ([]domain.User, error)
	deleteFn func(ctx context.Context, userID string) error
}

func (s *stubUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) DeleteUser(ctx context.Context, userID string) error {
	return s.deleteFn(ctx, userID)
}

type stubBookingService struct {
	listFn     func(ctx context.Context, f domain.BookingFilter) ([]domain.Booking, error)
	getFn      func(ctx context.Context, id string) (*domain.Booking, error)
	timelineFn func(ctx context.Context, id string) (*ports.BookingTimeline, error)
}

func (s *stubBookingService) ListBookings(ctx context.Context, f domain.BookingFilter) ([]domain.Booking, error) {
	return s.listFn(ctx, f)
}

func (s *stubBookingService) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	return s.getFn(ctx, id)
}

func (s *stubBookingService) GetTimeline(ctx context.Context, id string) (*ports.BookingTimeline, error) {
	return s.timelineFn(ctx, id)
}

type stubTicketService struct {
	listFn   func(ctx context.Context) ([]domain.SupportTicket, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubTicketService) ListTickets(ctx context.Context) ([]domain.SupportTicket, error) {
	return s.listFn(ctx)
}

func (s *stubTicketService) DeleteTicket(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type stubFAQService struct {
	listFn func(ctx context.Context) ([]domain.FAQ, error)
}

func (s *stubFAQService) ListFAQs(ctx context.Context) ([]domain.FAQ, error) {
	return s.listFn(ctx)
}

type stubPaymentService struct {
	listFn   func(ctx context.Context) ([]domain.Payment, error)
	getFn    func(ctx context.Context, id string) (*domain.Payment, error)
	createFn func(ctx context.Context, in ports.CreatePaymentInput) (*ports.PaymentResult, error)
}

func (s *stubPaymentService) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	return s.listFn(ctx)
}

func (s *stubPaymentService) GetPayment(ctx context.Context, id string) (*domain.Payment, error) {
	return s.getFn(ctx, id)
}

func (s *stubPaymentService) CreatePayment(ctx context.Context, in ports.CreatePaymentInput) (*ports.PaymentResult, error) {
	return s.createFn(ctx, in)
}

type stubDashboardService struct {
	revenueFn func(ctx context.Context) (*domain.RevenueSeries, error)
	kpisFn    func(ctx context.Context) ([]domain.KPI, error)
}

func (s *stubDashboardService) Revenue(ctx context.Context) (*domain.RevenueSeries, error) {
	return s.revenueFn(ctx)
}

func (s *stubDashboardService) KPIs(ctx context.Context) ([]domain.KPI, error) {
	return s.kpisFn(ctx)
}
