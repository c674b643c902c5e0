package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/parcelease/admin-dashboard/internal/core/domain"
	"github.com/parcelease/admin-dashboard/internal/core/ports"
)

type BookingService struct {
	repo   ports.BookingRepository
	logger zerolog.Logger
}

func NewBookingService(repo ports.BookingRepository, logger zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, logger: logger}
}

// ListBookings returns parcels newest first. The "all" status tab means no status filter.
func (s *BookingService) ListBookings(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	if strings.EqualFold(filter.Status, "all") {
		filter.Status = ""
	}

	bookings, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

func (s *BookingService) GetBooking(ctx context.Context, parcelID string) (*domain.Booking, error) {
	b, err := s.repo.FindByID(ctx, parcelID)
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", parcelID, err)
	}
	return b, nil
}

// GetTimeline loads a booking and derives its tracking events.
func (s *BookingService) GetTimeline(ctx context.Context, parcelID string) (*ports.BookingTimeline, error) {
	b, err := s.GetBooking(ctx, parcelID)
	if err != nil {
		return nil, err
	}

	return &ports.BookingTimeline{
		Booking: *b,
		Events:  domain.SynthesizeTimeline(*b),
	}, nil
}
