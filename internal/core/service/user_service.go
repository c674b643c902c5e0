package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/parcelease/admin-dashboard/internal/core/domain"
	"github.com/parcelease/admin-dashboard/internal/core/ports"
)

type UserService struct {
	repo   ports.UserRepository
	events ports.EventPublisher
	clock  ports.Clock
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, events ports.EventPublisher, clock ports.Clock, logger zerolog.Logger) *UserService {
	if events == nil {
		events = nopPublisher{}
	}
	if clock == nil {
		clock = time.Now
	}
	return &UserService{repo: repo, events: events, clock: clock, logger: logger}
}

// ListUsers returns all users, newest first, with their booking counts.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.ListWithBookingCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// DeleteUser removes a user and every parcel booked by it.
func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	res, err := s.repo.DeleteCascade(ctx, userID)
	if err != nil {
		return fmt.Errorf("delete user %s: %w", userID, err)
	}

	s.logger.Info().
		Str("user_id", userID).
		Int64("parcels_removed", res.ParcelsRemoved).
		Msg("user deleted")

	s.events.Publish(domain.NewAdminEvent(domain.EventUserDeleted, userID, s.clock(), map[string]string{
		"parcels_removed": strconv.FormatInt(res.ParcelsRemoved, 10),
	}))
	return nil
}
