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

type TicketService struct {
	repo   ports.TicketRepository
	events ports.EventPublisher
	clock  ports.Clock
	logger zerolog.Logger
}

func NewTicketService(repo ports.TicketRepository, events ports.EventPublisher, clock ports.Clock, logger zerolog.Logger) *TicketService {
	if events == nil {
		events = nopPublisher{}
	}
	if clock == nil {
		clock = time.Now
	}
	return &TicketService{repo: repo, events: events, clock: clock, logger: logger}
}

func (s *TicketService) ListTickets(ctx context.Context) ([]domain.SupportTicket, error) {
	tickets, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, nil
}

// DeleteTicket removes one ticket. An id that is not a number cannot exist,
// so it is reported as not found.
func (s *TicketService) DeleteTicket(ctx context.Context, id string) error {
	ticketID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return fmt.Errorf("delete ticket %q: %w", id, domain.ErrTicketNotFound)
	}

	if err := s.repo.Delete(ctx, ticketID); err != nil {
		return fmt.Errorf("delete ticket %d: %w", ticketID, err)
	}

	s.logger.Info().Int64("ticket_id", ticketID).Msg("ticket deleted")
	s.events.Publish(domain.NewAdminEvent(domain.EventTicketDeleted, id, s.clock(), nil))
	return nil
}
