package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/parcelease/admin-dashboard/internal/core/domain"
	"github.com/parcelease/admin-dashboard/internal/core/ports"
)

const defaultKPIWindowDays = 30

// DashboardOptions tunes the dashboard aggregations.
type DashboardOptions struct {
	// KPIWindowDays is the trailing period for the bookings and revenue cards.
	KPIWindowDays int
	// AlignPriorWeek makes "Last Week" compare each label with the same
	// weekday one week earlier instead of reusing the current labels.
	AlignPriorWeek bool
	// Location is the time zone "today" is evaluated in. Defaults to UTC.
	Location *time.Location
	Changes  domain.KPIChanges
}

type DashboardService struct {
	repo   ports.DashboardRepository
	opts   DashboardOptions
	clock  ports.Clock
	logger zerolog.Logger
}

func NewDashboardService(repo ports.DashboardRepository, opts DashboardOptions, clock ports.Clock, logger zerolog.Logger) *DashboardService {
	if opts.KPIWindowDays <= 0 {
		opts.KPIWindowDays = defaultKPIWindowDays
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Changes == (domain.KPIChanges{}) {
		opts.Changes = domain.DefaultKPIChanges
	}
	if clock == nil {
		clock = time.Now
	}
	return &DashboardService{repo: repo, opts: opts, clock: clock, logger: logger}
}

func (s *DashboardService) today() time.Time {
	return s.clock().In(s.opts.Location)
}

// Revenue builds the week-over-week revenue chart anchored at today.
func (s *DashboardService) Revenue(ctx context.Context) (*domain.RevenueSeries, error) {
	ref := s.today()

	windows := domain.WeekOverWeekWindows(ref)
	if s.opts.AlignPriorWeek {
		windows = domain.TrailingWindows(ref)
	}

	current, err := s.repo.DailyRevenue(ctx, windows.Current.From, windows.Current.To)
	if err != nil {
		return nil, fmt.Errorf("%w: current window: %w", domain.ErrRevenueQueryFailed, err)
	}
	prior, err := s.repo.DailyRevenue(ctx, windows.Prior.From, windows.Prior.To)
	if err != nil {
		return nil, fmt.Errorf("%w: prior window: %w", domain.ErrRevenueQueryFailed, err)
	}

	s.logger.Debug().
		Time("reference", ref).
		Int("current_days", len(current)).
		Int("prior_days", len(prior)).
		Bool("aligned", s.opts.AlignPriorWeek).
		Msg("revenue aggregated")

	series := domain.AggregateRevenue(ref, current, prior, s.opts.AlignPriorWeek)
	return &series, nil
}

// KPIs computes the four dashboard cards. Any failing query fails the whole list.
func (s *DashboardService) KPIs(ctx context.Context) ([]domain.KPI, error) {
	since := s.today().AddDate(0, 0, -s.opts.KPIWindowDays)
	counts := domain.KPICounts{WindowDays: s.opts.KPIWindowDays}

	var err error
	if counts.TotalBookings, err = s.repo.CountBookingsSince(ctx, since); err != nil {
		return nil, fmt.Errorf("%w: total bookings: %w", domain.ErrKPIQueryFailed, err)
	}
	if counts.TotalRevenue, err = s.repo.SumRevenueSince(ctx, since); err != nil {
		return nil, fmt.Errorf("%w: revenue: %w", domain.ErrKPIQueryFailed, err)
	}
	if counts.ActiveDeliveries, err = s.repo.CountBookingsByStatus(ctx, domain.StatusInTransit); err != nil {
		return nil, fmt.Errorf("%w: active deliveries: %w", domain.ErrKPIQueryFailed, err)
	}
	if counts.OpenTickets, err = s.repo.CountOpenTickets(ctx); err != nil {
		return nil, fmt.Errorf("%w: open tickets: %w", domain.ErrKPIQueryFailed, err)
	}

	return domain.BuildKPIs(counts, s.opts.Changes), nil
}
