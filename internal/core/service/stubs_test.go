package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/parcelease/admin-dashboard/internal/core/domain"
	"github.com/parcelease/admin-dashboard/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory store shared by the stub repositories
// ---------------------------------------------------------------------------

type memStore struct {
	users    map[string]domain.User
	parcels  map[string]domain.Booking
	tickets  map[int64]domain.SupportTicket
	payments map[int64]domain.Payment
	nextID   int64
	err      error // if set, every call returns this error
	mutated  int   // number of write statements applied
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[string]domain.User),
		parcels:  make(map[string]domain.Booking),
		tickets:  make(map[int64]domain.SupportTicket),
		payments: make(map[int64]domain.Payment),
	}
}

type stubUserRepo struct{ *memStore }

func (r stubUserRepo) ListWithBookingCounts(_ context.Context) ([]domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		for _, p := range r.parcels {
			if p.UserID == u.ID {
				u.BookingsCount++
			}
		}
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// DeleteCascade mirrors the transactional delete: nothing changes when the user is missing.
func (r stubUserRepo) DeleteCascade(_ context.Context, userID string) (*domain.UserDeletion, error) {
	if r.err != nil {
		return nil, r.err
	}
	if _, ok := r.users[userID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	var removed int64
	for id, p := range r.parcels {
		if p.UserID == userID {
			delete(r.parcels, id)
			removed++
		}
	}
	delete(r.users, userID)
	r.mutated += 2
	return &domain.UserDeletion{UserID: userID, ParcelsRemoved: removed}, nil
}

type stubBookingRepo struct {
	*memStore
	lastFilter domain.BookingFilter
}

func (r *stubBookingRepo) List(_ context.Context, f domain.BookingFilter) ([]domain.Booking, error) {
	r.lastFilter = f
	if r.err != nil {
		return nil, r.err
	}
	var out []domain.Booking
	for _, b := range r.parcels {
		if f.Status != "" && string(domain.ParseStatus(string(b.Status))) != f.Status {
			continue
		}
		if f.Search != "" {
			q := strings.ToLower(f.Search)
			hay := strings.ToLower(b.ID + " " + b.UserID + " " + b.PickupLocation + " " + b.DropLocation)
			if !strings.Contains(hay, q) {
				continue
			}
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *stubBookingRepo) FindByID(_ context.Context, id string) (*domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	b, ok := r.parcels[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return &b, nil
}

type stubTicketRepo struct{ *memStore }

func (r stubTicketRepo) List(_ context.Context) ([]domain.SupportTicket, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]domain.SupportTicket, 0, len(r.tickets))
	for _, t := range r.tickets {
		out = append(out, t)
	}
	return out, nil
}

func (r stubTicketRepo) Delete(_ context.Context, id int64) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.tickets[id]; !ok {
		return domain.ErrTicketNotFound
	}
	delete(r.tickets, id)
	r.mutated++
	return nil
}

type stubPaymentRepo struct {
	*memStore
	creates int
}

func (r *stubPaymentRepo) List(_ context.Context) ([]domain.Payment, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]domain.Payment, 0, len(r.payments))
	for _, p := range r.payments {
		out = append(out, p)
	}
	return out, nil
}

func (r *stubPaymentRepo) FindByID(_ context.Context, id int64) (*domain.Payment, error) {
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.payments[id]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	return &p, nil
}

func (r *stubPaymentRepo) Create(_ context.Context, p ports.CreatePaymentParams) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.creates++
	r.nextID++
	r.payments[r.nextID] = domain.Payment{
		ID:            r.nextID,
		UserID:        p.UserID,
		ParcelID:      p.ParcelID,
		Amount:        p.Amount,
		PaymentMethod: p.PaymentMethod,
		PaymentStatus: p.PaymentStatus,
		TransactionID: p.TransactionID,
	}
	return r.nextID, nil
}

// ---------------------------------------------------------------------------
// Infrastructure stubs
// ---------------------------------------------------------------------------

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.AdminEvent
}

func (p *recordingPublisher) Publish(e domain.AdminEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

const stubPending int64 = -1

type stubIdempotency struct {
	mu       sync.Mutex
	keys     map[string]int64 // stubPending while claimed
	claimErr error
	ttl      time.Duration
	released []string
}

func newStubIdempotency() *stubIdempotency {
	return &stubIdempotency{keys: make(map[string]int64)}
}

func (s *stubIdempotency) Claim(_ context.Context, key string, ttl time.Duration) (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.claimErr != nil {
		return 0, false, s.claimErr
	}
	id, ok := s.keys[key]
	switch {
	case !ok:
		s.keys[key] = stubPending
		s.ttl = ttl
		return 0, true, nil
	case id == stubPending:
		return 0, false, domain.ErrPaymentInProgress
	default:
		return id, false, nil
	}
}

func (s *stubIdempotency) Complete(_ context.Context, key string, id int64, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[key] = id
	s.ttl = ttl
	return nil
}

func (s *stubIdempotency) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.keys, key)
	s.released = append(s.released, key)
	return nil
}

// gatedPaymentRepo blocks Create until release is closed.
type gatedPaymentRepo struct {
	*stubPaymentRepo
	entered chan struct{}
	release chan struct{}
}

func (r *gatedPaymentRepo) Create(ctx context.Context, p ports.CreatePaymentParams) (int64, error) {
	close(r.entered)
	<-r.release
	return r.stubPaymentRepo.Create(ctx, p)
}

func fixedClock(t time.Time) ports.Clock {
	return func() time.Time { return t }
}

type dailyCall struct{ from, to time.Time }

type stubDashboardRepo struct {
	daily       map[string][]domain.DailyRevenue // keyed by from-date "2006-01-02"
	dailyCalls  []dailyCall
	dailyErr    error
	bookings    int64
	revenue     decimal.Decimal
	inTransit   int64
	openTickets int64
	failOn      string // name of the KPI query that fails
	lastSince   time.Time
	lastStatus  domain.BookingStatus
}

func (r *stubDashboardRepo) DailyRevenue(_ context.Context, from, to time.Time) ([]domain.DailyRevenue, error) {
	r.dailyCalls = append(r.dailyCalls, dailyCall{from: from, to: to})
	if r.dailyErr != nil {
		return nil, r.dailyErr
	}
	return r.daily[from.Format("2006-01-02")], nil
}

func (r *stubDashboardRepo) CountBookingsSince(_ context.Context, since time.Time) (int64, error) {
	r.lastSince = since
	if r.failOn == "bookings" {
		return 0, errDB
	}
	return r.bookings, nil
}

func (r *stubDashboardRepo) SumRevenueSince(_ context.Context, _ time.Time) (decimal.Decimal, error) {
	if r.failOn == "revenue" {
		return decimal.Zero, errDB
	}
	return r.revenue, nil
}

func (r *stubDashboardRepo) CountBookingsByStatus(_ context.Context, status domain.BookingStatus) (int64, error) {
	r.lastStatus = status
	if r.failOn == "deliveries" {
		return 0, errDB
	}
	return r.inTransit, nil
}

func (r *stubDashboardRepo) CountOpenTickets(_ context.Context) (int64, error) {
	if r.failOn == "tickets" {
		return 0, errDB
	}
	return r.openTickets, nil
}
