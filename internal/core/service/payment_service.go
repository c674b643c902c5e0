package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/parcelease/admin-dashboard/internal/core/domain"
	"github.com/parcelease/admin-dashboard/internal/core/ports"
)

const defaultIdempotencyTTL = 24 * time.Hour

type PaymentService struct {
	repo           ports.PaymentRepository
	idempotency    ports.IdempotencyStore
	idempotencyTTL time.Duration
	events         ports.EventPublisher
	clock          ports.Clock
	logger         zerolog.Logger
}

func NewPaymentService(
	repo ports.PaymentRepository,
	idempotency ports.IdempotencyStore,
	idempotencyTTL time.Duration,
	events ports.EventPublisher,
	clock ports.Clock,
	logger zerolog.Logger,
) *PaymentService {
	if idempotency == nil {
		idempotency = nopIdempotency{}
	}
	if idempotencyTTL <= 0 {
		idempotencyTTL = defaultIdempotencyTTL
	}
	if events == nil {
		events = nopPublisher{}
	}
	if clock == nil {
		clock = time.Now
	}
	return &PaymentService{
		repo:           repo,
		idempotency:    idempotency,
		idempotencyTTL: idempotencyTTL,
		events:         events,
		clock:          clock,
		logger:         logger,
	}
}

func (s *PaymentService) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	payments, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

// GetPayment fetches one payment. Non-numeric ids are reported as not found.
func (s *PaymentService) GetPayment(ctx context.Context, id string) (*domain.Payment, error) {
	paymentID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("get payment %q: %w", id, domain.ErrPaymentNotFound)
	}

	p, err := s.repo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("get payment %d: %w", paymentID, err)
	}
	return p, nil
}

// CreatePayment inserts a payment row. If an idempotency key is given it is
// claimed before the insert: a key that already produced a payment returns
// that id without side effects, and a key still being inserted by another
// request fails with domain.ErrPaymentInProgress.
func (s *PaymentService) CreatePayment(ctx context.Context, input ports.CreatePaymentInput) (*ports.PaymentResult, error) {
	key := input.IdempotencyKey
	claimed := false
	if key != "" {
		id, ok, err := s.idempotency.Claim(ctx, key, s.idempotencyTTL)
		switch {
		case errors.Is(err, domain.ErrPaymentInProgress):
			return nil, fmt.Errorf("create payment: %w", err)
		case err != nil:
			s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency claim failed, creating anyway")
		case !ok:
			s.logger.Info().Str("idempotency_key", key).Int64("payment_id", id).Msg("idempotent replay")
			return &ports.PaymentResult{ID: id, AlreadyExisted: true}, nil
		default:
			claimed = true
		}
	}

	id, err := s.repo.Create(ctx, ports.CreatePaymentParams{
		UserID:        input.UserID,
		ParcelID:      input.ParcelID,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		PaymentStatus: input.PaymentStatus,
		TransactionID: input.TransactionID,
	})
	if err != nil {
		if claimed {
			if rerr := s.idempotency.Release(ctx, key); rerr != nil {
				s.logger.Warn().Err(rerr).Str("idempotency_key", key).Msg("failed to release idempotency key")
			}
		}
		return nil, fmt.Errorf("create payment: %w", err)
	}

	if claimed {
		if err := s.idempotency.Complete(ctx, key, id, s.idempotencyTTL); err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("failed to store idempotency key")
		}
	}

	s.logger.Info().
		Int64("payment_id", id).
		Str("parcel_id", input.ParcelID).
		Str("method", input.PaymentMethod).
		Msg("payment created")

	s.events.Publish(domain.NewAdminEvent(domain.EventPaymentCreated, strconv.FormatInt(id, 10), s.clock(), map[string]string{
		"parcel_id": input.ParcelID,
		"amount":    input.Amount.String(),
		"method":    input.PaymentMethod,
	}))

	return &ports.PaymentResult{ID: id}, nil
}
