package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/parcelease/admin-dashboard/internal/core/domain"
)

const (
	keyPrefix = "idempotency:payment:"
	// pendingMarker is stored between Claim and Complete.
	pendingMarker = "pending"
)

// IdempotencyStore maps Idempotency-Key header values to the payment id they
// produced. Key format: idempotency:payment:<key>
// Value: "pending" while the insert runs, then the payment id.
type IdempotencyStore struct {
	client redis.Cmdable
}

// NewIdempotencyStore wraps the given Redis client.
func NewIdempotencyStore(client redis.Cmdable) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// Claim reserves key with SETNX. A key that expires between the SETNX and the
// GET is claimed again once.
func (s *IdempotencyStore) Claim(ctx context.Context, key string, ttl time.Duration) (int64, bool, error) {
	for attempt := 0; attempt < 2; attempt++ {
		ok, err := s.client.SetNX(ctx, keyPrefix+key, pendingMarker, ttl).Result()
		if err != nil {
			return 0, false, fmt.Errorf("idempotency claim: %w", err)
		}
		if ok {
			return 0, true, nil
		}

		raw, err := s.client.Get(ctx, keyPrefix+key).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return 0, false, fmt.Errorf("idempotency lookup: %w", err)
		}
		if raw == pendingMarker {
			return 0, false, domain.ErrPaymentInProgress
		}

		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return 0, false, fmt.Errorf("idempotency value %q: %w", raw, err)
		}
		return id, false, nil
	}
	return 0, false, domain.ErrPaymentInProgress
}

// Complete replaces the pending marker with the payment id.
func (s *IdempotencyStore) Complete(ctx context.Context, key string, id int64, ttl time.Duration) error {
	if err := s.client.Set(ctx, keyPrefix+key, strconv.FormatInt(id, 10), ttl).Err(); err != nil {
		return fmt.Errorf("idempotency complete: %w", err)
	}
	return nil
}

// Release drops the claim so the client can retry with the same key.
func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("idempotency release: %w", err)
	}
	return nil
}
