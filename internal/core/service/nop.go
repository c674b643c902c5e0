package service

import (
	"context"
	"time"

	"github.com/parcelease/admin-dashboard/internal/core/domain"
)

// nopPublisher drops events; used when no dispatcher is configured.
type nopPublisher struct{}

func (nopPublisher) Publish(domain.AdminEvent) {}

// nopIdempotency grants every claim and remembers nothing; used when Redis is disabled.
type nopIdempotency struct{}

func (nopIdempotency) Claim(context.Context, string, time.Duration) (int64, bool, error) {
	return 0, true, nil
}

func (nopIdempotency) Complete(context.Context, string, int64, time.Duration) error { return nil }

func (nopIdempotency) Release(context.Context, string) error { return nil }
