package ports

import (
	"context"
	"time"

	"github.com/parcelease/admin-dashboard/internal/core/domain"
)

// IdempotencyStore remembers which payment id an Idempotency-Key produced.
// A key is claimed before the insert so concurrent requests cannot both write.
type IdempotencyStore interface {
	// Claim reserves key. When the key is already taken it returns claimed=false
	// and the stored id, or domain.ErrPaymentInProgress while the request that
	// holds it has not completed.
	Claim(ctx context.Context, key string, ttl time.Duration) (id int64, claimed bool, err error)
	// Complete stores the id inserted under a claimed key.
	Complete(ctx context.Context, key string, id int64, ttl time.Duration) error
	// Release frees a claimed key after a failed insert.
	Release(ctx context.Context, key string) error
}

// EventPublisher hands admin events to the async dispatcher.
type EventPublisher interface {
	Publish(event domain.AdminEvent)
}

// EventSink is a destination the dispatcher delivers admin events to.
type EventSink interface {
	Name() string
	Deliver(ctx context.Context, event domain.AdminEvent) error
}
