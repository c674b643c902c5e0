package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/parcelease/admin-dashboard/internal/api/metrics"
	"github.com/parcelease/admin-dashboard/internal/core/domain"
	"github.com/parcelease/admin-dashboard/internal/core/ports"
)

const (
	defaultWorkers  = 4
	channelBuffer   = 256
	deliveryTimeout = 10 * time.Second
)

var ErrDispatcherStopped = errors.New("dispatcher stopped")

// Dispatcher fans admin events out to every sink using a fixed set of workers.
// Events are sharded by entity id, so events about the same entity are
// delivered in publish order. Sink failures are logged and never retried.
type Dispatcher struct {
	workers []chan domain.AdminEvent
	sinks   []ports.EventSink
	log     zerolog.Logger

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sinks []ports.EventSink, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AdminEvent, numWorkers),
		sinks:   sinks,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AdminEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Deliveries inherit ctx values but not
// its cancellation, so queued events are still drained by Shutdown.
func (d *Dispatcher) Start(ctx context.Context) {
	base := context.WithoutCancel(ctx)
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(base, i, ch)
	}
}

// Publish queues an event without blocking. When the owning worker is full or
// the dispatcher is stopped the event is dropped and logged.
func (d *Dispatcher) Publish(event domain.AdminEvent) {
	if err := d.enqueue(event); err != nil {
		metrics.EventsDroppedTotal.Inc()
		d.log.Warn().Err(err).
			Str("event_id", event.ID).
			Str("event_type", string(event.Type)).
			Str("entity_id", event.EntityID).
			Msg("admin event dropped")
	}
}

func (d *Dispatcher) enqueue(event domain.AdminEvent) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		return ErrDispatcherStopped
	}

	idx := d.shardIndex(event.EntityID)
	select {
	case d.workers[idx] <- event:
		metrics.EventsQueueDepth.WithLabelValues(strconv.Itoa(idx)).Inc()
		return nil
	default:
		return errors.New("worker queue full")
	}
}

// Shutdown stops accepting events and waits for queued ones to be delivered
// or for ctx to expire.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	if !d.stopped {
		d.stopped = true
		for _, ch := range d.workers {
			close(ch)
		}
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// shardIndex maps an entity id deterministically to a worker index.
func (d *Dispatcher) shardIndex(entityID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(entityID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AdminEvent) {
	defer d.wg.Done()

	depth := metrics.EventsQueueDepth.WithLabelValues(strconv.Itoa(id))
	for event := range ch {
		depth.Dec()
		for _, sink := range d.sinks {
			d.deliver(ctx, id, sink, event)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, workerID int, sink ports.EventSink, event domain.AdminEvent) {
	ctx, cancel := context.WithTimeout(ctx, deliveryTimeout)
	defer cancel()

	start := time.Now()
	err := sink.Deliver(ctx, event)
	metrics.EventDeliveryDuration.WithLabelValues(sink.Name()).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.EventsDeliveredTotal.WithLabelValues(sink.Name(), "error").Inc()
		d.log.Error().Err(err).
			Str("sink", sink.Name()).
			Str("event_id", event.ID).
			Str("event_type", string(event.Type)).
			Int("worker_id", workerID).
			Msg("admin event delivery failed")
		return
	}
	metrics.EventsDeliveredTotal.WithLabelValues(sink.Name(), "ok").Inc()
}
