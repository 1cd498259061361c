package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/palmbay-resort/portal-api/internal/api/metrics"
	"github.com/palmbay-resort/portal-api/internal/core/domain"
	"github.com/palmbay-resort/portal-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher delivers booking notifications on a fixed set of workers,
// sharded by guest email so notifications for the same guest stay ordered.
// Delivery failures are logged and counted, never propagated to the booking
// flow.
type Dispatcher struct {
	workers  []chan domain.Booking
	notifier ports.Notifier
	log      zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, notifier ports.Notifier, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan domain.Booking, numWorkers),
		notifier: notifier,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.Booking, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a booking to the worker responsible for its guest. The call
// is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(booking domain.Booking) {
	d.workers[d.shardIndex(booking.GuestEmail)] <- booking
}

// shardIndex maps a guest email deterministically to a worker index.
func (d *Dispatcher) shardIndex(guestEmail string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(guestEmail))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.Booking) {
	for {
		select {
		case <-ctx.Done():
			return
		case booking, ok := <-ch:
			if !ok {
				return
			}
			delivered, err := d.notifier.Send(ctx, &booking)
			switch {
			case err != nil:
				metrics.NotificationsTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Str("booking_id", booking.ID).
					Int("worker_id", id).
					Msg("notification delivery failed")
			case !delivered:
				metrics.NotificationsTotal.WithLabelValues("skipped").Inc()
			default:
				metrics.NotificationsTotal.WithLabelValues("delivered").Inc()
			}
		}
	}
}
