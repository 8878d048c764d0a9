package streams

import (
	"context"

	"platform-stats/internal/events"
)

// StatEventProducer publishes statistic events onto a partitioned queue.
//
// Partition strategy: the partition key is the event's primary entity id
// (governorate, party, or "global"). Events for the same entity land on the
// same partition and are consumed by a single worker, so per-entity ordering
// is preserved without any locking while unrelated entities proceed in
// parallel. Counter increments are atomic either way; the ordering matters
// only for log readability and bounded reordering of reads-after-writes.
//
//go:generate mockgen -source=stat_event_producer.go -destination=./mocks/stat_event_producer_mock.go -package=mocks
type StatEventProducer interface {
	// Produce enqueues one event. Blocks only when the partition buffer is full.
	Produce(ctx context.Context, event events.StatEvent) error
	// ProduceBatch enqueues a batch and returns how many events were accepted.
	ProduceBatch(ctx context.Context, batch []events.StatEvent) (int, error)
}

type statEventProducer struct {
	queue *PartitionedQueue[events.StatEvent]
}

func NewStatEventProducer(queue *PartitionedQueue[events.StatEvent]) StatEventProducer {
	return &statEventProducer{
		queue: queue,
	}
}

func (producer *statEventProducer) Produce(ctx context.Context, event events.StatEvent) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	producer.queue.Publish(event.PartitionKey(), event)
	metricStatEventProducedTotal.WithLabelValues(streamStatEvents).Inc()
	return nil
}

func (producer *statEventProducer) ProduceBatch(ctx context.Context, batch []events.StatEvent) (int, error) {
	for i, event := range batch {
		if err := producer.Produce(ctx, event); err != nil {
			return i, err
		}
	}
	return len(batch), nil
}
