package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"platform-stats/internal/events"
	"platform-stats/internal/recorders"
	"platform-stats/internal/shared/loggers"
	"platform-stats/internal/shared/metrics"
	"platform-stats/internal/shared/svcerrors"
	"platform-stats/internal/shared/ulid"
)

//go:generate mockgen -source=stat_event_consumer.go -destination=./mocks/stat_event_consumer_mock.go -package=mocks
type StatEventConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type statEventConsumer struct {
	queue            *PartitionedQueue[events.StatEvent]
	recordingService recorders.RecordingService

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewStatEventConsumer(queue *PartitionedQueue[events.StatEvent], recordingService recorders.RecordingService, logger loggers.Logger) StatEventConsumer {
	return &statEventConsumer{
		queue:            queue,
		recordingService: recordingService,
		stopCh:           make(chan struct{}),
		logger:           logger,
	}
}

// Start spawns 1 worker goroutine per partition.
// Each partition is a single-writer lane for the entity ids routed by the producer.
func (consumer *statEventConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		partitionIndex := partitionIndex
		ch := consumer.queue.partitions[partitionIndex]
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()

			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

// Stop waits for workers to stop (best called during app shutdown).
func (consumer *statEventConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *statEventConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan events.StatEvent) {

	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			consumer.consumeOne(ctx, partitionIndex, event)
		}
	}
}

func (consumer *statEventConsumer) consumeOne(ctx context.Context, partitionIndex int, event events.StatEvent) {
	// Recover so a single poisoned event cannot take the partition worker down.
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("consumer panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}

			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricStatEventConsumedTotal.WithLabelValues(streamStatEvents, svcErr.Code).Inc()
		}
	}()

	ctx = consumer.logger.With().
		Str(loggers.FieldPartitionId, fmt.Sprintf("%d", partitionIndex)).
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Logger().WithContext(ctx)

	_, err := consumer.recordingService.RecordEvent(ctx, event)
	if err != nil {
		if svcErr, ok := svcerrors.As(err); ok {
			metricStatEventConsumedTotal.WithLabelValues(streamStatEvents, svcErr.Code).Inc()
		} else {
			metricStatEventConsumedTotal.WithLabelValues(streamStatEvents, "unknown").Inc()
		}
		loggers.Ctx(ctx).Warn().
			Err(err).
			Str(loggers.FieldEventType, string(event.Type)).
			Msg("event dropped after recording failure")
		return
	}
	metricStatEventConsumedTotal.WithLabelValues(streamStatEvents, metrics.ValueNoError).Inc()
}
