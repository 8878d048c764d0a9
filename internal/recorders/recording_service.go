package recorders

import (
	"context"
	"errors"

	"platform-stats/internal/events"
	"platform-stats/internal/refdata"
	"platform-stats/internal/shared/loggers"
	"platform-stats/internal/shared/metrics"
	"platform-stats/internal/shared/svcerrors"
	"platform-stats/internal/stores"
)

// RecordResult reports how many counters a single event touched.
type RecordResult struct {
	CountersUpdated int
}

//go:generate mockgen -source=recording_service.go -destination=./mocks/recording_service_mock.go -package=mocks
type RecordingService interface {
	// RecordEvent routes one event through the routing table and applies every
	// resulting counter increment. All-or-nothing is not guaranteed across
	// multiple keys; each increment is individually atomic.
	RecordEvent(ctx context.Context, event events.StatEvent) (*RecordResult, error)
}

type recordingService struct {
	counterStore    stores.CounterStore
	referenceSource refdata.Source
}

func NewRecordingService(counterStore stores.CounterStore, referenceSource refdata.Source) RecordingService {
	return &recordingService{
		counterStore:    counterStore,
		referenceSource: referenceSource,
	}
}

func (s *recordingService) RecordEvent(ctx context.Context, event events.StatEvent) (*RecordResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Str(loggers.FieldEventType, string(event.Type)).Msg("started recording event")

	route, ok := routingTable[event.Type]
	if !ok {
		svcErr := errUnknownEventType(string(event.Type))
		metricEventRecordedTotal.WithLabelValues(string(event.Type), svcErr.Code).Inc()
		return nil, svcErr
	}

	deltas, svcErr := route(event)
	if svcErr != nil {
		metricEventRecordedTotal.WithLabelValues(string(event.Type), svcErr.Code).Inc()
		return nil, svcErr
	}

	s.noteUnknownEntities(ctx, event, deltas)

	for _, delta := range deltas {
		if _, err := s.counterStore.Increment(ctx, delta.Key.String(), delta.Delta); err != nil {
			var storeErr *svcerrors.ServiceError
			if errors.Is(err, stores.ErrStoreUnavailable) {
				storeErr = errStoreUnavailable(err)
			} else {
				storeErr = errInternalIncrementFault(err)
			}
			metricEventRecordedTotal.WithLabelValues(string(event.Type), storeErr.Code).Inc()
			return nil, storeErr
		}
	}

	metricEventRecordedTotal.WithLabelValues(string(event.Type), metrics.ValueNoError).Inc()
	return &RecordResult{CountersUpdated: len(deltas)}, nil
}

// noteUnknownEntities flags dimensional keys whose entity is absent from the
// reference catalog. Recording still proceeds; the reporting side renders a
// placeholder name for such entities.
func (s *recordingService) noteUnknownEntities(ctx context.Context, event events.StatEvent, deltas []CounterDelta) {
	logger := loggers.Ctx(ctx)
	seen := map[string]struct{}{}
	for _, delta := range deltas {
		if !delta.Key.Category.Dimensional() {
			continue
		}
		if _, dup := seen[delta.Key.Entity]; dup {
			continue
		}
		seen[delta.Key.Entity] = struct{}{}

		catalog, ok := refdata.CatalogForCategory(delta.Key.Category)
		if !ok {
			continue
		}
		if _, found := s.referenceSource.Lookup(catalog, delta.Key.Entity); !found {
			logger.Warn().
				Str(loggers.FieldEventType, string(event.Type)).
				Str(loggers.FieldCategory, string(delta.Key.Category)).
				Str(loggers.FieldEntityID, delta.Key.Entity).
				Msg("event references unknown entity")
			metricUnknownEntityTotal.WithLabelValues(string(event.Type)).Inc()
		}
	}
}
