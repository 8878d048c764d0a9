package seeders

import (
	"context"
	"errors"

	"platform-stats/internal/models"
	"platform-stats/internal/shared/loggers"
	"platform-stats/internal/shared/metrics"
	"platform-stats/internal/shared/svcerrors"
	"platform-stats/internal/stores"
)

// defaultBaseline is the demo dataset written on an explicit seed request.
// Values only land on keys that do not exist yet, so a live deployment can be
// re-seeded without losing real counters.
var defaultBaseline = map[string]int64{
	models.MetricUsersTotal:         1500,
	models.MetricUsersCitizen:       1200,
	models.MetricUsersCandidate:     200,
	models.MetricUsersMember:        100,
	models.MetricMessagesTotal:      5000,
	models.MetricComplaintsTotal:    800,
	models.MetricComplaintsResolved: 600,
	models.MetricRatingsTotal:       2500,
}

// SeedResult reports the outcome of one seeding run.
type SeedResult struct {
	KeysWritten int
	KeysSkipped int
}

//go:generate mockgen -source=seeder.go -destination=./mocks/seeder_mock.go -package=mocks
type Seeder interface {
	// SeedDefaults writes the default baseline into every absent platform
	// counter. Existing counters are never overwritten.
	SeedDefaults(ctx context.Context) (*SeedResult, error)
}

type seeder struct {
	counterStore stores.CounterStore
}

func NewSeeder(counterStore stores.CounterStore) Seeder {
	return &seeder{counterStore: counterStore}
}

func (s *seeder) SeedDefaults(ctx context.Context) (*SeedResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Info().Msg("started seeding default baseline")

	result := &SeedResult{}
	for _, metric := range models.CategoryPlatform.Metrics() {
		value, ok := defaultBaseline[metric]
		if !ok {
			continue
		}
		key := models.PlatformKey(metric).String()
		written, err := s.counterStore.SetIfAbsent(ctx, key, value)
		if err != nil {
			var svcErr *svcerrors.ServiceError
			if errors.Is(err, stores.ErrStoreUnavailable) {
				svcErr = errStoreUnavailable(err)
			} else {
				svcErr = errInternalSeedFault(err)
			}
			metricSeedRunTotal.WithLabelValues(svcErr.Code).Inc()
			return nil, svcErr
		}
		if written {
			result.KeysWritten++
		} else {
			result.KeysSkipped++
		}
	}

	logger.Info().
		Int("keys_written", result.KeysWritten).
		Int("keys_skipped", result.KeysSkipped).
		Msg("finished seeding default baseline")
	metricSeedRunTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return result, nil
}
