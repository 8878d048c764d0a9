package reporters

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"platform-stats/internal/models"
	"platform-stats/internal/refdata"
	"platform-stats/internal/shared/loggers"
	"platform-stats/internal/shared/metrics"
	"platform-stats/internal/shared/svcerrors"
	"platform-stats/internal/stores"
)

//go:generate mockgen -source=reporting_service.go -destination=./mocks/reporting_service_mock.go -package=mocks
type ReportingService interface {
	// GetPlatformSummary builds the platform-wide report from the global counters.
	GetPlatformSummary(ctx context.Context) (*models.PlatformSummary, error)
	// GetDimensionalReport builds one report row per entity of a dimensional
	// category. A nil entityIDs enumerates the store; a non-nil slice restricts
	// the report to those entities.
	GetDimensionalReport(ctx context.Context, category models.Category, entityIDs []string) (*models.Report, error)
	// GetEntityReport builds the report row of a single entity.
	GetEntityReport(ctx context.Context, category models.Category, entityID string) (*models.EntityReport, error)
	// GetRanking orders a category's entities by one raw metric. topN <= 0 means
	// no truncation.
	GetRanking(ctx context.Context, category models.Category, metric string, topN int, order models.Order) ([]models.RankingEntry, error)
}

type reportingService struct {
	counterStore    stores.CounterStore
	referenceSource refdata.Source
}

func NewReportingService(counterStore stores.CounterStore, referenceSource refdata.Source) ReportingService {
	return &reportingService{
		counterStore:    counterStore,
		referenceSource: referenceSource,
	}
}

func (s *reportingService) GetPlatformSummary(ctx context.Context) (*models.PlatformSummary, error) {
	timer := time.Now()
	defer func() {
		metricReportBuildSeconds.WithLabelValues(reportTypePlatform).Observe(time.Since(timer).Seconds())
	}()

	counters, err := s.readEntityCounters(ctx, models.CategoryPlatform, models.EntityGlobal)
	if err != nil {
		svcErr, _ := svcerrors.As(err)
		metricReportBuiltTotal.WithLabelValues(reportTypePlatform, svcErr.Code).Inc()
		return nil, err
	}

	summary := &models.PlatformSummary{
		TotalUsers:         counters[models.MetricUsersTotal],
		TotalCitizens:      counters[models.MetricUsersCitizen],
		TotalCandidates:    counters[models.MetricUsersCandidate],
		TotalMembers:       counters[models.MetricUsersMember],
		TotalMessages:      counters[models.MetricMessagesTotal],
		TotalComplaints:    counters[models.MetricComplaintsTotal],
		ResolvedComplaints: counters[models.MetricComplaintsResolved],
		TotalRatings:       counters[models.MetricRatingsTotal],
	}
	summary.PendingComplaints = clampNonNegative(summary.TotalComplaints - summary.ResolvedComplaints)
	summary.ResolutionRate = ratio(summary.ResolvedComplaints, summary.TotalComplaints)
	summary.EngagementScore = ratio(summary.TotalMessages+summary.TotalRatings, summary.TotalUsers)

	metricReportBuiltTotal.WithLabelValues(reportTypePlatform, metrics.ValueNoError).Inc()
	return summary, nil
}

func (s *reportingService) GetDimensionalReport(ctx context.Context, category models.Category, entityIDs []string) (*models.Report, error) {
	timer := time.Now()
	defer func() {
		metricReportBuildSeconds.WithLabelValues(reportTypeDimensional).Observe(time.Since(timer).Seconds())
	}()

	logger := loggers.Ctx(ctx)
	logger.Debug().Str(loggers.FieldCategory, string(category)).Msg("started building dimensional report")

	if !category.Dimensional() {
		svcErr := errCategoryNotDimensional(string(category))
		metricReportBuiltTotal.WithLabelValues(reportTypeDimensional, svcErr.Code).Inc()
		return nil, svcErr
	}

	if entityIDs == nil {
		var err error
		entityIDs, err = s.enumerateEntities(ctx, category)
		if err != nil {
			svcErr, _ := svcerrors.As(err)
			metricReportBuiltTotal.WithLabelValues(reportTypeDimensional, svcErr.Code).Inc()
			return nil, err
		}
	}

	report := &models.Report{Category: category, Entities: make([]*models.EntityReport, 0, len(entityIDs))}
	for _, entityID := range entityIDs {
		row, err := s.buildEntityReport(ctx, category, entityID)
		if err != nil {
			svcErr, _ := svcerrors.As(err)
			metricReportBuiltTotal.WithLabelValues(reportTypeDimensional, svcErr.Code).Inc()
			return nil, err
		}
		report.Entities = append(report.Entities, row)
	}

	// Default order: category score descending, entity id as the tie-breaker so
	// equal scores always render in the same order.
	sort.SliceStable(report.Entities, func(i, j int) bool {
		left, right := report.Entities[i], report.Entities[j]
		leftScore, rightScore := defaultScore(category, left), defaultScore(category, right)
		if leftScore != rightScore {
			return leftScore > rightScore
		}
		return left.EntityID < right.EntityID
	})

	metricReportBuiltTotal.WithLabelValues(reportTypeDimensional, metrics.ValueNoError).Inc()
	return report, nil
}

func (s *reportingService) GetEntityReport(ctx context.Context, category models.Category, entityID string) (*models.EntityReport, error) {
	if !category.Dimensional() {
		svcErr := errCategoryNotDimensional(string(category))
		metricReportBuiltTotal.WithLabelValues(reportTypeEntity, svcErr.Code).Inc()
		return nil, svcErr
	}

	row, err := s.buildEntityReport(ctx, category, entityID)
	if err != nil {
		svcErr, _ := svcerrors.As(err)
		metricReportBuiltTotal.WithLabelValues(reportTypeEntity, svcErr.Code).Inc()
		return nil, err
	}

	metricReportBuiltTotal.WithLabelValues(reportTypeEntity, metrics.ValueNoError).Inc()
	return row, nil
}

func (s *reportingService) GetRanking(ctx context.Context, category models.Category, metric string, topN int, order models.Order) ([]models.RankingEntry, error) {
	timer := time.Now()
	defer func() {
		metricReportBuildSeconds.WithLabelValues(reportTypeRanking).Observe(time.Since(timer).Seconds())
	}()

	if !category.Dimensional() {
		svcErr := errCategoryNotDimensional(string(category))
		metricReportBuiltTotal.WithLabelValues(reportTypeRanking, svcErr.Code).Inc()
		return nil, svcErr
	}
	if !category.HasMetric(metric) {
		svcErr := errInvalidMetricRequest(string(category), metric)
		metricReportBuiltTotal.WithLabelValues(reportTypeRanking, svcErr.Code).Inc()
		return nil, svcErr
	}

	entityIDs, err := s.enumerateEntities(ctx, category)
	if err != nil {
		svcErr, _ := svcerrors.As(err)
		metricReportBuiltTotal.WithLabelValues(reportTypeRanking, svcErr.Code).Inc()
		return nil, err
	}

	keys := make([]string, 0, len(entityIDs))
	for _, entityID := range entityIDs {
		key, keyErr := models.NewCounterKey(category, entityID, metric)
		if keyErr != nil {
			continue
		}
		keys = append(keys, key.String())
	}

	values, err := s.counterStore.GetMany(ctx, keys)
	if err != nil {
		storeErr := s.asStoreError(err)
		metricReportBuiltTotal.WithLabelValues(reportTypeRanking, storeErr.Code).Inc()
		return nil, storeErr
	}

	entries := make([]models.RankingEntry, 0, len(entityIDs))
	for i, entityID := range entityIDs {
		entries = append(entries, models.RankingEntry{
			EntityID:    entityID,
			DisplayName: s.displayName(category, entityID),
			Value:       values[keys[i]],
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			if order == models.OrderAscending {
				return entries[i].Value < entries[j].Value
			}
			return entries[i].Value > entries[j].Value
		}
		return entries[i].EntityID < entries[j].EntityID
	})

	if topN > 0 && len(entries) > topN {
		entries = entries[:topN]
	}

	metricReportBuiltTotal.WithLabelValues(reportTypeRanking, metrics.ValueNoError).Inc()
	return entries, nil
}

// enumerateEntities unions the reference catalog with the entity ids present in
// the store, so seeded-but-silent entities and novel unreferenced entities both
// appear. The result is sorted by entity id.
func (s *reportingService) enumerateEntities(ctx context.Context, category models.Category) ([]string, error) {
	ids := map[string]struct{}{}

	if catalog, ok := refdata.CatalogForCategory(category); ok {
		for _, entity := range s.referenceSource.List(catalog) {
			ids[entity.ID] = struct{}{}
		}
	}

	keys, err := s.counterStore.Scan(ctx, models.CategoryPattern(category))
	if err != nil {
		return nil, s.asStoreError(err)
	}
	for _, raw := range keys {
		key, parseErr := models.ParseCounterKey(raw)
		if parseErr != nil {
			continue
		}
		ids[key.Entity] = struct{}{}
	}

	entityIDs := make([]string, 0, len(ids))
	for id := range ids {
		entityIDs = append(entityIDs, id)
	}
	sort.Strings(entityIDs)
	return entityIDs, nil
}

func (s *reportingService) buildEntityReport(ctx context.Context, category models.Category, entityID string) (*models.EntityReport, error) {
	counters, err := s.readEntityCounters(ctx, category, entityID)
	if err != nil {
		return nil, err
	}

	row := &models.EntityReport{
		EntityID: entityID,
		Counters: counters,
	}

	switch category {
	case models.CategoryRegion:
		row.Calculated = deriveRegionMetrics(counters)
	case models.CategoryParty:
		row.Calculated = derivePartyMetrics(counters)
		if counters[models.MetricRatingCount] > 0 {
			row.RatingCategory = models.RatingCategory(row.Calculated[models.CalcAverageRating])
		}
	default:
		row.Calculated = map[string]float64{}
	}

	s.attachReference(category, row)
	return row, nil
}

// readEntityCounters fetches the full metric set of one entity in a single
// multi-get. Absent keys read as zero.
func (s *reportingService) readEntityCounters(ctx context.Context, category models.Category, entityID string) (map[string]int64, error) {
	counterKeys := models.EntityKeys(category, entityID)
	keys := make([]string, 0, len(counterKeys))
	for _, key := range counterKeys {
		keys = append(keys, key.String())
	}

	values, err := s.counterStore.GetMany(ctx, keys)
	if err != nil {
		return nil, s.asStoreError(err)
	}

	counters := make(map[string]int64, len(counterKeys))
	for i, key := range counterKeys {
		counters[key.Metric] = values[keys[i]]
	}
	return counters, nil
}

// attachReference merges catalog metadata into a report row. An entity with no
// catalog record keeps a placeholder display name rather than being dropped.
func (s *reportingService) attachReference(category models.Category, row *models.EntityReport) {
	catalog, ok := refdata.CatalogForCategory(category)
	if !ok {
		row.DisplayName = row.EntityID
		return
	}
	entity, found := s.referenceSource.Lookup(catalog, row.EntityID)
	if !found {
		row.DisplayName = fmt.Sprintf("Unknown (%s)", row.EntityID)
		return
	}
	row.DisplayName = entity.Name
	if len(entity.Attributes) > 0 {
		row.Reference = entity.Attributes
	}
}

func (s *reportingService) displayName(category models.Category, entityID string) string {
	catalog, ok := refdata.CatalogForCategory(category)
	if !ok {
		return entityID
	}
	if entity, found := s.referenceSource.Lookup(catalog, entityID); found {
		return entity.Name
	}
	return fmt.Sprintf("Unknown (%s)", entityID)
}

func (s *reportingService) asStoreError(err error) *svcerrors.ServiceError {
	if errors.Is(err, stores.ErrStoreUnavailable) {
		return errStoreUnavailable(err)
	}
	return errInternalReadFault(err)
}

// ParseCategory parses a category name into a reporting-scoped ServiceError on
// failure, for use at the transport boundary.
func ParseCategory(s string) (models.Category, error) {
	category, err := models.NewCategoryFromString(s)
	if err != nil {
		return "", errUnknownCategory(err)
	}
	return category, nil
}

// ParseOrder parses a ranking order, defaulting to descending when empty.
func ParseOrder(s string) (models.Order, error) {
	order, err := models.NewOrderFromString(s)
	if err != nil {
		return "", errInvalidOrder(err)
	}
	return order, nil
}
