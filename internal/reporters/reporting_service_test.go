package reporters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"platform-stats/internal/models"
	"platform-stats/internal/refdata"
	"platform-stats/internal/shared/svcerrors"
	"platform-stats/internal/stores"
	storemocks "platform-stats/internal/stores/mocks"
)

func newTestReporting(t *testing.T) (ReportingService, stores.CounterStore) {
	t.Helper()
	store := stores.NewMemoryCounterStore()
	return NewReportingService(store, refdata.NewStaticSource()), store
}

func seed(t *testing.T, store stores.CounterStore, counters map[string]int64) {
	t.Helper()
	for key, value := range counters {
		_, err := store.Increment(context.Background(), key, value)
		require.NoError(t, err)
	}
}

func TestGetPlatformSummary_DerivedMetrics(t *testing.T) {
	t.Parallel()
	svc, store := newTestReporting(t)
	seed(t, store, map[string]int64{
		"platform:global:users_total":         200,
		"platform:global:users_citizen":       150,
		"platform:global:messages_total":      300,
		"platform:global:complaints_total":    100,
		"platform:global:complaints_resolved": 42,
		"platform:global:ratings_total":       100,
	})

	summary, err := svc.GetPlatformSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(200), summary.TotalUsers)
	assert.Equal(t, int64(150), summary.TotalCitizens)
	assert.Equal(t, int64(58), summary.PendingComplaints)
	// Exact fraction, not a rounded percentage.
	assert.Equal(t, 0.42, summary.ResolutionRate)
	assert.Equal(t, 2.0, summary.EngagementScore)
}

func TestGetPlatformSummary_EmptyStore(t *testing.T) {
	t.Parallel()
	svc, _ := newTestReporting(t)

	summary, err := svc.GetPlatformSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), summary.TotalUsers)
	assert.Equal(t, 0.0, summary.ResolutionRate)
	assert.Equal(t, 0.0, summary.EngagementScore)
	assert.Equal(t, int64(0), summary.PendingComplaints)
}

func TestGetPlatformSummary_ClampsNegativePending(t *testing.T) {
	t.Parallel()
	svc, store := newTestReporting(t)
	seed(t, store, map[string]int64{
		"platform:global:complaints_total":    5,
		"platform:global:complaints_resolved": 9,
	})

	summary, err := svc.GetPlatformSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.PendingComplaints)
}

func TestGetDimensionalReport_Region(t *testing.T) {
	t.Parallel()
	svc, store := newTestReporting(t)
	seed(t, store, map[string]int64{
		"region:CAI:users_total":         100,
		"region:CAI:complaints_total":    50,
		"region:CAI:complaints_resolved": 25,
		"region:CAI:messages_total":      150,
	})

	report, err := svc.GetDimensionalReport(context.Background(), models.CategoryRegion, []string{"CAI"})
	require.NoError(t, err)
	require.Len(t, report.Entities, 1)

	row := report.Entities[0]
	assert.Equal(t, "CAI", row.EntityID)
	assert.Equal(t, "Cairo", row.DisplayName)
	assert.Equal(t, int64(100), row.Counters[models.MetricUsersTotal])
	assert.Equal(t, 0.5, row.Calculated[models.CalcResolutionRate])
	assert.Equal(t, 25.0, row.Calculated[models.CalcPendingComplaints])
	assert.Equal(t, 0.5, row.Calculated[models.CalcComplaintsPerUser])
	assert.Equal(t, 2.0, row.Calculated[models.CalcActivityScore])
}

func TestGetDimensionalReport_EnumeratesCatalogAndStore(t *testing.T) {
	t.Parallel()
	svc, store := newTestReporting(t)
	// One novel governorate with counters but no catalog record.
	seed(t, store, map[string]int64{"region:ZZ:users_total": 7})

	report, err := svc.GetDimensionalReport(context.Background(), models.CategoryRegion, nil)
	require.NoError(t, err)

	// 27 catalog governorates plus the novel ZZ.
	assert.Len(t, report.Entities, 28)

	var novel *models.EntityReport
	for _, row := range report.Entities {
		if row.EntityID == "ZZ" {
			novel = row
		}
	}
	require.NotNil(t, novel, "unreferenced entity must not be dropped")
	assert.Equal(t, "Unknown (ZZ)", novel.DisplayName)
	assert.Equal(t, int64(7), novel.Counters[models.MetricUsersTotal])
}

func TestGetDimensionalReport_PartyRatingCategory(t *testing.T) {
	t.Parallel()
	svc, store := newTestReporting(t)
	seed(t, store, map[string]int64{
		"party:wafd:rating_sum":       45,
		"party:wafd:rating_count":     10,
		"party:wafd:candidates_total": 3,
		"party:wafd:members_total":    2,
		"party:nour:rating_sum":       10,
		"party:nour:rating_count":     5,
	})

	report, err := svc.GetDimensionalReport(context.Background(), models.CategoryParty, []string{"wafd", "nour"})
	require.NoError(t, err)
	require.Len(t, report.Entities, 2)

	byID := map[string]*models.EntityReport{}
	for _, row := range report.Entities {
		byID[row.EntityID] = row
	}

	assert.Equal(t, 4.5, byID["wafd"].Calculated[models.CalcAverageRating])
	assert.Equal(t, "excellent", byID["wafd"].RatingCategory)
	assert.Equal(t, 5.0, byID["wafd"].Calculated[models.CalcTotalRepresentation])

	assert.Equal(t, 2.0, byID["nour"].Calculated[models.CalcAverageRating])
	assert.Equal(t, "poor", byID["nour"].RatingCategory)
}

func TestGetDimensionalReport_UnratedPartyHasNoCategory(t *testing.T) {
	t.Parallel()
	svc, store := newTestReporting(t)
	seed(t, store, map[string]int64{"party:wafd:candidates_total": 1})

	report, err := svc.GetDimensionalReport(context.Background(), models.CategoryParty, []string{"wafd"})
	require.NoError(t, err)
	assert.Empty(t, report.Entities[0].RatingCategory)
	assert.Equal(t, 0.0, report.Entities[0].Calculated[models.CalcAverageRating])
}

func TestGetDimensionalReport_PlatformRejected(t *testing.T) {
	t.Parallel()
	svc, _ := newTestReporting(t)

	_, err := svc.GetDimensionalReport(context.Background(), models.CategoryPlatform, nil)
	svcErr, ok := svcerrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "RPT_1000", svcErr.Code)
}

func TestGetEntityReport_ReadAfterWrite(t *testing.T) {
	t.Parallel()
	svc, store := newTestReporting(t)

	_, err := store.Increment(context.Background(), "region:GIZ:messages_total", 3)
	require.NoError(t, err)

	row, err := svc.GetEntityReport(context.Background(), models.CategoryRegion, "GIZ")
	require.NoError(t, err)
	assert.Equal(t, int64(3), row.Counters[models.MetricMessagesTotal])
	assert.Equal(t, "Giza", row.DisplayName)
}

func TestGetRanking_LexicalTieBreak(t *testing.T) {
	t.Parallel()
	svc, store := newTestReporting(t)
	seed(t, store, map[string]int64{
		"region:ALX:users_total": 5,
		"region:CAI:users_total": 5,
		"region:GIZ:users_total": 3,
	})

	entries, err := svc.GetRanking(context.Background(), models.CategoryRegion, models.MetricUsersTotal, 3, models.OrderDescending)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Ties resolve lexically by entity id, so repeated calls are stable.
	assert.Equal(t, "ALX", entries[0].EntityID)
	assert.Equal(t, "CAI", entries[1].EntityID)
	assert.Equal(t, "GIZ", entries[2].EntityID)
	assert.Equal(t, int64(5), entries[0].Value)
}

func TestGetRanking_Ascending(t *testing.T) {
	t.Parallel()
	svc, store := newTestReporting(t)
	seed(t, store, map[string]int64{
		"party:wafd:members_total": 10,
		"party:nour:members_total": 2,
	})

	entries, err := svc.GetRanking(context.Background(), models.CategoryParty, models.MetricMembersTotal, 2, models.OrderAscending)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(entries), 2)
	assert.LessOrEqual(t, entries[0].Value, entries[1].Value)
}

func TestGetRanking_TruncatesToTopN(t *testing.T) {
	t.Parallel()
	svc, store := newTestReporting(t)
	seed(t, store, map[string]int64{
		"region:CAI:users_total": 9,
		"region:GIZ:users_total": 8,
		"region:ALX:users_total": 7,
	})

	entries, err := svc.GetRanking(context.Background(), models.CategoryRegion, models.MetricUsersTotal, 2, models.OrderDescending)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "CAI", entries[0].EntityID)
	assert.Equal(t, "GIZ", entries[1].EntityID)
}

func TestGetRanking_InvalidMetric(t *testing.T) {
	t.Parallel()
	svc, _ := newTestReporting(t)

	_, err := svc.GetRanking(context.Background(), models.CategoryRegion, "rating_sum", 5, models.OrderDescending)
	svcErr, ok := svcerrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "RPT_1001", svcErr.Code)
	assert.Equal(t, 400, svcErr.HttpStatusCode)
}

func TestGetRanking_StoreUnavailable(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	mockStore := storemocks.NewMockCounterStore(ctrl)
	mockStore.EXPECT().
		Scan(gomock.Any(), gomock.Any()).
		Return(nil, stores.ErrStoreUnavailable)

	svc := NewReportingService(mockStore, refdata.NewStaticSource())
	_, err := svc.GetRanking(context.Background(), models.CategoryRegion, models.MetricUsersTotal, 5, models.OrderDescending)

	svcErr, ok := svcerrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "RPT_9000", svcErr.Code)
	assert.True(t, svcErr.IsUnavailableError())
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	category, err := ParseCategory("region")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryRegion, category)

	_, err = ParseCategory("galaxy")
	svcErr, ok := svcerrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "RPT_1003", svcErr.Code)
}

func TestParseOrder(t *testing.T) {
	t.Parallel()

	order, err := ParseOrder("")
	require.NoError(t, err)
	assert.Equal(t, models.OrderDescending, order)

	_, err = ParseOrder("sideways")
	svcErr, ok := svcerrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "RPT_1002", svcErr.Code)
}
