package reporters

import (
	"platform-stats/internal/models"
)

// ratio returns numerator/denominator as a plain fraction, 0 when the
// denominator is not positive. 42/100 yields 0.42.
func ratio(numerator, denominator int64) float64 {
	if denominator <= 0 {
		return 0
	}
	return float64(numerator) / float64(denominator)
}

// clampNonNegative floors a difference at zero. Raw counters may go negative
// after corrections; derived gauges where that is meaningless do not.
func clampNonNegative(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

// deriveRegionMetrics computes the calculated metrics of one region row.
func deriveRegionMetrics(counters map[string]int64) map[string]float64 {
	users := counters[models.MetricUsersTotal]
	complaints := counters[models.MetricComplaintsTotal]
	resolved := counters[models.MetricComplaintsResolved]
	messages := counters[models.MetricMessagesTotal]

	return map[string]float64{
		models.CalcResolutionRate:    ratio(resolved, complaints),
		models.CalcPendingComplaints: float64(clampNonNegative(complaints - resolved)),
		models.CalcComplaintsPerUser: ratio(complaints, users),
		models.CalcActivityScore:     ratio(messages+complaints, users),
	}
}

// derivePartyMetrics computes the calculated metrics of one party row.
func derivePartyMetrics(counters map[string]int64) map[string]float64 {
	return map[string]float64{
		models.CalcAverageRating:       ratio(counters[models.MetricRatingSum], counters[models.MetricRatingCount]),
		models.CalcTotalRepresentation: float64(counters[models.MetricCandidatesTotal] + counters[models.MetricMembersTotal]),
	}
}

// defaultScore is the value dimensional report rows are ordered by.
func defaultScore(category models.Category, report *models.EntityReport) float64 {
	switch category {
	case models.CategoryRegion:
		return report.Calculated[models.CalcActivityScore]
	case models.CategoryParty:
		return report.Calculated[models.CalcTotalRepresentation]
	default:
		return 0
	}
}
