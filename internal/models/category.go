package models

import "fmt"

// Category is an axis of aggregation over which counters are organized.
// The set is closed: every counter key written by this service belongs to
// exactly one of these categories.
type Category string

const (
	// CategoryPlatform holds platform-wide counters under the single
	// entity EntityGlobal.
	CategoryPlatform Category = "platform"
	// CategoryRegion holds per-governorate counters keyed by governorate code.
	CategoryRegion Category = "region"
	// CategoryParty holds per-political-party counters keyed by party id.
	CategoryParty Category = "party"
)

// EntityGlobal is the entity id used for platform-wide counters.
const EntityGlobal = "global"

// NewCategoryFromString parses a category string into a Category.
func NewCategoryFromString(s string) (Category, error) {
	switch Category(s) {
	case CategoryPlatform, CategoryRegion, CategoryParty:
		return Category(s), nil
	default:
		return "", fmt.Errorf("unknown category: %q", s)
	}
}

// Dimensional reports whether the category holds one counter set per entity.
// CategoryPlatform has the single global entity and is not dimensional.
func (c Category) Dimensional() bool {
	return c == CategoryRegion || c == CategoryParty
}

// Metric names per category. Changing any of these is a breaking change to the
// persisted key namespace and requires a migration pass over existing keys.
const (
	MetricUsersTotal         = "users_total"
	MetricUsersCitizen       = "users_citizen"
	MetricUsersCandidate     = "users_candidate"
	MetricUsersMember        = "users_member"
	MetricMessagesTotal      = "messages_total"
	MetricComplaintsTotal    = "complaints_total"
	MetricComplaintsResolved = "complaints_resolved"
	MetricRatingsTotal       = "ratings_total"

	MetricCandidatesTotal = "candidates_total"
	MetricMembersTotal    = "members_total"
	MetricRatingSum       = "rating_sum"
	MetricRatingCount     = "rating_count"
)

var metricsByCategory = map[Category][]string{
	CategoryPlatform: {
		MetricUsersTotal, MetricUsersCitizen, MetricUsersCandidate, MetricUsersMember,
		MetricMessagesTotal, MetricComplaintsTotal, MetricComplaintsResolved, MetricRatingsTotal,
	},
	CategoryRegion: {
		MetricUsersTotal, MetricComplaintsTotal, MetricComplaintsResolved, MetricMessagesTotal,
	},
	CategoryParty: {
		MetricCandidatesTotal, MetricMembersTotal, MetricRatingSum, MetricRatingCount,
	},
}

// Metrics returns the closed metric set of the category.
// The returned slice must not be mutated.
func (c Category) Metrics() []string {
	return metricsByCategory[c]
}

// HasMetric reports whether metric belongs to the category's metric set.
func (c Category) HasMetric(metric string) bool {
	for _, m := range metricsByCategory[c] {
		if m == metric {
			return true
		}
	}
	return false
}
