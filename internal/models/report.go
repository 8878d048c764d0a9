package models

import "fmt"

// Calculated metric names. These are derived from raw counters at read time and
// never written to the store.
const (
	CalcResolutionRate      = "resolution_rate"
	CalcPendingComplaints   = "pending_complaints"
	CalcEngagementScore     = "engagement_score"
	CalcComplaintsPerUser   = "complaints_per_user"
	CalcActivityScore       = "activity_score"
	CalcAverageRating       = "average_rating"
	CalcTotalRepresentation = "total_representation"
)

// PlatformSummary is the single-entity report over platform:global:* counters.
//
// Example JSON:
//
//	{
//	  "totalUsers": 1500,
//	  "totalCitizens": 1200,
//	  "totalCandidates": 200,
//	  "totalMembers": 100,
//	  "totalMessages": 5000,
//	  "totalComplaints": 800,
//	  "resolvedComplaints": 600,
//	  "pendingComplaints": 200,
//	  "totalRatings": 2500,
//	  "resolutionRate": 0.75,
//	  "engagementScore": 5.0
//	}
type PlatformSummary struct {
	TotalUsers         int64 `json:"totalUsers"`
	TotalCitizens      int64 `json:"totalCitizens"`
	TotalCandidates    int64 `json:"totalCandidates"`
	TotalMembers       int64 `json:"totalMembers"`
	TotalMessages      int64 `json:"totalMessages"`
	TotalComplaints    int64 `json:"totalComplaints"`
	ResolvedComplaints int64 `json:"resolvedComplaints"`
	TotalRatings       int64 `json:"totalRatings"`

	// Calculated on read, never stored.
	PendingComplaints int64   `json:"pendingComplaints"`
	ResolutionRate    float64 `json:"resolutionRate"`
	EngagementScore   float64 `json:"engagementScore"`
}

// EntityReport is one row of a dimensional report: the raw counters of one
// entity, its calculated metrics, and its reference metadata.
type EntityReport struct {
	EntityID    string            `json:"entityId"`
	DisplayName string            `json:"displayName"`
	Reference   map[string]string `json:"reference,omitempty"`
	Counters    map[string]int64  `json:"counters"`
	Calculated  map[string]float64 `json:"calculated"`
	// RatingCategory classifies a party's average rating. Empty outside
	// CategoryParty.
	RatingCategory string `json:"ratingCategory,omitempty"`
}

// Report is an ordered collection of entity reports. Transient: built once per
// request from the live counters, never persisted.
type Report struct {
	Category Category        `json:"category"`
	Entities []*EntityReport `json:"entities"`
}

// RankingEntry is one position of a comparative ranking over a single metric.
type RankingEntry struct {
	EntityID    string `json:"entityId"`
	DisplayName string `json:"displayName"`
	Value       int64  `json:"value"`
}

// Order directs ranking sort order.
type Order string

const (
	OrderDescending Order = "desc"
	OrderAscending  Order = "asc"
)

// NewOrderFromString parses an order string, defaulting to descending when empty.
func NewOrderFromString(s string) (Order, error) {
	switch s {
	case "":
		return OrderDescending, nil
	case string(OrderDescending), string(OrderAscending):
		return Order(s), nil
	default:
		return "", fmt.Errorf("unknown order: %q", s)
	}
}

// RatingCategory buckets an average rating into a display category.
func RatingCategory(average float64) string {
	switch {
	case average >= 4.5:
		return "excellent"
	case average >= 3.5:
		return "good"
	case average >= 2.5:
		return "average"
	default:
		return "poor"
	}
}
