package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategoryFromString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		expected  Category
		expectErr bool
	}{
		{name: "platform", input: "platform", expected: CategoryPlatform},
		{name: "region", input: "region", expected: CategoryRegion},
		{name: "party", input: "party", expected: CategoryParty},
		{name: "unknown", input: "continent", expectErr: true},
		{name: "empty", input: "", expectErr: true},
		{name: "case sensitive", input: "Region", expectErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			category, err := NewCategoryFromString(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, category)
		})
	}
}

func TestCategory_Dimensional(t *testing.T) {
	t.Parallel()

	assert.False(t, CategoryPlatform.Dimensional())
	assert.True(t, CategoryRegion.Dimensional())
	assert.True(t, CategoryParty.Dimensional())
}

func TestCategory_HasMetric(t *testing.T) {
	t.Parallel()

	assert.True(t, CategoryRegion.HasMetric(MetricComplaintsTotal))
	assert.True(t, CategoryParty.HasMetric(MetricRatingCount))
	// region has no rating counters, party has no message counters
	assert.False(t, CategoryRegion.HasMetric(MetricRatingSum))
	assert.False(t, CategoryParty.HasMetric(MetricMessagesTotal))
	assert.False(t, CategoryPlatform.HasMetric("not_a_metric"))
}

func TestRatingCategory_Thresholds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		average  float64
		expected string
	}{
		{name: "excellent at threshold", average: 4.5, expected: "excellent"},
		{name: "excellent above threshold", average: 5.0, expected: "excellent"},
		{name: "good just below excellent", average: 4.49, expected: "good"},
		{name: "good at threshold", average: 3.5, expected: "good"},
		{name: "average at threshold", average: 2.5, expected: "average"},
		{name: "poor below average", average: 2.49, expected: "poor"},
		{name: "poor at zero", average: 0, expected: "poor"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, RatingCategory(tt.average))
		})
	}
}
