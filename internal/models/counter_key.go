package models

import (
	"fmt"
	"strings"
)

// keySeparator joins the three key components. Entity ids and metric names must
// not contain it, otherwise distinct triples could collide on the same string.
const keySeparator = ":"

// CounterKey identifies one counter: a named quantity for one entity within
// one category. Its string form "category:entity:metric" is a persisted
// contract shared with anything that inspects the backing store directly.
type CounterKey struct {
	Category Category
	Entity   string
	Metric   string
}

// NewCounterKey builds a validated CounterKey.
func NewCounterKey(category Category, entity, metric string) (CounterKey, error) {
	if entity == "" {
		return CounterKey{}, fmt.Errorf("counter key entity is empty")
	}
	if metric == "" {
		return CounterKey{}, fmt.Errorf("counter key metric is empty")
	}
	if strings.Contains(entity, keySeparator) {
		return CounterKey{}, fmt.Errorf("counter key entity %q contains separator", entity)
	}
	if strings.Contains(metric, keySeparator) {
		return CounterKey{}, fmt.Errorf("counter key metric %q contains separator", metric)
	}
	return CounterKey{Category: category, Entity: entity, Metric: metric}, nil
}

// PlatformKey builds a platform-wide counter key for the global entity.
func PlatformKey(metric string) CounterKey {
	return CounterKey{Category: CategoryPlatform, Entity: EntityGlobal, Metric: metric}
}

// String renders the stable key form.
func (k CounterKey) String() string {
	return string(k.Category) + keySeparator + k.Entity + keySeparator + k.Metric
}

// ParseCounterKey parses a stored key string back into its three components.
func ParseCounterKey(s string) (CounterKey, error) {
	parts := strings.Split(s, keySeparator)
	if len(parts) != 3 {
		return CounterKey{}, fmt.Errorf("malformed counter key: %q", s)
	}
	category, err := NewCategoryFromString(parts[0])
	if err != nil {
		return CounterKey{}, fmt.Errorf("malformed counter key %q: %w", s, err)
	}
	return NewCounterKey(category, parts[1], parts[2])
}

// CategoryPattern returns a scan pattern matching every key under the category,
// e.g. "region:*:*". Used to enumerate entities without a separate catalog.
func CategoryPattern(category Category) string {
	return string(category) + keySeparator + "*" + keySeparator + "*"
}

// MetricPattern returns a scan pattern matching one metric across all entities
// of a category, e.g. "region:*:complaints_total".
func MetricPattern(category Category, metric string) string {
	return string(category) + keySeparator + "*" + keySeparator + metric
}

// EntityKeys returns the full metric key set of one entity within a category,
// in the category's canonical metric order.
func EntityKeys(category Category, entity string) []CounterKey {
	metrics := category.Metrics()
	keys := make([]CounterKey, 0, len(metrics))
	for _, metric := range metrics {
		keys = append(keys, CounterKey{Category: category, Entity: entity, Metric: metric})
	}
	return keys
}
