package refdata

import (
	"testing"

	"platform-stats/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticSource_Lookup(t *testing.T) {
	t.Parallel()

	source := NewStaticSource()

	entity, ok := source.Lookup(CatalogGovernorates, "CAI")
	require.True(t, ok)
	assert.Equal(t, "Cairo", entity.Name)

	entity, ok = source.Lookup(CatalogParties, "wafd")
	require.True(t, ok)
	assert.Equal(t, "Al-Wafd Party", entity.Name)

	_, ok = source.Lookup(CatalogGovernorates, "ZZ")
	assert.False(t, ok)
}

func TestStaticSource_List(t *testing.T) {
	t.Parallel()

	source := NewStaticSource()

	assert.Len(t, source.List(CatalogGovernorates), 27)
	assert.Len(t, source.List(CatalogParties), 16)
	assert.Len(t, source.List(CatalogUserTypes), 4)
	assert.Len(t, source.List(CatalogCouncils), 2)
	assert.Len(t, source.List(CatalogComplaintCategories), 11)
	assert.Len(t, source.List(CatalogComplaintStatuses), 5)
}

func TestCatalogForCategory(t *testing.T) {
	t.Parallel()

	catalog, ok := CatalogForCategory(models.CategoryRegion)
	require.True(t, ok)
	assert.Equal(t, CatalogGovernorates, catalog)

	catalog, ok = CatalogForCategory(models.CategoryParty)
	require.True(t, ok)
	assert.Equal(t, CatalogParties, catalog)

	_, ok = CatalogForCategory(models.CategoryPlatform)
	assert.False(t, ok)
}

func TestNewCatalogFromString(t *testing.T) {
	t.Parallel()

	catalog, ok := NewCatalogFromString("governorates")
	require.True(t, ok)
	assert.Equal(t, CatalogGovernorates, catalog)

	_, ok = NewCatalogFromString("nonsense")
	assert.False(t, ok)
}

// fakeSource counts upstream reads so caching behavior is observable.
type fakeSource struct {
	listCalls int
	entities  []Entity
}

func (f *fakeSource) Lookup(_ Catalog, id string) (*Entity, bool) {
	for i := range f.entities {
		if f.entities[i].ID == id {
			return &f.entities[i], true
		}
	}
	return nil, false
}

func (f *fakeSource) List(_ Catalog) []Entity {
	f.listCalls++
	return f.entities
}

func TestCachedSource_ReadThrough(t *testing.T) {
	t.Parallel()

	upstream := &fakeSource{entities: []Entity{{ID: "CAI", Name: "Cairo"}}}
	cached := NewCachedSource(upstream)

	entity, ok := cached.Lookup(CatalogGovernorates, "CAI")
	require.True(t, ok)
	assert.Equal(t, "Cairo", entity.Name)

	// Repeat reads served from cache, single upstream load.
	_, _ = cached.Lookup(CatalogGovernorates, "CAI")
	_ = cached.List(CatalogGovernorates)
	assert.Equal(t, 1, upstream.listCalls)
}

func TestCachedSource_InvalidateReloads(t *testing.T) {
	t.Parallel()

	upstream := &fakeSource{entities: []Entity{{ID: "CAI", Name: "Cairo"}}}
	cached := NewCachedSource(upstream)

	_ = cached.List(CatalogGovernorates)
	require.Equal(t, 1, upstream.listCalls)

	// Upstream data changed; cache still serves the old snapshot.
	upstream.entities = []Entity{{ID: "CAI", Name: "Greater Cairo"}}
	entity, ok := cached.Lookup(CatalogGovernorates, "CAI")
	require.True(t, ok)
	assert.Equal(t, "Cairo", entity.Name)

	cached.Invalidate()

	entity, ok = cached.Lookup(CatalogGovernorates, "CAI")
	require.True(t, ok)
	assert.Equal(t, "Greater Cairo", entity.Name)
	assert.Equal(t, 2, upstream.listCalls)
}

func TestCachedSource_MissingEntity(t *testing.T) {
	t.Parallel()

	cached := NewCachedSource(NewStaticSource())

	_, ok := cached.Lookup(CatalogGovernorates, "ZZ")
	assert.False(t, ok)
}
