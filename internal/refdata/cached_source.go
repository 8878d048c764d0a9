package refdata

import "sync"

type catalogSnapshot struct {
	entities []Entity
	byID     map[string]*Entity
}

// CachedSource is a read-through cache over another Source. A catalog is
// loaded as a whole on first access and replaced as a whole on refresh, so
// readers never observe a half-updated catalog. Invalidation is explicit;
// nothing expires on its own.
type CachedSource struct {
	mu       sync.RWMutex
	upstream Source
	catalogs map[Catalog]*catalogSnapshot
}

// NewCachedSource wraps upstream with a read-through, explicitly-invalidated cache.
func NewCachedSource(upstream Source) *CachedSource {
	return &CachedSource{
		upstream: upstream,
		catalogs: make(map[Catalog]*catalogSnapshot),
	}
}

func (c *CachedSource) Lookup(catalog Catalog, id string) (*Entity, bool) {
	entity, ok := c.snapshot(catalog).byID[id]
	return entity, ok
}

func (c *CachedSource) List(catalog Catalog) []Entity {
	return c.snapshot(catalog).entities
}

// Invalidate drops every cached catalog; the next access reloads from upstream.
func (c *CachedSource) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.catalogs = make(map[Catalog]*catalogSnapshot)
}

func (c *CachedSource) snapshot(catalog Catalog) *catalogSnapshot {
	c.mu.RLock()
	snapshot, ok := c.catalogs[catalog]
	c.mu.RUnlock()
	if ok {
		return snapshot
	}

	entities := c.upstream.List(catalog)
	byID := make(map[string]*Entity, len(entities))
	for i := range entities {
		byID[entities[i].ID] = &entities[i]
	}
	snapshot = &catalogSnapshot{entities: entities, byID: byID}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Another reader may have loaded the catalog meanwhile; keep theirs.
	if existing, ok := c.catalogs[catalog]; ok {
		return existing
	}
	c.catalogs[catalog] = snapshot
	return snapshot
}
