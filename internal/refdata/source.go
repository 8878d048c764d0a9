package refdata

import (
	"platform-stats/internal/models"
)

// Catalog names one reference-data collection. Counter categories map onto a
// subset of catalogs; the remaining catalogs are served to clients as-is.
type Catalog string

const (
	CatalogGovernorates        Catalog = "governorates"
	CatalogParties             Catalog = "parties"
	CatalogUserTypes           Catalog = "user_types"
	CatalogCouncils            Catalog = "councils"
	CatalogComplaintCategories Catalog = "complaint_categories"
	CatalogComplaintStatuses   Catalog = "complaint_statuses"
)

// Entity is one reference-data record: static descriptive metadata merged into
// reports. Owned by an external source; this service never mutates it.
type Entity struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// Source provides reference-data lookups.
type Source interface {
	// Lookup returns the entity with the given id, or false when the catalog
	// has no matching record.
	Lookup(catalog Catalog, id string) (*Entity, bool)
	// List returns every entity of the catalog in a stable order.
	List(catalog Catalog) []Entity
}

// NewCatalogFromString parses a catalog name.
func NewCatalogFromString(s string) (Catalog, bool) {
	switch Catalog(s) {
	case CatalogGovernorates, CatalogParties, CatalogUserTypes,
		CatalogCouncils, CatalogComplaintCategories, CatalogComplaintStatuses:
		return Catalog(s), true
	default:
		return "", false
	}
}

// CatalogForCategory maps a counter category to the catalog holding its
// entities' metadata. CategoryPlatform has no catalog.
func CatalogForCategory(category models.Category) (Catalog, bool) {
	switch category {
	case models.CategoryRegion:
		return CatalogGovernorates, true
	case models.CategoryParty:
		return CatalogParties, true
	default:
		return "", false
	}
}
