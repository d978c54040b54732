package output

import (
	"context"

	"localekit/internal/domain/entities"
)

// CatalogSource reads the locale index and per-locale translation tables
// from a backing medium (filesystem, database, ...).
type CatalogSource interface {
	LoadIndex(ctx context.Context) (*entities.Index, error)
	LoadTable(ctx context.Context, locale string) (*entities.Table, error)
	// ListResources returns the resource file names present in the backing
	// medium, indexed or not, so drift against the index can be detected.
	ListResources(ctx context.Context) ([]string, error)
}
