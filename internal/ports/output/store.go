package output

import (
	"context"

	"localekit/internal/domain/entities"
)

// CatalogStore persists a published catalog. Its load methods satisfy
// CatalogSource, so consumers can resolve straight out of the store.
type CatalogStore interface {
	CatalogSource
	Publish(ctx context.Context, index *entities.Index, tables []entities.Table) error
}
