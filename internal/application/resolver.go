package application

import (
	"context"
	"fmt"
	"log"

	"localekit/internal/domain"
	"localekit/internal/domain/entities"
	"localekit/internal/ports/input"
	"localekit/internal/ports/output"
)

var _ input.ResolverUseCase = (*ResolverService)(nil)

// ResolverService answers (locale, key) lookups against an immutable,
// preloaded catalog. Construction loads everything; resolution never fails.
type ResolverService struct {
	index         *entities.Index
	translator    output.T
	defaultLocale string
}

// NewResolverService creates the service from an already loaded index and a
// translator built over the catalog's tables (see LoadCatalog).
func NewResolverService(index *entities.Index, translator output.T, defaultLocale string) *ResolverService {
	return &ResolverService{
		index:         index,
		translator:    translator,
		defaultLocale: defaultLocale,
	}
}

// LoadCatalog reads the index and every indexed table from source. A table
// that fails to load degrades that locale to the default one: the failure is
// logged and the locale stays listed, resolving through the fallback chain.
// Only a broken index or a broken default-locale table is fatal.
func LoadCatalog(ctx context.Context, source output.CatalogSource, defaultLocale string) (*entities.Index, []entities.Table, error) {
	index, err := source.LoadIndex(ctx)
	if err != nil {
		return nil, nil, err
	}
	if !index.Has(defaultLocale) {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrNoDefaultLocale, defaultLocale)
	}

	tables := make([]entities.Table, 0, len(index.Entries))
	for _, code := range index.Codes() {
		table, err := source.LoadTable(ctx, code)
		if err != nil {
			if code == defaultLocale {
				return nil, nil, fmt.Errorf("load default locale %s: %w", code, err)
			}
			log.Printf("catalog: locale %s degraded to %s: %v", code, defaultLocale, err)
			continue
		}
		tables = append(tables, *table)
	}

	return index, tables, nil
}

// Resolve returns the translation of key for locale, falling back to the
// default locale and finally to the literal key.
func (s *ResolverService) Resolve(locale, key string, data map[string]any) string {
	return s.translator.T(locale, key, data)
}

// ListSupportedLocales returns every locale identifier in the index's
// declared order.
func (s *ResolverService) ListSupportedLocales() []string {
	return s.index.Codes()
}

func (s *ResolverService) DefaultLocale() string {
	return s.defaultLocale
}

// LocaleInfo returns the index metadata for one supported locale.
func (s *ResolverService) LocaleInfo(locale string) (entities.LocaleInfo, bool) {
	return s.index.Lookup(locale)
}
