package application

import (
	"context"
	"fmt"

	"localekit/internal/domain"
	"localekit/internal/domain/entities"
	"localekit/internal/ports/output"
)

var _ output.CatalogSource = (*fakeSource)(nil)

// fakeSource is an in-memory CatalogSource for service tests.
type fakeSource struct {
	index     *entities.Index
	indexErr  error
	tables    map[string]map[string]string
	tableErr  map[string]error
	resources []string
}

func (f *fakeSource) LoadIndex(_ context.Context) (*entities.Index, error) {
	if f.indexErr != nil {
		return nil, f.indexErr
	}
	return f.index, nil
}

func (f *fakeSource) LoadTable(_ context.Context, locale string) (*entities.Table, error) {
	if err, ok := f.tableErr[locale]; ok {
		return nil, err
	}
	messages, ok := f.tables[locale]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrLocaleNotFound, locale)
	}
	return &entities.Table{Locale: locale, Messages: messages}, nil
}

func (f *fakeSource) ListResources(_ context.Context) ([]string, error) {
	return f.resources, nil
}

func indexOf(codes ...string) *entities.Index {
	index := &entities.Index{}
	for _, code := range codes {
		index.Entries = append(index.Entries, entities.LocaleInfo{
			Code:       code,
			SourceFile: code + ".json",
		})
	}
	return index
}

// echoTranslator records no state and mirrors the fallback contract shape:
// it returns "locale/key" so delegation is observable.
type echoTranslator struct{}

func (echoTranslator) T(locale, key string, _ map[string]any) string {
	return locale + "/" + key
}
