package input

import (
	"context"

	"localekit/internal/domain/entities"
)

type ResolverUseCase interface {
	Resolve(locale, key string, data map[string]any) string
	ListSupportedLocales() []string
	DefaultLocale() string
}

type CheckUseCase interface {
	Check(ctx context.Context) (*entities.Report, error)
}
