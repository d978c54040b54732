package application

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"localekit/internal/domain/entities"
	"localekit/internal/ports/input"
	"localekit/internal/ports/output"
)

var _ input.CheckUseCase = (*CheckService)(nil)

// CheckService validates a catalog's consistency: every locale carries every
// default-locale key, every index entry has a loadable table, and every
// resource file has an index entry. It reports drift, it never repairs it.
type CheckService struct {
	source        output.CatalogSource
	defaultLocale string
}

func NewCheckService(source output.CatalogSource, defaultLocale string) *CheckService {
	return &CheckService{
		source:        source,
		defaultLocale: defaultLocale,
	}
}

// Check runs all consistency checks and returns the collected findings.
// Findings come back in index order, with keys sorted within a locale.
func (s *CheckService) Check(ctx context.Context) (*entities.Report, error) {
	index, err := s.source.LoadIndex(ctx)
	if err != nil {
		return nil, err
	}

	reference, err := s.source.LoadTable(ctx, s.defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("load reference locale %s: %w", s.defaultLocale, err)
	}
	referenceKeys := sortedKeys(reference.Messages)

	report := &entities.Report{}
	for _, info := range index.Entries {
		table, err := s.source.LoadTable(ctx, info.Code)
		if err != nil {
			report.Findings = append(report.Findings, entities.Finding{
				Kind:     entities.FindingMissingTable,
				Locale:   info.Code,
				Resource: info.SourceFile,
			})
			continue
		}
		for _, key := range referenceKeys {
			if !table.Has(key) {
				report.Findings = append(report.Findings, entities.Finding{
					Kind:     entities.FindingMissingKey,
					Locale:   info.Code,
					Key:      key,
					Resource: info.SourceFile,
				})
			}
		}
	}

	resources, err := s.source.ListResources(ctx)
	if err != nil {
		return nil, err
	}
	sort.Strings(resources)
	for _, resource := range resources {
		code := strings.TrimSuffix(resource, ".json")
		code = strings.TrimSuffix(code, ".toml")
		if !index.Has(code) {
			report.Findings = append(report.Findings, entities.Finding{
				Kind:     entities.FindingUnindexedResource,
				Resource: resource,
			})
		}
	}

	return report, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
