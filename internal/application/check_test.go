package application

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"localekit/internal/domain"
	"localekit/internal/domain/entities"
	"localekit/internal/infrastructure/catalog"
)

func TestCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("consistent catalog is clean", func(t *testing.T) {
		source := &fakeSource{
			index: indexOf("en_US", "fr_FR"),
			tables: map[string]map[string]string{
				"en_US": {"button.save": "Save", "button.cancel": "Cancel"},
				"fr_FR": {"button.save": "Enregistrer", "button.cancel": "Annuler"},
			},
			resources: []string{"en_US.json", "fr_FR.json"},
		}
		report, err := NewCheckService(source, "en_US").Check(ctx)
		require.NoError(t, err)
		require.True(t, report.Clean())
	})

	t.Run("lagging locale reports each missing key", func(t *testing.T) {
		source := &fakeSource{
			index: indexOf("en_US", "fr_FR"),
			tables: map[string]map[string]string{
				"en_US": {"button.save": "Save", "button.cancel": "Cancel"},
				"fr_FR": {"button.save": "Enregistrer"},
			},
			resources: []string{"en_US.json", "fr_FR.json"},
		}
		report, err := NewCheckService(source, "en_US").Check(ctx)
		require.NoError(t, err)
		require.Len(t, report.Findings, 1)

		finding := report.Findings[0]
		require.Equal(t, entities.FindingMissingKey, finding.Kind)
		require.Equal(t, "fr_FR", finding.Locale)
		require.Equal(t, "button.cancel", finding.Key)
		require.Equal(t, "fr_FR.json: button.cancel not found.", finding.String())
	})

	t.Run("indexed locale without table", func(t *testing.T) {
		source := &fakeSource{
			index: indexOf("en_US", "de_DE"),
			tables: map[string]map[string]string{
				"en_US": {"button.save": "Save"},
			},
			resources: []string{"en_US.json"},
		}
		report, err := NewCheckService(source, "en_US").Check(ctx)
		require.NoError(t, err)
		require.Len(t, report.Findings, 1)
		require.Equal(t, entities.FindingMissingTable, report.Findings[0].Kind)
		require.Equal(t, "de_DE.json not found.", report.Findings[0].String())
	})

	t.Run("resource file without index entry", func(t *testing.T) {
		source := &fakeSource{
			index: indexOf("en_US"),
			tables: map[string]map[string]string{
				"en_US": {"button.save": "Save"},
			},
			resources: []string{"en_US.json", "nl_NL.json"},
		}
		report, err := NewCheckService(source, "en_US").Check(ctx)
		require.NoError(t, err)
		require.Len(t, report.Findings, 1)
		require.Equal(t, entities.FindingUnindexedResource, report.Findings[0].Kind)
		require.Equal(t, "nl_NL.json not found in index.json.", report.Findings[0].String())
	})

	t.Run("findings follow index order with sorted keys", func(t *testing.T) {
		source := &fakeSource{
			index: indexOf("en_US", "fr_FR", "de_DE"),
			tables: map[string]map[string]string{
				"en_US": {"a": "1", "b": "2", "c": "3"},
				"fr_FR": {"a": "1"},
				"de_DE": {"b": "2"},
			},
			resources: []string{"de_DE.json", "en_US.json", "fr_FR.json"},
		}
		report, err := NewCheckService(source, "en_US").Check(ctx)
		require.NoError(t, err)

		var got []string
		for _, f := range report.Findings {
			got = append(got, f.Locale+":"+f.Key)
		}
		require.Equal(t, []string{"fr_FR:b", "fr_FR:c", "de_DE:a", "de_DE:c"}, got)
	})

	t.Run("unloadable reference locale is an error", func(t *testing.T) {
		source := &fakeSource{
			index:    indexOf("en_US"),
			tables:   map[string]map[string]string{},
			tableErr: map[string]error{"en_US": domain.ErrMalformedResource},
		}
		_, err := NewCheckService(source, "en_US").Check(ctx)
		require.ErrorIs(t, err, domain.ErrMalformedResource)
	})
}

// TestShippedCatalogConsistent runs the checker against the data set shipped
// in this repository, the same gate the CI runs.
func TestShippedCatalogConsistent(t *testing.T) {
	root := os.DirFS("../..")
	if _, err := os.Stat("../../index.json"); err != nil {
		t.Skipf("repository data set not present: %v", err)
	}

	loader := catalog.NewLoader(root, "index.json", "translations")
	report, err := NewCheckService(loader, "en_US").Check(context.Background())
	require.NoError(t, err)
	for _, finding := range report.Findings {
		t.Errorf("%s", finding)
	}
}
