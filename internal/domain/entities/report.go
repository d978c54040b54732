package entities

import "fmt"

// Finding kinds reported by a catalog check.
const (
	FindingMissingKey        = "missing_key"        // a locale lags the default locale on a key
	FindingMissingTable      = "missing_table"      // an indexed locale has no loadable table
	FindingUnindexedResource = "unindexed_resource" // a resource file has no index entry
)

// Finding is one catalog inconsistency.
type Finding struct {
	Kind     string
	Locale   string
	Key      string
	Resource string
}

func (f Finding) String() string {
	switch f.Kind {
	case FindingMissingKey:
		return fmt.Sprintf("%s: %s not found.", f.Resource, f.Key)
	case FindingMissingTable:
		return fmt.Sprintf("%s not found.", f.Resource)
	case FindingUnindexedResource:
		return fmt.Sprintf("%s not found in index.json.", f.Resource)
	default:
		return fmt.Sprintf("%s: unknown finding", f.Resource)
	}
}

// Report collects the findings of one catalog check.
type Report struct {
	Findings []Finding
}

// Clean reports whether the check found no inconsistencies.
func (r *Report) Clean() bool {
	return len(r.Findings) == 0
}
