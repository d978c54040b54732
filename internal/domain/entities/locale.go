package entities

// LocaleInfo is one entry of the locale index.
type LocaleInfo struct {
	Code            string // locale identifier, e.g. "fr_FR"; case-sensitive
	DisplayLanguage string
	Country         string
	SourceFile      string // resource file name, e.g. "fr_FR.json"
}

// Index is the ordered set of supported locales. It is built once at load
// time and read-only afterwards.
type Index struct {
	Entries []LocaleInfo
}

// Codes returns the locale identifiers in declared order.
func (i *Index) Codes() []string {
	codes := make([]string, 0, len(i.Entries))
	for _, e := range i.Entries {
		codes = append(codes, e.Code)
	}
	return codes
}

// Lookup returns the index entry for code, if present.
func (i *Index) Lookup(code string) (LocaleInfo, bool) {
	for _, e := range i.Entries {
		if e.Code == code {
			return e, true
		}
	}
	return LocaleInfo{}, false
}

// Has reports whether code is a supported locale.
func (i *Index) Has(code string) bool {
	_, ok := i.Lookup(code)
	return ok
}

// Table holds the translated strings of a single locale.
type Table struct {
	Locale   string
	Messages map[string]string
}

// Lookup returns the translation for key, if the table carries it.
func (t Table) Lookup(key string) (string, bool) {
	v, ok := t.Messages[key]
	return v, ok
}

// Has reports whether the table carries key.
func (t Table) Has(key string) bool {
	_, ok := t.Messages[key]
	return ok
}
