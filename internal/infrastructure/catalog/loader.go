package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"localekit/internal/domain"
	"localekit/internal/domain/entities"
	"localekit/internal/ports/output"
)

// Ensure Loader implements the output.CatalogSource port.
var _ output.CatalogSource = (*Loader)(nil)

// Loader reads a locale catalog from a filesystem: one index file plus one
// translation table per locale under dir. Tables may be JSON or TOML.
type Loader struct {
	fsys      fs.FS
	indexFile string
	dir       string

	index *entities.Index // cached after first load; read-only afterwards
}

// NewLoader builds a Loader rooted at fsys, reading indexFile and the
// translation tables under dir.
func NewLoader(fsys fs.FS, indexFile, dir string) *Loader {
	return &Loader{fsys: fsys, indexFile: indexFile, dir: dir}
}

// LoadIndex reads and decodes the locale index. A missing index is a fatal
// configuration error, not retried.
func (l *Loader) LoadIndex(ctx context.Context) (*entities.Index, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if l.index != nil {
		return l.index, nil
	}

	file, err := l.fsys.Open(l.indexFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrIndexNotFound, l.indexFile)
		}
		return nil, fmt.Errorf("open index %s: %w", l.indexFile, err)
	}
	defer file.Close()

	index, err := decodeIndex(file)
	if err != nil {
		return nil, fmt.Errorf("%w: index %s: %v", domain.ErrMalformedResource, l.indexFile, err)
	}

	l.index = index
	return index, nil
}

// LoadTable reads and decodes one locale's translation table. The locale
// must be present in the index.
func (l *Loader) LoadTable(ctx context.Context, locale string) (*entities.Table, error) {
	index, err := l.LoadIndex(ctx)
	if err != nil {
		return nil, err
	}

	info, ok := index.Lookup(locale)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrLocaleNotFound, locale)
	}

	data, err := fs.ReadFile(l.fsys, path.Join(l.dir, info.SourceFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s has no resource %s", domain.ErrLocaleNotFound, locale, info.SourceFile)
		}
		return nil, fmt.Errorf("read %s: %w", info.SourceFile, err)
	}

	messages, err := decodeTable(info.SourceFile, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrMalformedResource, info.SourceFile, err)
	}

	return &entities.Table{Locale: locale, Messages: messages}, nil
}

// ListResources returns the translation resource file names present under
// the loader's directory, in lexical order.
func (l *Loader) ListResources(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dirents, err := fs.ReadDir(l.fsys, l.dir)
	if err != nil {
		return nil, fmt.Errorf("read resource dir %s: %w", l.dir, err)
	}

	var names []string
	for _, d := range dirents {
		if d.IsDir() {
			continue
		}
		switch path.Ext(d.Name()) {
		case ".json", ".toml":
			names = append(names, d.Name())
		}
	}
	return names, nil
}

// decodeIndex parses the index object with a token scan so the declared
// entry order survives decoding.
func decodeIndex(r io.Reader) (*entities.Index, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected a JSON object, got %v", tok)
	}

	index := &entities.Index{}
	seen := make(map[string]struct{})
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		code, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected a locale code, got %v", tok)
		}
		if _, dup := seen[code]; dup {
			return nil, fmt.Errorf("duplicate locale %q", code)
		}
		seen[code] = struct{}{}

		var meta struct {
			DisplayLanguage string `json:"displayLanguage"`
			Country         string `json:"country"`
			SourceFile      string `json:"sourceFile"`
		}
		if err := dec.Decode(&meta); err != nil {
			return nil, fmt.Errorf("locale %q: %w", code, err)
		}
		if meta.SourceFile == "" {
			meta.SourceFile = code + ".json"
		}

		index.Entries = append(index.Entries, entities.LocaleInfo{
			Code:            code,
			DisplayLanguage: meta.DisplayLanguage,
			Country:         meta.Country,
			SourceFile:      meta.SourceFile,
		})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return index, nil
}

// decodeTable parses a flat key/value table, picking the codec from the
// file extension.
func decodeTable(name string, data []byte) (map[string]string, error) {
	messages := make(map[string]string)
	switch ext := path.Ext(name); ext {
	case ".json":
		if err := json.Unmarshal(data, &messages); err != nil {
			return nil, err
		}
	case ".toml":
		if err := toml.Unmarshal(data, &messages); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported resource format %q", ext)
	}

	for key := range messages {
		if strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("empty message key")
		}
	}
	return messages, nil
}
