package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"localekit/internal/domain"
	"localekit/internal/domain/entities"
	"localekit/internal/ports/output"
)

var _ output.CatalogStore = (*CatalogRepository)(nil)

// dbconn is the subset of pgxpool.Pool the repository uses.
type dbconn interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CatalogRepository persists a published locale catalog in PostgreSQL. The
// locales table keeps the index (with its declared order) and translations
// keeps each locale's flat key/value table.
type CatalogRepository struct {
	pool dbconn
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// Publish replaces the stored catalog with the given index and tables in one
// transaction, so readers never observe a half-published catalog.
func (r *CatalogRepository) Publish(ctx context.Context, index *entities.Index, tables []entities.Table) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin publish: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM translations`); err != nil {
		return fmt.Errorf("clear translations: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM locales`); err != nil {
		return fmt.Errorf("clear locales: %w", err)
	}

	for position, info := range index.Entries {
		_, err := tx.Exec(ctx,
			`INSERT INTO locales (code, display_language, country, source_file, position)
			 VALUES ($1, $2, $3, $4, $5)`,
			info.Code, info.DisplayLanguage, info.Country, info.SourceFile, position,
		)
		if err != nil {
			return fmt.Errorf("insert locale %s: %w", info.Code, err)
		}
	}

	for _, table := range tables {
		for key, value := range table.Messages {
			_, err := tx.Exec(ctx,
				`INSERT INTO translations (locale, key, value) VALUES ($1, $2, $3)`,
				table.Locale, key, value,
			)
			if err != nil {
				return fmt.Errorf("insert translation %s/%s: %w", table.Locale, key, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit publish: %w", err)
	}
	return nil
}

// LoadIndex reads the stored index in its published order.
func (r *CatalogRepository) LoadIndex(ctx context.Context) (*entities.Index, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT code, display_language, country, source_file FROM locales ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("query locales: %w", err)
	}
	defer rows.Close()

	index := &entities.Index{}
	for rows.Next() {
		var info entities.LocaleInfo
		if err := rows.Scan(&info.Code, &info.DisplayLanguage, &info.Country, &info.SourceFile); err != nil {
			return nil, fmt.Errorf("scan locale: %w", err)
		}
		index.Entries = append(index.Entries, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	if len(index.Entries) == 0 {
		return nil, fmt.Errorf("%w: no catalog published", domain.ErrIndexNotFound)
	}
	return index, nil
}

// LoadTable reads one locale's stored translation table.
func (r *CatalogRepository) LoadTable(ctx context.Context, locale string) (*entities.Table, error) {
	var code string
	err := r.pool.QueryRow(ctx, `SELECT code FROM locales WHERE code = $1`, locale).Scan(&code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrLocaleNotFound, locale)
		}
		return nil, fmt.Errorf("query locale %s: %w", locale, err)
	}

	rows, err := r.pool.Query(ctx, `SELECT key, value FROM translations WHERE locale = $1`, locale)
	if err != nil {
		return nil, fmt.Errorf("query translations %s: %w", locale, err)
	}
	defer rows.Close()

	messages := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan translation: %w", err)
		}
		messages[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read translations: %w", err)
	}

	return &entities.Table{Locale: locale, Messages: messages}, nil
}

// ListResources returns the stored source file names in published order.
// Publish keeps them consistent with the index, so drift findings only ever
// come from filesystem catalogs.
func (r *CatalogRepository) ListResources(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT source_file FROM locales ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query resources: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan resource: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read resources: %w", err)
	}
	return names, nil
}
