package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"localekit/internal/application"
	"localekit/internal/config"
	"localekit/internal/domain/entities"
	"localekit/internal/infrastructure/catalog"
	"localekit/internal/infrastructure/database"
	"localekit/internal/infrastructure/i18n"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	ctx := context.Background()
	loader := catalog.NewLoader(os.DirFS("."), cfg.IndexFile, cfg.LocalesDir)

	switch os.Args[1] {
	case "check":
		runCheck(ctx, cfg, loader)
	case "list":
		runList(ctx, loader)
	case "resolve":
		runResolve(ctx, cfg, loader, os.Args[2:])
	case "publish":
		runPublish(ctx, cfg, loader)
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: localekit <command>

Commands:
  check                  validate catalog consistency against the default locale
  list                   list supported locales in index order
  resolve <locale> <key> resolve one translation, with fallback
  publish                publish the catalog to the configured database`)
}

// runCheck mirrors the repository's CI contract: print every finding, exit
// non-zero when the catalog drifted.
func runCheck(ctx context.Context, cfg *config.Config, loader *catalog.Loader) {
	checker := application.NewCheckService(loader, cfg.DefaultLocale)
	report, err := checker.Check(ctx)
	if err != nil {
		log.Fatalf("❌ Check failed: %v", err)
	}
	for _, finding := range report.Findings {
		fmt.Println(finding)
	}
	if !report.Clean() {
		os.Exit(1)
	}
	log.Printf("✅ Catalog consistent (%d locales).", len(mustIndex(ctx, loader).Entries))
}

func runList(ctx context.Context, loader *catalog.Loader) {
	index := mustIndex(ctx, loader)
	for _, info := range index.Entries {
		fmt.Printf("%s\t%s (%s)\n", info.Code, info.DisplayLanguage, info.Country)
	}
}

func runResolve(ctx context.Context, cfg *config.Config, loader *catalog.Loader, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: localekit resolve <locale> <key>")
		os.Exit(2)
	}

	index, tables, err := application.LoadCatalog(ctx, loader, cfg.DefaultLocale)
	if err != nil {
		log.Fatalf("❌ Failed to load catalog: %v", err)
	}
	translator := i18n.NewTranslator(cfg.DefaultLocale, tables)
	resolver := application.NewResolverService(index, translator, cfg.DefaultLocale)

	fmt.Println(resolver.Resolve(args[0], args[1], nil))
}

func runPublish(ctx context.Context, cfg *config.Config, loader *catalog.Loader) {
	if err := cfg.RequireDatabase(); err != nil {
		log.Fatalf("❌ %v", err)
	}

	index, tables, err := application.LoadCatalog(ctx, loader, cfg.DefaultLocale)
	if err != nil {
		log.Fatalf("❌ Failed to load catalog: %v", err)
	}

	if err := database.RunMigrations(cfg.DatabaseURL, "migrations"); err != nil {
		log.Fatalf("❌ Migration error: %v", err)
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Database connection error: %v", err)
	}
	defer pool.Close()

	repo := database.NewCatalogRepository(pool)
	if err := repo.Publish(ctx, index, tables); err != nil {
		log.Fatalf("❌ Publish error: %v", err)
	}
	log.Printf("✅ Published %d locales (%d tables).", len(index.Entries), len(tables))
}

func mustIndex(ctx context.Context, loader *catalog.Loader) *entities.Index {
	index, err := loader.LoadIndex(ctx)
	if err != nil {
		log.Fatalf("❌ Failed to load index: %v", err)
	}
	return index
}
