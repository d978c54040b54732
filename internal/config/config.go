package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	LocalesDir    string
	IndexFile     string
	DefaultLocale string
	DatabaseURL   string
}

// Load reads the configuration from environment variables and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when variables come from the environment (Docker, CI, etc.).
	}

	cfg := &Config{
		LocalesDir:    os.Getenv("LOCALES_DIR"),
		IndexFile:     os.Getenv("INDEX_FILE"),
		DefaultLocale: os.Getenv("DEFAULT_LOCALE"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies defaults and checks every loaded value.
func (c *Config) validate() error {
	if strings.TrimSpace(c.LocalesDir) == "" {
		c.LocalesDir = "translations"
	}
	if strings.TrimSpace(c.IndexFile) == "" {
		c.IndexFile = "index.json"
	}
	if strings.TrimSpace(c.DefaultLocale) == "" {
		c.DefaultLocale = "en_US"
	}

	if !validLocaleCode(c.DefaultLocale) {
		return fmt.Errorf("config: DEFAULT_LOCALE %q is not a locale code (expected e.g. en_US)", c.DefaultLocale)
	}

	if strings.TrimSpace(c.DatabaseURL) != "" {
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: DATABASE_URL invalid (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: DATABASE_URL invalid (%q): missing scheme or host", c.DatabaseURL)
		}
	}

	return nil
}

// RequireDatabase checks that a database DSN was configured, for the
// commands that need one.
func (c *Config) RequireDatabase() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("config: DATABASE_URL is required for this command")
	}
	return nil
}

// validLocaleCode accepts identifiers shaped like "en" or "en_US".
func validLocaleCode(code string) bool {
	lang, region, found := strings.Cut(code, "_")
	if found && len(region) == 0 {
		return false
	}
	if len(lang) < 2 || len(lang) > 3 {
		return false
	}
	for _, r := range lang {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	for _, r := range region {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
