package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL  string
	DatabaseType string
	CacheKiB     int
	Profile      bool
	Seed         int64
	Countries    int
}

// ParseFlags validates flags and fills in environment fallbacks.
// A .env file in the working directory is loaded first when present.
func ParseFlags(args []string) (Config, error) {
	// Missing .env is fine; flags and real env still apply
	_ = godotenv.Load()

	var cfg Config

	fs := flag.NewFlagSet("worldquery", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Session settings (the engine's own toggles, passed explicitly)
	fs.IntVar(&cfg.CacheKiB, "cache-kib", 0, "Page cache size in KiB (0 = engine default)")
	fs.BoolVar(&cfg.Profile, "profile", false, "Record per-statement timings")

	// Sample dataset knobs
	fs.Int64Var(&cfg.Seed, "seed", 0, "RNG seed for the sample dataset")
	fs.IntVar(&cfg.Countries, "countries", 0, "Number of sample countries to seed")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "postgres" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "file:world.db" // default sqlite file
	}

	if cfg.CacheKiB == 0 {
		if v := os.Getenv("CACHE_KIB"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return Config{}, errors.New("invalid CACHE_KIB env variable")
			}
			cfg.CacheKiB = n
		}
	}
	if cfg.CacheKiB < 0 {
		return Config{}, errors.New("cache size must not be negative")
	}

	if !cfg.Profile {
		cfg.Profile = os.Getenv("PROFILE") == "1" || os.Getenv("PROFILE") == "true"
	}

	if cfg.Seed == 0 {
		if v := os.Getenv("SEED"); v != "" {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return Config{}, errors.New("invalid SEED env variable")
			}
			cfg.Seed = n
		} else {
			cfg.Seed = 1 // deterministic default
		}
	}

	if cfg.Countries == 0 {
		cfg.Countries = 12
	}
	if cfg.Countries < 3 {
		return Config{}, errors.New("need at least 3 sample countries")
	}

	return cfg, nil
}
