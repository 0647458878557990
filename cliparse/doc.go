// Copyright (c) 2026 Caleb Doyle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded before env fallbacks apply.

# Config Fields

  - DatabaseURL: connection string or sqlite file path
  - DatabaseType: "sqlite" (default) or "postgres"
  - CacheKiB: engine page cache size, passed to the session explicitly
  - Profile: record per-statement timings
  - Seed: RNG seed for the sample dataset (default: 1, deterministic)
  - Countries: number of sample countries to seed (default: 12)

# CLI Flags

	-d          Database URL or file path
	-t          Database type
	--cache-kib Page cache size in KiB
	--profile   Enable statement timing
	--seed      Sample dataset RNG seed
	--countries Sample country count

# Environment Variables

Flags fall back to environment variables:

	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	CACHE_KIB     → --cache-kib
	PROFILE       → --profile
	SEED          → --seed

CLI flags take precedence over environment variables.
*/
package cliparse
