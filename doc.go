// Copyright (c) 2026 Caleb Doyle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the worldquery demonstration
runner.

worldquery is a teaching harness for analytical SQL patterns - joins,
unions, aggregation, CTEs, recursive traversal, conditional
categorization, temp-table staging, transactions, bulk generation,
indexing and range partitioning - over a small world schema of
continents, regions, countries, languages and yearly statistics. The
engine does the heavy lifting; this module contributes the schema, the
query text, typed result surfaces and self-checking demonstrations.

# Running

	go run . -t sqlite -d file:world.db

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

# Configuration

Optional settings (flags or env, see package cliparse):

  - DATABASE_URL (-d): connection string (default: file:world.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - CACHE_KIB (--cache-kib): engine page cache size
  - PROFILE (--profile): per-statement timing summary
  - SEED (--seed): RNG seed for the sample dataset

# Architecture

  - queries: the query corpus, one typed operation per SQL pattern
  - runner: ordered, self-checking demonstration steps
  - db: engine dispatch, schema creation, the gdp_band function
  - seed: deterministic sample world dataset
  - models: domain types, result rows, GDP band classification
  - profile: optional statement timing
  - cliparse: configuration parsing
  - testutil: in-memory database and seed helpers for tests

See package documentation for each component.
*/
package main
