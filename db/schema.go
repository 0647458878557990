// Copyright (c) 2026 Caleb Doyle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the world dataset.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Continents
CREATE TABLE IF NOT EXISTS continent (
    continent_id INTEGER PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
);

-- Regions
CREATE TABLE IF NOT EXISTS region (
    region_id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    continent_id INTEGER NOT NULL REFERENCES continent(continent_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_region_continent_id ON region(continent_id);

-- Countries
CREATE TABLE IF NOT EXISTS country (
    country_id INTEGER PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    region_id INTEGER NOT NULL REFERENCES region(region_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_country_region_id ON country(region_id);

-- Languages
CREATE TABLE IF NOT EXISTS language (
    language_id INTEGER PRIMARY KEY,
    language TEXT NOT NULL UNIQUE
);

-- Country/language association with the official discriminator
CREATE TABLE IF NOT EXISTS country_language (
    country_id INTEGER NOT NULL REFERENCES country(country_id) ON DELETE CASCADE,
    language_id INTEGER NOT NULL REFERENCES language(language_id) ON DELETE CASCADE,
    official BOOLEAN NOT NULL DEFAULT FALSE,
    PRIMARY KEY (country_id, language_id)
);

CREATE INDEX IF NOT EXISTS idx_country_language_language_id ON country_language(language_id);

-- Yearly economic/demographic snapshots, one row per (country, year)
CREATE TABLE IF NOT EXISTS country_stats (
    country_id INTEGER NOT NULL REFERENCES country(country_id) ON DELETE CASCADE,
    year INTEGER NOT NULL,
    gdp REAL,
    population INTEGER,
    PRIMARY KEY (country_id, year)
);

CREATE INDEX IF NOT EXISTS idx_country_stats_year ON country_stats(year);

-- Range partitions of country_stats plus the view uniting them.
-- Neither engine option exposes declarative partitioning portably, so
-- the split is kept as two range tables behind one view.
CREATE TABLE IF NOT EXISTS country_stats_recent (
    country_id INTEGER NOT NULL REFERENCES country(country_id) ON DELETE CASCADE,
    year INTEGER NOT NULL,
    gdp REAL,
    population INTEGER,
    PRIMARY KEY (country_id, year)
);

CREATE TABLE IF NOT EXISTS country_stats_historic (
    country_id INTEGER NOT NULL REFERENCES country(country_id) ON DELETE CASCADE,
    year INTEGER NOT NULL,
    gdp REAL,
    population INTEGER,
    PRIMARY KEY (country_id, year)
);

DROP VIEW IF EXISTS country_stats_partitioned;
CREATE VIEW country_stats_partitioned AS
SELECT country_id, year, gdp, population FROM country_stats_recent
UNION ALL
SELECT country_id, year, gdp, population FROM country_stats_historic;

-- Pairwise travel distances, self-referential via country
CREATE TABLE IF NOT EXISTS country_distance (
    origin INTEGER NOT NULL REFERENCES country(country_id) ON DELETE CASCADE,
    destination INTEGER NOT NULL REFERENCES country(country_id) ON DELETE CASCADE,
    distance REAL NOT NULL,
    PRIMARY KEY (origin, destination)
);
`
