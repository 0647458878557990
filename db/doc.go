// Copyright (c) 2026 Caleb Doyle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles engine connection and schema creation.

# Opening

Open dispatches on the configured engine and returns a verified pool:

	conn, err := db.Open(cfg) // sqlite (modernc.org/sqlite) or postgres (lib/pq)

Session settings (foreign key enforcement, page cache size) are applied
explicitly: as DSN pragmas on sqlite so every pooled connection gets
them, and as server defaults on postgres.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for tables and indexes.
The partitioned-stats view is dropped and recreated since neither engine
supports IF NOT EXISTS for views portably.

# Tables

  - continent, region, country: the geographic hierarchy
  - language: spoken languages
  - country_language: many-to-many association with the official flag
  - country_stats: one economic snapshot per (country, year)
  - country_stats_recent / country_stats_historic: range split of the
    stats table, united by the country_stats_partitioned view
  - country_distance: pairwise travel distances, self-referential

# Relationships

	continent 1──* region 1──* country
	country *──* language (via country_language)
	country 1──* country_stats
	country 1──* country_distance (origin and destination)

All foreign keys use ON DELETE CASCADE.

# Functions

gdp_band(gdp) returns the band label for a GDP value. On sqlite it is a
Go scalar function registered on the driver; on postgres it is created
as an IMMUTABLE SQL function. Both delegate their thresholds to the
models package so the host-side classifier cannot drift from the
engine-side one.
*/
package db
