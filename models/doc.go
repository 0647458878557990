// Copyright (c) 2026 Caleb Doyle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain and result row types for the world schema.

# Domain Types

One struct per base table:

  - Continent, Region, Country: the three-level geographic hierarchy
  - Language: a spoken language
  - CountryLanguage: association row with the official flag
  - CountryStat: one (country, year) economic snapshot
  - CountryDistance: one (origin, destination) travel distance

# Result Rows

Each query family returns its own row type rather than a generic map:

  - CountryLanguageRow: language lookup (join and subquery forms)
  - SpeakerRow: union query output
  - MultilingualRow: HAVING-filtered aggregation
  - PopulationRow: above-average CTE query
  - TreeRow: recursive hierarchy walk
  - GDPBandRow: banded yearly stats
  - ReportRow: staged temp-table report

# GDP Bands

Band boundaries and labels live here so the pure classifier, the SQL
CASE expression and the gdp_band engine function all share one source
of truth:

	gdp < 1e10          → "Low GDP"
	1e10 ≤ gdp ≤ 1e11   → "Medium GDP"
	gdp > 1e11          → "High GDP"
*/
package models
