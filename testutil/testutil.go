// Copyright (c) 2026 Caleb Doyle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"testing"

	"github.com/calebds/worldquery/cliparse"
	"github.com/calebds/worldquery/db"
)

// Fixed identifiers of the SeedWorld dataset.
const (
	EuropeID       = 1
	SouthAmericaID = 2
	AsiaID         = 3

	WesternEuropeID  = 1
	SouthernEuropeID = 2
	SouthernConeID   = 3
	EastAsiaID       = 4

	SpainID     = 1
	FranceID    = 2
	ArgentinaID = 3
	BrazilID    = 4
	JapanID     = 5

	SpanishID    = 1
	FrenchID     = 2
	PortugueseID = 3
	GuaraniID    = 4
	JapaneseID   = 5
)

// SetupTestDB opens a fresh in-memory sqlite database with the full schema.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(cliparse.Config{
		DatabaseType: "sqlite",
		DatabaseURL:  "file::memory:",
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// AddContinent inserts a continent row.
func AddContinent(t *testing.T, conn *sql.DB, id int64, name string) {
	t.Helper()

	_, err := conn.Exec(`INSERT INTO continent (continent_id, name) VALUES ($1, $2)`, id, name)
	if err != nil {
		t.Fatalf("Failed to insert continent %q: %v", name, err)
	}
}

// AddRegion inserts a region row.
func AddRegion(t *testing.T, conn *sql.DB, id int64, name string, continentID int64) {
	t.Helper()

	_, err := conn.Exec(`INSERT INTO region (region_id, name, continent_id) VALUES ($1, $2, $3)`, id, name, continentID)
	if err != nil {
		t.Fatalf("Failed to insert region %q: %v", name, err)
	}
}

// AddCountry inserts a country row.
func AddCountry(t *testing.T, conn *sql.DB, id int64, name string, regionID int64) {
	t.Helper()

	_, err := conn.Exec(`INSERT INTO country (country_id, name, region_id) VALUES ($1, $2, $3)`, id, name, regionID)
	if err != nil {
		t.Fatalf("Failed to insert country %q: %v", name, err)
	}
}

// AddLanguage inserts a language row.
func AddLanguage(t *testing.T, conn *sql.DB, id int64, name string) {
	t.Helper()

	_, err := conn.Exec(`INSERT INTO language (language_id, language) VALUES ($1, $2)`, id, name)
	if err != nil {
		t.Fatalf("Failed to insert language %q: %v", name, err)
	}
}

// LinkLanguage associates a language with a country.
func LinkLanguage(t *testing.T, conn *sql.DB, countryID, languageID int64, official bool) {
	t.Helper()

	_, err := conn.Exec(`INSERT INTO country_language (country_id, language_id, official) VALUES ($1, $2, $3)`,
		countryID, languageID, official)
	if err != nil {
		t.Fatalf("Failed to link language %d to country %d: %v", languageID, countryID, err)
	}
}

// AddStat inserts a yearly snapshot.
func AddStat(t *testing.T, conn *sql.DB, countryID int64, year int, gdp float64, population int64) {
	t.Helper()

	_, err := conn.Exec(`INSERT INTO country_stats (country_id, year, gdp, population) VALUES ($1, $2, $3, $4)`,
		countryID, year, gdp, population)
	if err != nil {
		t.Fatalf("Failed to insert stats for country %d year %d: %v", countryID, year, err)
	}
}

// AddDistance inserts a directed distance edge.
func AddDistance(t *testing.T, conn *sql.DB, origin, destination int64, distance float64) {
	t.Helper()

	_, err := conn.Exec(`INSERT INTO country_distance (origin, destination, distance) VALUES ($1, $2, $3)`,
		origin, destination, distance)
	if err != nil {
		t.Fatalf("Failed to insert distance %d→%d: %v", origin, destination, err)
	}
}

// SeedWorld loads the fixed dataset shared by the query tests:
// five countries across three continents, five languages, associations
// with a mix of official flags, stats for 1995 and 2020, and a distance
// graph containing a cycle and one unreachable country (Japan).
func SeedWorld(t *testing.T, conn *sql.DB) {
	t.Helper()

	AddContinent(t, conn, EuropeID, "Europe")
	AddContinent(t, conn, SouthAmericaID, "South America")
	AddContinent(t, conn, AsiaID, "Asia")

	AddRegion(t, conn, WesternEuropeID, "Western Europe", EuropeID)
	AddRegion(t, conn, SouthernEuropeID, "Southern Europe", EuropeID)
	AddRegion(t, conn, SouthernConeID, "Southern Cone", SouthAmericaID)
	AddRegion(t, conn, EastAsiaID, "East Asia", AsiaID)

	AddCountry(t, conn, SpainID, "Spain", SouthernEuropeID)
	AddCountry(t, conn, FranceID, "France", WesternEuropeID)
	AddCountry(t, conn, ArgentinaID, "Argentina", SouthernConeID)
	AddCountry(t, conn, BrazilID, "Brazil", SouthernConeID)
	AddCountry(t, conn, JapanID, "Japan", EastAsiaID)

	AddLanguage(t, conn, SpanishID, "Spanish")
	AddLanguage(t, conn, FrenchID, "French")
	AddLanguage(t, conn, PortugueseID, "Portuguese")
	AddLanguage(t, conn, GuaraniID, "Guarani")
	AddLanguage(t, conn, JapaneseID, "Japanese")

	LinkLanguage(t, conn, SpainID, SpanishID, true)
	LinkLanguage(t, conn, SpainID, FrenchID, false)
	LinkLanguage(t, conn, FranceID, FrenchID, true)
	LinkLanguage(t, conn, ArgentinaID, SpanishID, true)
	LinkLanguage(t, conn, ArgentinaID, GuaraniID, false)
	LinkLanguage(t, conn, BrazilID, PortugueseID, true)
	LinkLanguage(t, conn, BrazilID, SpanishID, false)
	LinkLanguage(t, conn, JapanID, JapaneseID, true)

	AddStat(t, conn, SpainID, 1995, 6.1e11, 39_400_000)
	AddStat(t, conn, SpainID, 2020, 1.28e12, 47_400_000)
	AddStat(t, conn, FranceID, 1995, 1.6e12, 59_500_000)
	AddStat(t, conn, FranceID, 2020, 2.64e12, 67_400_000)
	AddStat(t, conn, ArgentinaID, 1995, 2.58e11, 34_800_000)
	AddStat(t, conn, ArgentinaID, 2020, 3.89e11, 45_400_000)
	AddStat(t, conn, BrazilID, 1995, 7.69e11, 162_000_000)
	AddStat(t, conn, BrazilID, 2020, 1.48e12, 213_000_000)
	AddStat(t, conn, JapanID, 1995, 5.55e12, 125_500_000)
	AddStat(t, conn, JapanID, 2020, 5.05e12, 126_200_000)

	// Spain→France→Spain is a cycle; Brazil is reachable from Spain
	// only through Argentina; nothing reaches Japan.
	AddDistance(t, conn, SpainID, FranceID, 1050)
	AddDistance(t, conn, FranceID, SpainID, 1050)
	AddDistance(t, conn, SpainID, ArgentinaID, 10030)
	AddDistance(t, conn, ArgentinaID, BrazilID, 2340)
	AddDistance(t, conn, BrazilID, ArgentinaID, 2340)
}
