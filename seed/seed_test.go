// Copyright (c) 2026 Caleb Doyle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"context"
	"database/sql"
	"testing"

	"github.com/calebds/worldquery/cliparse"
	"github.com/calebds/worldquery/testutil"
)

func testConfig(countries int, seed int64) cliparse.Config {
	return cliparse.Config{
		DatabaseType: "sqlite",
		Countries:    countries,
		Seed:         seed,
	}
}

func TestLoadPopulatesAllTables(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	ctx := context.Background()

	if err := Load(ctx, conn, testConfig(12, 1)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	counts := map[string]int{
		"continent":        4,
		"region":           6,
		"country":          12,
		"language":         8,
		"country_language": 20,
		"country_stats":    12 * 7,
	}
	for table, want := range counts {
		var got int
		if err := conn.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&got); err != nil {
			t.Fatalf("Failed to count %s: %v", table, err)
		}
		if got != want {
			t.Errorf("%s: expected %d rows, got %d", table, want, got)
		}
	}
}

func TestLoadSkipsExistingData(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	ctx := context.Background()

	if err := Load(ctx, conn, testConfig(12, 1)); err != nil {
		t.Fatalf("First load failed: %v", err)
	}
	if err := Load(ctx, conn, testConfig(12, 1)); err != nil {
		t.Fatalf("Second load failed: %v", err)
	}

	var got int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM country`).Scan(&got); err != nil {
		t.Fatal(err)
	}
	if got != 12 {
		t.Errorf("expected 12 countries after repeated load, got %d", got)
	}
}

func TestLoadRespectsCountryLimit(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	if err := Load(context.Background(), conn, testConfig(5, 1)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	var got int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM country`).Scan(&got); err != nil {
		t.Fatal(err)
	}
	if got != 5 {
		t.Errorf("expected 5 countries, got %d", got)
	}

	// No association may reference an excluded country.
	var orphans int
	err := conn.QueryRow(`
		SELECT COUNT(*) FROM country_language cl
		LEFT JOIN country co ON co.country_id = cl.country_id
		WHERE co.country_id IS NULL
	`).Scan(&orphans)
	if err != nil {
		t.Fatal(err)
	}
	if orphans != 0 {
		t.Errorf("found %d orphaned language links", orphans)
	}
}

func TestLoadIsDeterministicForFixedSeed(t *testing.T) {
	ctx := context.Background()

	statsFor := func(conn *sql.DB) map[string]float64 {
		rows, err := conn.Query(`
			SELECT co.name || ':' || s.year, s.gdp
			FROM country_stats s
			JOIN country co ON co.country_id = s.country_id
		`)
		if err != nil {
			t.Fatal(err)
		}
		defer rows.Close()

		out := map[string]float64{}
		for rows.Next() {
			var key string
			var gdp float64
			if err := rows.Scan(&key, &gdp); err != nil {
				t.Fatal(err)
			}
			out[key] = gdp
		}
		if err := rows.Err(); err != nil {
			t.Fatal(err)
		}
		return out
	}

	connA := testutil.SetupTestDB(t)
	if err := Load(ctx, connA, testConfig(12, 7)); err != nil {
		t.Fatalf("Load A failed: %v", err)
	}

	connB := testutil.SetupTestDB(t)
	if err := Load(ctx, connB, testConfig(12, 7)); err != nil {
		t.Fatalf("Load B failed: %v", err)
	}

	a, b := statsFor(connA), statsFor(connB)
	if len(a) != len(b) {
		t.Fatalf("different row counts: %d vs %d", len(a), len(b))
	}
	for key, gdp := range a {
		if b[key] != gdp {
			t.Errorf("gdp diverged for %s: %v vs %v", key, gdp, b[key])
		}
	}
}
