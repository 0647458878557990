// Copyright (c) 2026 Caleb Doyle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"testing"

	"github.com/calebds/worldquery/cliparse"
	"github.com/calebds/worldquery/models"
)

func TestCreateSchemaIdempotent(t *testing.T) {
	conn, err := Open(cliparse.Config{DatabaseType: "sqlite", DatabaseURL: "file::memory:"})
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}
	defer conn.Close()

	if err := CreateSchema(conn); err != nil {
		t.Fatalf("First CreateSchema failed: %v", err)
	}
	if err := CreateSchema(conn); err != nil {
		t.Fatalf("Second CreateSchema failed: %v", err)
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	conn, err := Open(cliparse.Config{DatabaseType: "sqlite", DatabaseURL: "file::memory:"})
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}
	defer conn.Close()

	if err := CreateSchema(conn); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}

	// region 999 does not exist, so the insert must be rejected
	if _, err := conn.Exec(`INSERT INTO country (country_id, name, region_id) VALUES (1, 'Nowhere', 999)`); err == nil {
		t.Error("expected foreign key violation, got nil")
	}
}

func TestGDPBandFunction(t *testing.T) {
	conn, err := Open(cliparse.Config{DatabaseType: "sqlite", DatabaseURL: "file::memory:"})
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}
	defer conn.Close()

	cases := []struct {
		gdp  float64
		want string
	}{
		{9_999_999_999, models.BandLow},
		{10_000_000_000, models.BandMedium},
		{100_000_000_000, models.BandMedium},
		{100_000_000_001, models.BandHigh},
	}

	for _, tc := range cases {
		var got string
		if err := conn.QueryRow(`SELECT gdp_band($1)`, tc.gdp).Scan(&got); err != nil {
			t.Fatalf("gdp_band(%v) query failed: %v", tc.gdp, err)
		}
		if got != tc.want {
			t.Errorf("gdp_band(%v) = %q, want %q", tc.gdp, got, tc.want)
		}
	}
}

func TestSqliteDSNSettings(t *testing.T) {
	got := sqliteDSN("file:world.db", SessionConfig{ForeignKeys: true, CacheKiB: 2048})
	want := "file:world.db?_pragma=foreign_keys(1)&_pragma=cache_size(-2048)"
	if got != want {
		t.Errorf("sqliteDSN = %q, want %q", got, want)
	}

	// No settings requested leaves the URL untouched
	if got := sqliteDSN("file:world.db", SessionConfig{}); got != "file:world.db" {
		t.Errorf("sqliteDSN without settings = %q", got)
	}
}
