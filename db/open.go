// Copyright (c) 2026 Caleb Doyle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/calebds/worldquery/cliparse"
	"github.com/calebds/worldquery/models"
)

// SessionConfig carries the engine session settings that the original
// exercise toggles globally (cache size, constraint enforcement). They
// are passed explicitly at open time instead of flipped mid-session.
type SessionConfig struct {
	CacheKiB    int
	ForeignKeys bool
}

// Open connects to the configured engine, verifies the connection and
// applies the session settings to every pooled connection.
func Open(cfg cliparse.Config) (*sql.DB, error) {
	sess := SessionConfig{CacheKiB: cfg.CacheKiB, ForeignKeys: true}

	driver := "sqlite"
	dsn := cfg.DatabaseURL
	if cfg.DatabaseType == "postgres" {
		driver = "postgres"
	} else {
		registerFunctions()
		// DSN pragmas apply per-connection, so the whole pool gets them
		dsn = sqliteDSN(dsn, sess)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	if driver == "sqlite" && strings.Contains(dsn, ":memory:") {
		// Every pooled connection would otherwise see its own empty database
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := EnsureFunctions(conn, driver); err != nil {
		conn.Close()
		return nil, err
	}

	return conn, nil
}

// sqliteDSN appends the session settings as _pragma query parameters.
func sqliteDSN(url string, sess SessionConfig) string {
	var parts []string
	if sess.ForeignKeys {
		parts = append(parts, "_pragma=foreign_keys(1)")
	}
	if sess.CacheKiB > 0 {
		// negative cache_size means KiB instead of pages
		parts = append(parts, fmt.Sprintf("_pragma=cache_size(-%d)", sess.CacheKiB))
	}
	if len(parts) == 0 {
		return url
	}

	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + strings.Join(parts, "&")
}

// EnsureFunctions installs the gdp_band function on engines that need
// it server-side. The sqlite variant is registered on the driver in Go
// (see func.go); postgres gets an equivalent SQL function so the same
// query text runs on both engines.
func EnsureFunctions(db *sql.DB, driver string) error {
	if driver != "postgres" {
		return nil
	}

	low := strconv.FormatFloat(models.LowCeiling, 'f', -1, 64)
	medium := strconv.FormatFloat(models.MediumCeiling, 'f', -1, 64)

	stmt := fmt.Sprintf(`
		CREATE OR REPLACE FUNCTION gdp_band(gdp double precision) RETURNS text AS $$
		SELECT CASE
			WHEN gdp < %s THEN '%s'
			WHEN gdp <= %s THEN '%s'
			ELSE '%s'
		END
		$$ LANGUAGE SQL IMMUTABLE`,
		low, models.BandLow, medium, models.BandMedium, models.BandHigh)

	if _, err := db.Exec(stmt); err != nil {
		return fmt.Errorf("failed to create gdp_band function: %w", err)
	}
	return nil
}
