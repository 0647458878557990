// Copyright (c) 2026 Caleb Doyle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package queries

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/calebds/worldquery/models"
)

// TopOfficialReport builds the official-language report in stages:
// materialize the filtered association join into one temporary table,
// aggregate it into a second, then join both plus the country table
// into the ranked result. Temporary tables are connection-scoped, so
// every stage runs on one pinned connection, and both tables are
// discarded before the connection returns to the pool.
func (c *Corpus) TopOfficialReport(ctx context.Context, limit int) ([]models.ReportRow, error) {
	start := time.Now()

	conn, err := c.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	if err := dropReportTables(ctx, conn); err != nil {
		return nil, err
	}
	// Idempotent; releasing twice is fine
	defer dropReportTables(ctx, conn)

	if _, err := conn.ExecContext(ctx, `
		CREATE TEMPORARY TABLE report_official AS
		SELECT cl.country_id, l.language
		FROM country_language cl
		JOIN language l ON l.language_id = cl.language_id
		WHERE cl.official = TRUE
	`); err != nil {
		return nil, fmt.Errorf("failed to materialize official speakers: %w", err)
	}

	if _, err := conn.ExecContext(ctx, `
		CREATE TEMPORARY TABLE report_tally AS
		SELECT country_id, COUNT(*) AS official_count
		FROM report_official
		GROUP BY country_id
	`); err != nil {
		return nil, fmt.Errorf("failed to aggregate official speakers: %w", err)
	}

	rows, err := conn.QueryContext(ctx, `
		SELECT co.name, ro.language, rt.official_count
		FROM report_tally rt
		JOIN report_official ro ON ro.country_id = rt.country_id
		JOIN country co ON co.country_id = rt.country_id
		ORDER BY rt.official_count DESC, co.name, ro.language
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query report: %w", err)
	}
	defer rows.Close()

	out := []models.ReportRow{}
	for rows.Next() {
		var row models.ReportRow
		if err := rows.Scan(&row.Country, &row.Language, &row.OfficialCount); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read report rows: %w", err)
	}

	c.prof.Observe("top_official_report", start, len(out))
	return out, nil
}

// dropReportTables discards both staging tables. Conditional drops, so
// calling it on a connection that never created them succeeds too.
func dropReportTables(ctx context.Context, conn *sql.Conn) error {
	for _, table := range []string{"report_official", "report_tally"} {
		if _, err := conn.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			return fmt.Errorf("failed to drop %s: %w", table, err)
		}
	}
	return nil
}
