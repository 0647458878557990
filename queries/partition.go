// Copyright (c) 2026 Caleb Doyle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package queries

import (
	"context"
	"fmt"
	"time"
)

// SplitStatsByYear repopulates the two range partitions from the base
// stats table: rows at or after the pivot year go to the recent table,
// older rows to the historic one. The country_stats_partitioned view
// unites them, so year-filtered queries against the view must agree
// with the unpartitioned table.
func (c *Corpus) SplitStatsByYear(ctx context.Context, pivotYear int) error {
	start := time.Now()

	if _, err := c.db.ExecContext(ctx, `DELETE FROM country_stats_recent`); err != nil {
		return fmt.Errorf("failed to clear recent partition: %w", err)
	}
	if _, err := c.db.ExecContext(ctx, `DELETE FROM country_stats_historic`); err != nil {
		return fmt.Errorf("failed to clear historic partition: %w", err)
	}

	if _, err := c.db.ExecContext(ctx, `
		INSERT INTO country_stats_recent (country_id, year, gdp, population)
		SELECT country_id, year, gdp, population
		FROM country_stats
		WHERE year >= $1
	`, pivotYear); err != nil {
		return fmt.Errorf("failed to fill recent partition: %w", err)
	}

	if _, err := c.db.ExecContext(ctx, `
		INSERT INTO country_stats_historic (country_id, year, gdp, population)
		SELECT country_id, year, gdp, population
		FROM country_stats
		WHERE year < $1
	`, pivotYear); err != nil {
		return fmt.Errorf("failed to fill historic partition: %w", err)
	}

	c.prof.Observe("split_stats_by_year", start, 0)
	return nil
}

// PartitionedCount counts stats rows at or after minYear through the
// partitioned view.
func (c *Corpus) PartitionedCount(ctx context.Context, minYear int) (int, error) {
	return c.countStats(ctx, "partitioned_count", "country_stats_partitioned", minYear)
}

// UnpartitionedCount is the same count against the base table. Must
// always equal PartitionedCount after SplitStatsByYear.
func (c *Corpus) UnpartitionedCount(ctx context.Context, minYear int) (int, error) {
	return c.countStats(ctx, "unpartitioned_count", "country_stats", minYear)
}

func (c *Corpus) countStats(ctx context.Context, name, table string, minYear int) (int, error) {
	start := time.Now()

	var n int
	err := c.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE year >= $1`, table), minYear).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s rows: %w", table, err)
	}

	c.prof.Observe(name, start, 1)
	return n, nil
}
