// Copyright (c) 2026 Caleb Doyle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package queries

import (
	"context"
	"fmt"
	"time"
)

// GenerateDistances rebuilds the distance table from scratch: a cross
// join of the country table with itself (origin ≠ destination) with a
// randomized distance per pair. Returns the number of pairs created.
func (c *Corpus) GenerateDistances(ctx context.Context) (int64, error) {
	start := time.Now()

	if _, err := c.db.ExecContext(ctx, `DELETE FROM country_distance`); err != nil {
		return 0, fmt.Errorf("failed to clear distances: %w", err)
	}

	res, err := c.db.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO country_distance (origin, destination, distance)
		SELECT a.country_id, b.country_id, %s
		FROM country a
		CROSS JOIN country b
		WHERE a.country_id <> b.country_id
	`, c.randomDistanceSQL()))
	if err != nil {
		return 0, fmt.Errorf("failed to generate distances: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count generated distances: %w", err)
	}

	c.prof.Observe("generate_distances", start, int(n))
	return n, nil
}

// PruneDistances deletes roughly percent% of the distance rows at
// random and returns how many were removed.
func (c *Corpus) PruneDistances(ctx context.Context, percent int) (int64, error) {
	start := time.Now()

	res, err := c.db.ExecContext(ctx, fmt.Sprintf(`
		DELETE FROM country_distance WHERE %s < $1
	`, c.randomPercentSQL()), percent)
	if err != nil {
		return 0, fmt.Errorf("failed to prune distances: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count pruned distances: %w", err)
	}

	c.prof.Observe("prune_distances", start, int(n))
	return n, nil
}

// IndexDistances adds the index on the distance column used by the
// range count. Affects performance only; CountWithinRange must return
// the same value before and after.
func (c *Corpus) IndexDistances(ctx context.Context) error {
	start := time.Now()

	if _, err := c.db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_country_distance_distance ON country_distance(distance)
	`); err != nil {
		return fmt.Errorf("failed to index distances: %w", err)
	}

	c.prof.Observe("index_distances", start, 0)
	return nil
}

// CountWithinRange counts the destinations within maxDistance of an
// origin country.
func (c *Corpus) CountWithinRange(ctx context.Context, originID int64, maxDistance float64) (int, error) {
	start := time.Now()

	var n int
	err := c.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM country_distance
		WHERE origin = $1 AND distance <= $2
	`, originID, maxDistance).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count distances in range: %w", err)
	}

	c.prof.Observe("count_within_range", start, 1)
	return n, nil
}

// randomDistanceSQL is the per-engine expression for a random distance
// in (0, 20000].
func (c *Corpus) randomDistanceSQL() string {
	if c.driver == "postgres" {
		return "floor(random() * 20000) + 1"
	}
	return "(ABS(RANDOM()) % 20000) + 1"
}

// randomPercentSQL is the per-engine expression for a uniform value in
// [0, 100).
func (c *Corpus) randomPercentSQL() string {
	if c.driver == "postgres" {
		return "random() * 100"
	}
	return "(ABS(RANDOM()) % 100)"
}
