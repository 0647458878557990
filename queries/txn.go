// Copyright (c) 2026 Caleb Doyle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/calebds/worldquery/models"
)

// TxResult reports how a unit of work ended: committed, or rolled back
// with the cause attached. Exactly one of the two endings happens per
// call.
type TxResult struct {
	Committed bool
	Cause     error
}

// AdjustStats applies a GDP correction to one (country, year) snapshot
// and inserts the next snapshot as a single unit of work. Either both
// changes persist or neither does; any failure, including a constraint
// violation on the insert, rolls back the whole transaction. No reader
// on another connection can observe the update without the insert.
func (c *Corpus) AdjustStats(ctx context.Context, countryID int64, year int, gdpDelta float64, next models.CountryStat) TxResult {
	start := time.Now()

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return TxResult{Cause: fmt.Errorf("failed to begin transaction: %w", err)}
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE country_stats SET gdp = gdp + $1
		WHERE country_id = $2 AND year = $3
	`, gdpDelta, countryID, year); err != nil {
		tx.Rollback()
		return TxResult{Cause: fmt.Errorf("failed to update stats: %w", err)}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO country_stats (country_id, year, gdp, population)
		VALUES ($1, $2, $3, $4)
	`, next.CountryID, next.Year, next.GDP, next.Population); err != nil {
		tx.Rollback()
		return TxResult{Cause: fmt.Errorf("failed to insert stats: %w", err)}
	}

	if err := tx.Commit(); err != nil {
		return TxResult{Cause: fmt.Errorf("failed to commit: %w", err)}
	}

	c.prof.Observe("adjust_stats", start, 2)
	return TxResult{Committed: true}
}
