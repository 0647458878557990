// Copyright (c) 2026 Caleb Doyle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package queries

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/calebds/worldquery/models"
	"github.com/calebds/worldquery/profile"
)

// Corpus holds the query set against the world schema. All operations
// run on a single pool; the driver name selects the few expressions
// (randomness) that differ between engines.
type Corpus struct {
	db     *sql.DB
	driver string
	prof   *profile.Profiler
}

// New creates a Corpus. driver is "sqlite" or "postgres"; prof may be
// nil to disable statement timing.
func New(db *sql.DB, driver string, prof *profile.Profiler) *Corpus {
	return &Corpus{db: db, driver: driver, prof: prof}
}

// ResolveCountry returns the identifier for a country name.
func (c *Corpus) ResolveCountry(ctx context.Context, name string) (int64, error) {
	var id int64
	err := c.db.QueryRowContext(ctx, `
		SELECT country_id FROM country WHERE name = $1
	`, name).Scan(&id)

	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("%w: %s", models.ErrCountryNotFound, name)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to resolve country: %w", err)
	}

	return id, nil
}
