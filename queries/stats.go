// Copyright (c) 2026 Caleb Doyle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package queries

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/calebds/worldquery/models"
)

// AboveAveragePopulation names the joined (country, population) set
// once as a CTE and references it twice: in the outer query and in the
// inner average subquery. Equivalent to inlining the join both times.
func (c *Corpus) AboveAveragePopulation(ctx context.Context, year int) ([]models.PopulationRow, error) {
	start := time.Now()

	rows, err := c.db.QueryContext(ctx, `
		WITH pop AS (
			SELECT co.name, s.population
			FROM country_stats s
			JOIN country co ON co.country_id = s.country_id
			WHERE s.year = $1
		)
		SELECT name, population
		FROM pop
		WHERE population > (SELECT AVG(population) FROM pop)
		ORDER BY population DESC
	`, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query above-average populations: %w", err)
	}
	defer rows.Close()

	out := []models.PopulationRow{}
	for rows.Next() {
		var row models.PopulationRow
		if err := rows.Scan(&row.Country, &row.Population); err != nil {
			return nil, fmt.Errorf("failed to scan population row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read population rows: %w", err)
	}

	c.prof.Observe("above_average_population", start, len(out))
	return out, nil
}

// GDPBandsCase labels each yearly stat with its band via an inline
// CASE expression built from the shared thresholds.
func (c *Corpus) GDPBandsCase(ctx context.Context, year int) ([]models.GDPBandRow, error) {
	return c.gdpBands(ctx, "gdp_bands_case", bandCaseSQL("s.gdp"), year)
}

// GDPBandsFunc labels each yearly stat via the named gdp_band engine
// function. Must agree with GDPBandsCase for every row.
func (c *Corpus) GDPBandsFunc(ctx context.Context, year int) ([]models.GDPBandRow, error) {
	return c.gdpBands(ctx, "gdp_bands_func", "gdp_band(s.gdp)", year)
}

func (c *Corpus) gdpBands(ctx context.Context, name, bandExpr string, year int) ([]models.GDPBandRow, error) {
	start := time.Now()

	rows, err := c.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT co.name, s.year, s.gdp, %s
		FROM country_stats s
		JOIN country co ON co.country_id = s.country_id
		WHERE s.year = $1
		ORDER BY co.name
	`, bandExpr), year)
	if err != nil {
		return nil, fmt.Errorf("failed to query GDP bands: %w", err)
	}
	defer rows.Close()

	out := []models.GDPBandRow{}
	for rows.Next() {
		var row models.GDPBandRow
		if err := rows.Scan(&row.Country, &row.Year, &row.GDP, &row.Band); err != nil {
			return nil, fmt.Errorf("failed to scan GDP band row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read GDP band rows: %w", err)
	}

	c.prof.Observe(name, start, len(out))
	return out, nil
}

// bandCaseSQL renders the three-band CASE expression for a GDP column.
// Thresholds come from models so the SQL form cannot drift from the
// pure classifier.
func bandCaseSQL(col string) string {
	low := strconv.FormatFloat(models.LowCeiling, 'f', -1, 64)
	medium := strconv.FormatFloat(models.MediumCeiling, 'f', -1, 64)

	return fmt.Sprintf(
		"CASE WHEN %[1]s < %[2]s THEN '%[3]s' WHEN %[1]s <= %[4]s THEN '%[5]s' ELSE '%[6]s' END",
		col, low, models.BandLow, medium, models.BandMedium, models.BandHigh,
	)
}
