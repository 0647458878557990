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

// LanguagesByCountryJoin returns every language linked to a country,
// resolved by joining across all three tables.
func (c *Corpus) LanguagesByCountryJoin(ctx context.Context, name string) ([]models.CountryLanguageRow, error) {
	start := time.Now()

	rows, err := c.db.QueryContext(ctx, `
		SELECT l.language, cl.official
		FROM country co
		JOIN country_language cl ON cl.country_id = co.country_id
		JOIN language l ON l.language_id = cl.language_id
		WHERE co.name = $1
		ORDER BY l.language
	`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to query languages by join: %w", err)
	}
	defer rows.Close()

	out, err := scanLanguageRows(rows)
	if err != nil {
		return nil, err
	}

	c.prof.Observe("languages_join", start, len(out))
	return out, nil
}

// LanguagesByCountrySubquery returns the same row set as the join
// form, but resolves the country identifier in a scalar subquery and
// filters the association table with it.
func (c *Corpus) LanguagesByCountrySubquery(ctx context.Context, name string) ([]models.CountryLanguageRow, error) {
	start := time.Now()

	rows, err := c.db.QueryContext(ctx, `
		SELECT l.language, cl.official
		FROM country_language cl
		JOIN language l ON l.language_id = cl.language_id
		WHERE cl.country_id = (SELECT country_id FROM country WHERE name = $1)
		ORDER BY l.language
	`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to query languages by subquery: %w", err)
	}
	defer rows.Close()

	out, err := scanLanguageRows(rows)
	if err != nil {
		return nil, err
	}

	c.prof.Observe("languages_subquery", start, len(out))
	return out, nil
}

// SpeakersUnion returns the non-deduplicating union of the countries
// speaking langA and those speaking langB, enriched with country and
// region names via outer joins. A country matching both filters
// appears twice; that duplication is the point of the UNION ALL form.
func (c *Corpus) SpeakersUnion(ctx context.Context, langA, langB string, limit int) ([]models.SpeakerRow, error) {
	start := time.Now()

	rows, err := c.db.QueryContext(ctx, `
		SELECT co.name, r.name, l.language
		FROM (
			SELECT cl.country_id, cl.language_id
			FROM country_language cl
			JOIN language la ON la.language_id = cl.language_id
			WHERE la.language = $1
			UNION ALL
			SELECT cl.country_id, cl.language_id
			FROM country_language cl
			JOIN language lb ON lb.language_id = cl.language_id
			WHERE lb.language = $2
		) u
		LEFT JOIN country co ON co.country_id = u.country_id
		LEFT JOIN region r ON r.region_id = co.region_id
		LEFT JOIN language l ON l.language_id = u.language_id
		ORDER BY co.name, l.language
		LIMIT $3
	`, langA, langB, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query speakers union: %w", err)
	}
	defer rows.Close()

	out := []models.SpeakerRow{}
	for rows.Next() {
		var row models.SpeakerRow
		if err := rows.Scan(&row.Country, &row.Region, &row.Language); err != nil {
			return nil, fmt.Errorf("failed to scan speaker row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read speaker rows: %w", err)
	}

	c.prof.Observe("speakers_union", start, len(out))
	return out, nil
}

// Multilinguals groups the association rows by country, counts how
// many of the two named languages each country speaks, and keeps only
// the groups above the threshold. Filter, group, aggregate, then
// filter again on the aggregate.
func (c *Corpus) Multilinguals(ctx context.Context, langA, langB string, threshold int) ([]models.MultilingualRow, error) {
	start := time.Now()

	rows, err := c.db.QueryContext(ctx, `
		SELECT co.name, COUNT(DISTINCT cl.language_id)
		FROM country_language cl
		JOIN language l ON l.language_id = cl.language_id
		JOIN country co ON co.country_id = cl.country_id
		WHERE l.language IN ($1, $2)
		GROUP BY co.name
		HAVING COUNT(DISTINCT cl.language_id) > $3
		ORDER BY co.name
	`, langA, langB, threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to query multilinguals: %w", err)
	}
	defer rows.Close()

	out := []models.MultilingualRow{}
	for rows.Next() {
		var row models.MultilingualRow
		if err := rows.Scan(&row.Country, &row.LanguageCount); err != nil {
			return nil, fmt.Errorf("failed to scan multilingual row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read multilingual rows: %w", err)
	}

	c.prof.Observe("multilinguals", start, len(out))
	return out, nil
}

func scanLanguageRows(rows *sql.Rows) ([]models.CountryLanguageRow, error) {
	out := []models.CountryLanguageRow{}
	for rows.Next() {
		var row models.CountryLanguageRow
		if err := rows.Scan(&row.Language, &row.Official); err != nil {
			return nil, fmt.Errorf("failed to scan language row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read language rows: %w", err)
	}
	return out, nil
}
