// Copyright (c) 2026 Caleb Doyle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package queries

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/calebds/worldquery/models"
)

// RegionTree walks the continent → region → country hierarchy from a
// named continent. A single recursive step joins the previous
// iteration against a derived edge relation, since recursive CTEs
// allow only one recursive term.
func (c *Corpus) RegionTree(ctx context.Context, continent string) ([]models.TreeRow, error) {
	start := time.Now()

	rows, err := c.db.QueryContext(ctx, `
		WITH RECURSIVE tree(id, name, kind, depth) AS (
			SELECT continent_id, name, 'continent', 0
			FROM continent
			WHERE name = $1
			UNION ALL
			SELECT e.id, e.name, e.kind, t.depth + 1
			FROM (
				SELECT region_id AS id, name, 'region' AS kind,
				       continent_id AS parent, 'continent' AS parent_kind
				FROM region
				UNION ALL
				SELECT country_id, name, 'country', region_id, 'region'
				FROM country
			) e
			JOIN tree t ON t.id = e.parent AND t.kind = e.parent_kind
		)
		SELECT kind, name, depth
		FROM tree
		ORDER BY depth, kind, name
	`, continent)
	if err != nil {
		return nil, fmt.Errorf("failed to query region tree: %w", err)
	}
	defer rows.Close()

	out := []models.TreeRow{}
	for rows.Next() {
		var row models.TreeRow
		if err := rows.Scan(&row.Kind, &row.Name, &row.Depth); err != nil {
			return nil, fmt.Errorf("failed to scan tree row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tree rows: %w", err)
	}

	c.prof.Observe("region_tree", start, len(out))
	return out, nil
}

// ReachableFrom computes the transitive closure of countries reachable
// from the named origin over the distance table. UNION (not UNION ALL)
// discards already-seen rows each iteration, so the query reaches a
// fixed point even on cyclic adjacency data. The origin itself is
// excluded from the result.
func (c *Corpus) ReachableFrom(ctx context.Context, origin string) ([]int64, error) {
	originID, err := c.ResolveCountry(ctx, origin)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	rows, err := c.db.QueryContext(ctx, `
		WITH RECURSIVE reachable(country_id) AS (
			SELECT country_id FROM country WHERE country_id = $1
			UNION
			SELECT d.destination
			FROM country_distance d
			JOIN reachable r ON r.country_id = d.origin
		)
		SELECT country_id
		FROM reachable
		WHERE country_id <> $2
		ORDER BY country_id
	`, originID, originID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reachability: %w", err)
	}
	defer rows.Close()

	out := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan reachable id: %w", err)
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reachable ids: %w", err)
	}

	c.prof.Observe("reachable_from", start, len(out))
	return out, nil
}

// ReachableFromBFS is the host-side equivalent of ReachableFrom: a
// breadth-first expansion over the adjacency rows with a visited set
// standing in for the engine's fixed-point detection. Both forms must
// return the same closure.
func (c *Corpus) ReachableFromBFS(ctx context.Context, origin string) ([]int64, error) {
	originID, err := c.ResolveCountry(ctx, origin)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	rows, err := c.db.QueryContext(ctx, `SELECT origin, destination FROM country_distance`)
	if err != nil {
		return nil, fmt.Errorf("failed to load adjacency rows: %w", err)
	}
	defer rows.Close()

	adjacency := map[int64][]int64{}
	for rows.Next() {
		var from, to int64
		if err := rows.Scan(&from, &to); err != nil {
			return nil, fmt.Errorf("failed to scan adjacency row: %w", err)
		}
		adjacency[from] = append(adjacency[from], to)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read adjacency rows: %w", err)
	}

	visited := map[int64]bool{originID: true}
	frontier := []int64{originID}
	for len(frontier) > 0 {
		next := []int64{}
		for _, id := range frontier {
			for _, dest := range adjacency[id] {
				if !visited[dest] {
					visited[dest] = true
					next = append(next, dest)
				}
			}
		}
		frontier = next
	}

	out := []int64{}
	for id := range visited {
		if id != originID {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	c.prof.Observe("reachable_from_bfs", start, len(out))
	return out, nil
}
