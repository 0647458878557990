// Copyright (c) 2026 Caleb Doyle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package queries implements the analytical query corpus over the world
schema. Each operation is one SQL pattern with a typed result surface.

# Construction

	corpus := queries.New(conn, "sqlite", prof)

The driver name only selects the random-value expressions that differ
between engines; all other statements run unchanged on both. prof may
be nil.

# Pattern Families

  - languages.go: join vs. scalar-subquery lookup (equivalent row
    sets), UNION ALL with outer-join enrichment, GROUP BY + HAVING
  - stats.go: non-recursive CTE referenced twice, CASE banding vs. the
    gdp_band engine function
  - hierarchy.go: recursive hierarchy walk, recursive reachability via
    UNION fixed point, and its host-side BFS equivalent
  - report.go: staged aggregation through connection-scoped temporary
    tables with idempotent teardown
  - txn.go: all-or-nothing update+insert returning an explicit TxResult
  - distances.go: cross-join bulk generation, random pruning, index
    creation that must not change the range count
  - partition.go: range split of the stats table behind a view, count
    parity with the base table

# Placeholders

Statements use $1-style placeholders in strictly increasing order,
never reusing a number, which both lib/pq and modernc.org/sqlite bind
positionally.
*/
package queries
