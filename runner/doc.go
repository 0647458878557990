// Copyright (c) 2026 Caleb Doyle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package runner sequences the demonstration steps over the query corpus.

A Runner is built once with the pool, config and optional profiler:

	r := runner.New(conn, cfg, prof)
	err := r.Run(ctx)

Steps run in a fixed order on a single session and stop at the first
failure. Steps that exercise two forms of the same query (join vs
subquery, CASE vs gdp_band, recursive CTE vs BFS) verify agreement
before reporting, so a successful run is itself a correctness check.
Mutating steps clean up behind themselves, which keeps the run
repeatable against a persistent database.
*/
package runner
