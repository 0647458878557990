// Copyright (c) 2026 Caleb Doyle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package profile records statement wall time host-side.

The engines' own profiling surfaces are not portable, so timing is
measured around statement execution instead:

	start := time.Now()
	// run the statement
	prof.Observe("languages_join", start, len(rows))

A nil *Profiler is a safe no-op, so callers never branch on whether
profiling was requested. Summarize logs one line per entry with
humanized row counts and durations, tagged with a per-run UUID.
*/
package profile
