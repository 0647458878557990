// Copyright (c) 2026 Caleb Doyle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package profile

import (
	"log/slog"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// Entry is one recorded statement execution.
type Entry struct {
	Statement string
	Rows      int
	Elapsed   time.Duration
}

// Profiler records statement wall time when enabled. A nil Profiler is
// a safe no-op, so callers never have to branch on whether profiling
// was requested.
type Profiler struct {
	mu      sync.Mutex
	enabled bool
	runID   string
	entries []Entry
}

func New(enabled bool) *Profiler {
	return &Profiler{
		enabled: enabled,
		runID:   uuid.NewString(),
	}
}

// Observe records one statement execution. Pass the time captured
// before the statement ran and the number of rows it produced.
func (p *Profiler) Observe(statement string, start time.Time, rows int) {
	if p == nil || !p.enabled {
		return
	}

	elapsed := time.Since(start)

	p.mu.Lock()
	p.entries = append(p.entries, Entry{Statement: statement, Rows: rows, Elapsed: elapsed})
	p.mu.Unlock()
}

// Entries returns a copy of everything recorded so far.
func (p *Profiler) Entries() []Entry {
	if p == nil {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Entry(nil), p.entries...)
}

// Summarize logs one line per recorded statement plus a total.
func (p *Profiler) Summarize() {
	if p == nil || !p.enabled {
		return
	}

	entries := p.Entries()

	var total time.Duration
	for _, e := range entries {
		total += e.Elapsed
		slog.Info("statement profile",
			"run", p.runID,
			"statement", e.Statement,
			"rows", humanize.Comma(int64(e.Rows)),
			"elapsed", humanize.SIWithDigits(e.Elapsed.Seconds(), 2, "s"),
		)
	}

	slog.Info("profile summary",
		"run", p.runID,
		"statements", len(entries),
		"total", humanize.SIWithDigits(total.Seconds(), 2, "s"),
	)
}
