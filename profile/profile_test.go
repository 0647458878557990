// Copyright (c) 2026 Caleb Doyle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package profile

import (
	"testing"
	"time"
)

func TestObserveRecordsWhenEnabled(t *testing.T) {
	p := New(true)

	p.Observe("languages_join", time.Now().Add(-5*time.Millisecond), 3)
	p.Observe("speakers_union", time.Now(), 7)

	entries := p.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Statement != "languages_join" || entries[0].Rows != 3 {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[0].Elapsed <= 0 {
		t.Errorf("expected positive elapsed time, got %v", entries[0].Elapsed)
	}
}

func TestObserveIgnoredWhenDisabled(t *testing.T) {
	p := New(false)

	p.Observe("languages_join", time.Now(), 3)

	if got := len(p.Entries()); got != 0 {
		t.Errorf("disabled profiler recorded %d entries", got)
	}
}

func TestNilProfilerIsSafe(t *testing.T) {
	var p *Profiler

	p.Observe("anything", time.Now(), 1)
	p.Summarize()

	if p.Entries() != nil {
		t.Error("nil profiler should return nil entries")
	}
}
