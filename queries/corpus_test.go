// Copyright (c) 2026 Caleb Doyle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package queries

import (
	"database/sql"
	"testing"

	"github.com/calebds/worldquery/testutil"
)

// newTestCorpus returns a corpus over a fresh in-memory database
// loaded with the fixed testutil dataset.
func newTestCorpus(t *testing.T) (*Corpus, *sql.DB) {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	testutil.SeedWorld(t, conn)
	return New(conn, "sqlite", nil), conn
}

// newEmptyCorpus returns a corpus over a fresh database with only the
// schema, for tests that seed their own scenario.
func newEmptyCorpus(t *testing.T) (*Corpus, *sql.DB) {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	return New(conn, "sqlite", nil), conn
}
