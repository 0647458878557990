// Copyright (c) 2026 Caleb Doyle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package queries

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebds/worldquery/testutil"
)

func TestGenerateDistances(t *testing.T) {
	corpus, conn := newTestCorpus(t)
	ctx := context.Background()

	n, err := corpus.GenerateDistances(ctx)
	require.NoError(t, err)

	// 5 countries → 5×4 ordered pairs.
	require.EqualValues(t, 20, n)

	var count int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM country_distance`).Scan(&count))
	require.Equal(t, 20, count)

	var outOfRange int
	require.NoError(t, conn.QueryRow(
		`SELECT COUNT(*) FROM country_distance WHERE distance < 1 OR distance > 20000`).Scan(&outOfRange))
	require.Zero(t, outOfRange, "randomized distances escaped their range")
}

func TestPruneDistancesBounds(t *testing.T) {
	corpus, conn := newTestCorpus(t)
	ctx := context.Background()

	_, err := corpus.GenerateDistances(ctx)
	require.NoError(t, err)

	// percent 0 can never satisfy the random predicate.
	deleted, err := corpus.PruneDistances(ctx, 0)
	require.NoError(t, err)
	require.Zero(t, deleted)

	// percent 100 always does.
	deleted, err = corpus.PruneDistances(ctx, 100)
	require.NoError(t, err)
	require.EqualValues(t, 20, deleted)

	var remaining int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM country_distance`).Scan(&remaining))
	require.Zero(t, remaining)
}

func TestIndexDoesNotChangeCount(t *testing.T) {
	corpus, _ := newTestCorpus(t)
	ctx := context.Background()

	// The seeded graph has exactly one edge from Spain within 2000.
	before, err := corpus.CountWithinRange(ctx, testutil.SpainID, 2000)
	require.NoError(t, err)
	require.Equal(t, 1, before)

	require.NoError(t, corpus.IndexDistances(ctx))

	after, err := corpus.CountWithinRange(ctx, testutil.SpainID, 2000)
	require.NoError(t, err)
	require.Equal(t, before, after, "index changed a result set")

	// Creating the index again is a no-op.
	require.NoError(t, corpus.IndexDistances(ctx))
}
