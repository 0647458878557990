// Copyright (c) 2026 Caleb Doyle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package queries

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebds/worldquery/models"
	"github.com/calebds/worldquery/testutil"
)

func TestJoinAndSubqueryLookupsAgree(t *testing.T) {
	corpus, _ := newTestCorpus(t)
	ctx := context.Background()

	// Includes a country with no languages in common pairs and a name
	// that resolves to no row; both forms must return identical sets.
	for _, name := range []string{"Spain", "France", "Argentina", "Brazil", "Japan", "Atlantis"} {
		byJoin, err := corpus.LanguagesByCountryJoin(ctx, name)
		require.NoError(t, err, name)

		bySubquery, err := corpus.LanguagesByCountrySubquery(ctx, name)
		require.NoError(t, err, name)

		require.Equal(t, byJoin, bySubquery, "lookup forms diverged for %s", name)
	}
}

func TestLanguagesByCountryJoin(t *testing.T) {
	corpus, _ := newTestCorpus(t)

	got, err := corpus.LanguagesByCountryJoin(context.Background(), "Spain")
	require.NoError(t, err)

	require.Equal(t, []models.CountryLanguageRow{
		{Language: "French", Official: false},
		{Language: "Spanish", Official: true},
	}, got)
}

func TestSpeakersUnionKeepsDuplicates(t *testing.T) {
	corpus, _ := newTestCorpus(t)

	got, err := corpus.SpeakersUnion(context.Background(), "Spanish", "French", 100)
	require.NoError(t, err)

	// Spanish: Argentina, Brazil, Spain. French: France, Spain.
	// Spain qualifies under both filters and must appear twice.
	require.Equal(t, []models.SpeakerRow{
		{Country: "Argentina", Region: "Southern Cone", Language: "Spanish"},
		{Country: "Brazil", Region: "Southern Cone", Language: "Spanish"},
		{Country: "France", Region: "Western Europe", Language: "French"},
		{Country: "Spain", Region: "Southern Europe", Language: "French"},
		{Country: "Spain", Region: "Southern Europe", Language: "Spanish"},
	}, got)
}

func TestSpeakersUnionRespectsLimit(t *testing.T) {
	corpus, _ := newTestCorpus(t)

	got, err := corpus.SpeakersUnion(context.Background(), "Spanish", "French", 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
}

func TestMultilinguals(t *testing.T) {
	corpus, _ := newTestCorpus(t)

	got, err := corpus.Multilinguals(context.Background(), "Spanish", "French", 1)
	require.NoError(t, err)

	// Only Spain speaks both of the named languages.
	require.Equal(t, []models.MultilingualRow{{Country: "Spain", LanguageCount: 2}}, got)

	// The HAVING threshold is strict: no returned group may sit at or
	// below it.
	for _, row := range got {
		require.Greater(t, row.LanguageCount, 1)
	}
}

func TestMultilingualsThresholdExcludesAll(t *testing.T) {
	corpus, _ := newTestCorpus(t)

	got, err := corpus.Multilinguals(context.Background(), "Spanish", "French", 2)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSeededScenario(t *testing.T) {
	corpus, conn := newEmptyCorpus(t)
	ctx := context.Background()

	// Three countries, two languages, country A linked to both
	// languages officially.
	testutil.AddContinent(t, conn, 1, "Testland")
	testutil.AddRegion(t, conn, 1, "Test Region", 1)
	testutil.AddCountry(t, conn, 1, "Alpha", 1)
	testutil.AddCountry(t, conn, 2, "Beta", 1)
	testutil.AddCountry(t, conn, 3, "Gamma", 1)
	testutil.AddLanguage(t, conn, 1, "Lingua")
	testutil.AddLanguage(t, conn, 2, "Kotoba")
	testutil.LinkLanguage(t, conn, 1, 1, true)
	testutil.LinkLanguage(t, conn, 1, 2, true)
	testutil.LinkLanguage(t, conn, 2, 1, false)

	langs, err := corpus.LanguagesByCountryJoin(ctx, "Alpha")
	require.NoError(t, err)
	require.Equal(t, []models.CountryLanguageRow{
		{Language: "Kotoba", Official: true},
		{Language: "Lingua", Official: true},
	}, langs)

	multi, err := corpus.Multilinguals(ctx, "Lingua", "Kotoba", 1)
	require.NoError(t, err)
	require.Equal(t, []models.MultilingualRow{{Country: "Alpha", LanguageCount: 2}}, multi)
}

func TestResolveCountryMissing(t *testing.T) {
	corpus, _ := newTestCorpus(t)

	_, err := corpus.ResolveCountry(context.Background(), "Atlantis")
	require.ErrorIs(t, err, models.ErrCountryNotFound)
}
