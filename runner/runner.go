// Copyright (c) 2026 Caleb Doyle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package runner

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"github.com/calebds/worldquery/cliparse"
	"github.com/calebds/worldquery/models"
	"github.com/calebds/worldquery/profile"
	"github.com/calebds/worldquery/queries"
)

// Step is one named demonstration over the corpus.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// Runner executes the demonstration steps in a fixed order on a single
// session. Steps that pair two forms of the same query verify that the
// forms agree before reporting.
type Runner struct {
	conn   *sql.DB
	corpus *queries.Corpus
	steps  []Step
}

func New(conn *sql.DB, cfg cliparse.Config, prof *profile.Profiler) *Runner {
	r := &Runner{
		conn:   conn,
		corpus: queries.New(conn, cfg.DatabaseType, prof),
	}

	r.steps = []Step{
		{"language_lookup", r.languageLookup},
		{"speakers_union", r.speakersUnion},
		{"multilinguals", r.multilinguals},
		{"above_average_population", r.aboveAveragePopulation},
		{"region_tree", r.regionTree},
		{"gdp_bands", r.gdpBands},
		{"official_report", r.officialReport},
		{"adjust_stats", r.adjustStats},
		{"distances", r.distances},
		{"reachability", r.reachability},
		{"partition", r.partition},
	}

	return r
}

// Steps returns the step names in execution order.
func (r *Runner) Steps() []string {
	names := make([]string, len(r.steps))
	for i, s := range r.steps {
		names[i] = s.Name
	}
	return names
}

// Run executes every step in order and stops at the first failure.
func (r *Runner) Run(ctx context.Context) error {
	for _, s := range r.steps {
		start := time.Now()
		slog.Info("step started", "step", s.Name)

		if err := s.Run(ctx); err != nil {
			return fmt.Errorf("step %s: %w", s.Name, err)
		}

		slog.Info("step completed",
			"step", s.Name,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
	return nil
}

func (r *Runner) languageLookup(ctx context.Context) error {
	byJoin, err := r.corpus.LanguagesByCountryJoin(ctx, "Spain")
	if err != nil {
		return err
	}
	bySubquery, err := r.corpus.LanguagesByCountrySubquery(ctx, "Spain")
	if err != nil {
		return err
	}
	if !reflect.DeepEqual(byJoin, bySubquery) {
		return fmt.Errorf("join and subquery lookups disagree: %d vs %d rows", len(byJoin), len(bySubquery))
	}

	slog.Info("language lookup", "country", "Spain", "languages", len(byJoin))
	return nil
}

func (r *Runner) speakersUnion(ctx context.Context) error {
	rows, err := r.corpus.SpeakersUnion(ctx, "Spanish", "French", 10)
	if err != nil {
		return err
	}

	slog.Info("speakers union", "languages", "Spanish+French", "rows", len(rows))
	return nil
}

func (r *Runner) multilinguals(ctx context.Context) error {
	rows, err := r.corpus.Multilinguals(ctx, "Spanish", "French", 1)
	if err != nil {
		return err
	}

	for _, row := range rows {
		slog.Info("multilingual country", "country", row.Country, "languages", row.LanguageCount)
	}
	return nil
}

func (r *Runner) aboveAveragePopulation(ctx context.Context) error {
	rows, err := r.corpus.AboveAveragePopulation(ctx, 2020)
	if err != nil {
		return err
	}

	slog.Info("above-average populations", "year", 2020, "countries", len(rows))
	return nil
}

func (r *Runner) regionTree(ctx context.Context) error {
	rows, err := r.corpus.RegionTree(ctx, "Europe")
	if err != nil {
		return err
	}

	slog.Info("region tree", "continent", "Europe", "nodes", len(rows))
	return nil
}

func (r *Runner) gdpBands(ctx context.Context) error {
	byCase, err := r.corpus.GDPBandsCase(ctx, 2020)
	if err != nil {
		return err
	}
	byFunc, err := r.corpus.GDPBandsFunc(ctx, 2020)
	if err != nil {
		return err
	}
	if !reflect.DeepEqual(byCase, byFunc) {
		return errors.New("CASE and gdp_band() classifications disagree")
	}
	for _, row := range byCase {
		if want := models.GDPBand(row.GDP); row.Band != want {
			return fmt.Errorf("engine classified %s as %q, host says %q", row.Country, row.Band, want)
		}
	}

	slog.Info("gdp bands", "year", 2020, "rows", len(byCase))
	return nil
}

func (r *Runner) officialReport(ctx context.Context) error {
	rows, err := r.corpus.TopOfficialReport(ctx, 10)
	if err != nil {
		return err
	}

	slog.Info("official language report", "rows", len(rows))
	return nil
}

func (r *Runner) adjustStats(ctx context.Context) error {
	const statYear = 2020
	const insertYear = 2021

	countryID, err := r.corpus.ResolveCountry(ctx, "Spain")
	if err != nil {
		return err
	}

	// Clear any snapshot left by a previous run so the commit ending
	// is reproducible.
	if _, err := r.conn.ExecContext(ctx,
		`DELETE FROM country_stats WHERE country_id = $1 AND year = $2`, countryID, insertYear); err != nil {
		return fmt.Errorf("failed to clear demo snapshot: %w", err)
	}

	next := models.CountryStat{
		CountryID:  countryID,
		Year:       insertYear,
		GDP:        1.31e12,
		Population: 47_600_000,
	}

	committed := r.corpus.AdjustStats(ctx, countryID, statYear, 5e8, next)
	if !committed.Committed {
		return fmt.Errorf("expected commit ending: %w", committed.Cause)
	}
	slog.Info("unit of work committed", "country", "Spain", "inserted_year", insertYear)

	// The same insert again violates the primary key, forcing the
	// rollback ending.
	rolledBack := r.corpus.AdjustStats(ctx, countryID, statYear, 5e8, next)
	if rolledBack.Committed {
		return errors.New("duplicate insert unexpectedly committed")
	}
	slog.Info("unit of work rolled back", "country", "Spain", "cause", rolledBack.Cause)

	return nil
}

func (r *Runner) distances(ctx context.Context) error {
	generated, err := r.corpus.GenerateDistances(ctx)
	if err != nil {
		return err
	}

	originID, err := r.corpus.ResolveCountry(ctx, "Spain")
	if err != nil {
		return err
	}

	before, err := r.corpus.CountWithinRange(ctx, originID, 10_000)
	if err != nil {
		return err
	}
	if err := r.corpus.IndexDistances(ctx); err != nil {
		return err
	}
	after, err := r.corpus.CountWithinRange(ctx, originID, 10_000)
	if err != nil {
		return err
	}
	if before != after {
		return fmt.Errorf("index changed a result: %d vs %d", before, after)
	}

	pruned, err := r.corpus.PruneDistances(ctx, 30)
	if err != nil {
		return err
	}

	slog.Info("distance demo", "generated", generated, "in_range", after, "pruned", pruned)
	return nil
}

func (r *Runner) reachability(ctx context.Context) error {
	recursive, err := r.corpus.ReachableFrom(ctx, "Spain")
	if err != nil {
		return err
	}
	bfs, err := r.corpus.ReachableFromBFS(ctx, "Spain")
	if err != nil {
		return err
	}
	if !reflect.DeepEqual(recursive, bfs) {
		return fmt.Errorf("recursive and BFS closures disagree: %d vs %d nodes", len(recursive), len(bfs))
	}

	slog.Info("reachability", "origin", "Spain", "reachable", len(recursive))
	return nil
}

func (r *Runner) partition(ctx context.Context) error {
	if err := r.corpus.SplitStatsByYear(ctx, 2000); err != nil {
		return err
	}

	partitioned, err := r.corpus.PartitionedCount(ctx, 2000)
	if err != nil {
		return err
	}
	unpartitioned, err := r.corpus.UnpartitionedCount(ctx, 2000)
	if err != nil {
		return err
	}
	if partitioned != unpartitioned {
		return fmt.Errorf("partitioned count %d != base count %d", partitioned, unpartitioned)
	}

	slog.Info("partition demo", "pivot_year", 2000, "rows_at_or_after", partitioned)
	return nil
}
