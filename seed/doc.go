// Copyright (c) 2026 Caleb Doyle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package seed bulk-loads the deterministic sample world dataset:
// fixed continents, regions, countries and language links, plus yearly
// GDP/population snapshots generated from a seeded RNG. Loading is a
// single transaction and skips databases that already hold data.
package seed
