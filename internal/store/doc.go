// Package store persists canonical songs, songbook entries, and linkage
// decisions in SQLite.
//
// The schema mirrors the three logical tables of the linkage system:
// canonical_mele (reference songs), songbook_entries (free-text candidates
// with an optional confirmed link), and matching_status (one decision row
// per (canonical, entry) pair, upserted in place on re-scoring). Normalized
// comparison columns are precomputed on write and refreshable in bulk with
// PopulateNormalized.
//
// Migrations are embedded and applied on Open, tracked in schema_migrations.
package store
