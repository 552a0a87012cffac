// Package linkage matches songbook entries against canonical songs and turns
// fuzzy similarity into linkage decisions.
//
// The Engine scores a (canonical song, songbook entry) pair on weighted
// dimensions: printed title vs the Hawaiian and English canonical titles,
// composer name after abbreviation expansion, and a set of pluggable bonus
// rules (by default a small boost for entries carrying a publication year).
// The aggregate confidence in [0, 100] is bucketed into high/medium/low
// tiers, which drive whether a pair auto-links or queues for human review.
//
// Persistence is behind the Store interface. Decision writes are idempotent
// upserts keyed on the (canonical, entry) pair, so a failed batch is safe to
// re-run. A songbook entry accepts at most one confirmed link; the store
// reports ErrEntryLinked when an auto-link loses that race, and the engine
// downgrades the losing decision to needs_review instead of failing the run.
package linkage
