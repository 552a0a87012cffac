package linkage

import (
	"context"
	"errors"
)

// ErrEntryLinked reports that a songbook entry already holds a confirmed
// link to a different canonical song. It is distinct from generic store
// failures so callers can re-queue the single losing candidate instead of
// abandoning the run.
var ErrEntryLinked = errors.New("songbook entry already linked")

// Store is the persistence collaborator the engine consumes. Implementations
// must return entries in ascending id order from UnlinkedEntries and enforce
// that an entry accepts at most one confirmed link.
type Store interface {
	// CanonicalSong returns the song for id, or nil without error when the
	// id does not resolve.
	CanonicalSong(ctx context.Context, id string) (*CanonicalSong, error)

	// UnlinkedEntries lists every songbook entry lacking a confirmed link,
	// ordered by ascending entry id.
	UnlinkedEntries(ctx context.Context) ([]SongbookEntry, error)

	// SaveDecisions upserts a batch of decisions atomically. Upserts are
	// idempotent on the (canonical id, entry id) key: a re-scored pair
	// updates in place, never duplicates.
	SaveDecisions(ctx context.Context, decisions []Decision) error

	// LinkEntry marks an entry as confirmed-linked to a canonical song.
	// Returns ErrEntryLinked when the entry is already linked elsewhere.
	LinkEntry(ctx context.Context, entryID int64, canonicalID string) error
}
