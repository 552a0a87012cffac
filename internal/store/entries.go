package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"melelink/internal/linkage"
)

const entryColumns = `id, printed_song_title, composer, pub_year, songbook_name, canonical_mele_id`

// InsertEntry stores a new songbook entry, computing its normalized
// comparison columns, and returns the assigned id.
func (s *Store) InsertEntry(ctx context.Context, entry linkage.SongbookEntry) (int64, error) {
	if entry.PrintedTitle == "" {
		return 0, errors.New("songbook entry requires a printed title")
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO songbook_entries (
            printed_song_title, composer, pub_year, songbook_name,
            canonical_mele_id, normalized_printed_title, normalized_composer,
            created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.PrintedTitle,
		nullableString(entry.Composer),
		nullableString(entry.PubYear),
		nullableString(entry.SongbookName),
		nullableString(entry.CanonicalID),
		nullableString(s.normalizer.NormalizeText(entry.PrintedTitle)),
		nullableString(s.normalizer.NormalizeComposer(entry.Composer)),
		now,
		now,
	)
	if err != nil {
		return 0, fmt.Errorf("insert songbook entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// Entry fetches a songbook entry by id. A missing id returns nil without
// error.
func (s *Store) Entry(ctx context.Context, id int64) (*linkage.SongbookEntry, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM songbook_entries WHERE id = ?`, id)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get songbook entry: %w", err)
	}
	return entry, nil
}

// UnlinkedEntries lists entries lacking a confirmed link, in ascending id
// order. The order is load-bearing: the engine's ranking keeps it for equal
// confidence values.
func (s *Store) UnlinkedEntries(ctx context.Context) ([]linkage.SongbookEntry, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+entryColumns+` FROM songbook_entries WHERE canonical_mele_id IS NULL ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list unlinked entries: %w", err)
	}
	defer rows.Close()

	var entries []linkage.SongbookEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan songbook entry: %w", err)
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

// LinkEntry marks an entry as confirmed-linked to a canonical song. Linking
// is first-writer-wins: the guarded UPDATE only succeeds while the entry is
// unlinked (or already linked to the same song, making the call idempotent).
// Returns linkage.ErrEntryLinked when the entry belongs to another song.
func (s *Store) LinkEntry(ctx context.Context, entryID int64, canonicalID string) error {
	if canonicalID == "" {
		return errors.New("canonical id is required")
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	res, err := s.db.ExecContext(
		ctx,
		`UPDATE songbook_entries
         SET canonical_mele_id = ?, updated_at = ?
         WHERE id = ? AND (canonical_mele_id IS NULL OR canonical_mele_id = ?)`,
		canonicalID,
		now,
		entryID,
		canonicalID,
	)
	if err != nil {
		return fmt.Errorf("link entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("link entry rows affected: %w", err)
	}
	if affected > 0 {
		return nil
	}

	existing, err := s.Entry(ctx, entryID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("songbook entry %d not found", entryID)
	}
	return fmt.Errorf("entry %d is linked to %s: %w", entryID, existing.CanonicalID, linkage.ErrEntryLinked)
}

// UnlinkEntry clears an entry's confirmed link.
func (s *Store) UnlinkEntry(ctx context.Context, entryID int64) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(
		ctx,
		`UPDATE songbook_entries SET canonical_mele_id = NULL, updated_at = ? WHERE id = ?`,
		now,
		entryID,
	)
	if err != nil {
		return fmt.Errorf("unlink entry: %w", err)
	}
	return nil
}

func scanEntry(row rowScanner) (*linkage.SongbookEntry, error) {
	var (
		entry        linkage.SongbookEntry
		composer     sql.NullString
		pubYear      sql.NullString
		songbookName sql.NullString
		canonicalID  sql.NullString
	)
	if err := row.Scan(&entry.ID, &entry.PrintedTitle, &composer, &pubYear, &songbookName, &canonicalID); err != nil {
		return nil, err
	}
	entry.Composer = composer.String
	entry.PubYear = pubYear.String
	entry.SongbookName = songbookName.String
	entry.CanonicalID = canonicalID.String
	return &entry, nil
}
