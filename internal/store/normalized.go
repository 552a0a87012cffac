package store

import (
	"context"
	"database/sql"
	"fmt"
)

// PopulateNormalized recomputes the normalized comparison columns for every
// canonical song and songbook entry. Run after bulk imports that bypassed
// the store, or after the normalizer's alias tables change. Returns the
// number of songs and entries updated.
func (s *Store) PopulateNormalized(ctx context.Context) (songs, entries int, err error) {
	songs, err = s.populateSongColumns(ctx)
	if err != nil {
		return 0, 0, err
	}
	entries, err = s.populateEntryColumns(ctx)
	if err != nil {
		return songs, 0, err
	}
	return songs, entries, nil
}

func (s *Store) populateSongColumns(ctx context.Context) (int, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT canonical_mele_id, canonical_title_hawaiian, canonical_title_english, primary_composer
         FROM canonical_mele ORDER BY canonical_mele_id`,
	)
	if err != nil {
		return 0, fmt.Errorf("query canonical songs: %w", err)
	}
	defer rows.Close()

	type songUpdate struct {
		id                              string
		hawaiian, english, composerNorm string
	}
	var updates []songUpdate
	for rows.Next() {
		var (
			id            string
			titleHawaiian sql.NullString
			titleEnglish  sql.NullString
			composer      sql.NullString
		)
		if err := rows.Scan(&id, &titleHawaiian, &titleEnglish, &composer); err != nil {
			return 0, fmt.Errorf("scan canonical song: %w", err)
		}
		updates = append(updates, songUpdate{
			id:           id,
			hawaiian:     s.normalizer.NormalizeText(titleHawaiian.String),
			english:      s.normalizer.NormalizeText(titleEnglish.String),
			composerNorm: s.normalizer.NormalizeComposer(composer.String),
		})
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin populate tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()
	for _, u := range updates {
		_, err := tx.ExecContext(
			ctx,
			`UPDATE canonical_mele
             SET normalized_title_hawaiian = ?, normalized_title_english = ?, normalized_composer = ?
             WHERE canonical_mele_id = ?`,
			nullableString(u.hawaiian),
			nullableString(u.english),
			nullableString(u.composerNorm),
			u.id,
		)
		if err != nil {
			return 0, fmt.Errorf("update normalized song %s: %w", u.id, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit populate: %w", err)
	}
	return len(updates), nil
}

func (s *Store) populateEntryColumns(ctx context.Context) (int, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, printed_song_title, composer FROM songbook_entries ORDER BY id`,
	)
	if err != nil {
		return 0, fmt.Errorf("query songbook entries: %w", err)
	}
	defer rows.Close()

	type entryUpdate struct {
		id                  int64
		title, composerNorm string
	}
	var updates []entryUpdate
	for rows.Next() {
		var (
			id       int64
			title    string
			composer sql.NullString
		)
		if err := rows.Scan(&id, &title, &composer); err != nil {
			return 0, fmt.Errorf("scan songbook entry: %w", err)
		}
		updates = append(updates, entryUpdate{
			id:           id,
			title:        s.normalizer.NormalizeText(title),
			composerNorm: s.normalizer.NormalizeComposer(composer.String),
		})
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin populate tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()
	for _, u := range updates {
		_, err := tx.ExecContext(
			ctx,
			`UPDATE songbook_entries
             SET normalized_printed_title = ?, normalized_composer = ?
             WHERE id = ?`,
			nullableString(u.title),
			nullableString(u.composerNorm),
			u.id,
		)
		if err != nil {
			return 0, fmt.Errorf("update normalized entry %d: %w", u.id, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit populate: %w", err)
	}
	return len(updates), nil
}
