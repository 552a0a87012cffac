package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"melelink/internal/linkage"
)

// UpsertSong inserts or updates a canonical song, computing its normalized
// comparison columns. An empty id is assigned a fresh UUID. Returns the
// stored id.
func (s *Store) UpsertSong(ctx context.Context, song linkage.CanonicalSong) (string, error) {
	if song.ID == "" {
		song.ID = uuid.NewString()
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO canonical_mele (
            canonical_mele_id, canonical_title_hawaiian, canonical_title_english,
            primary_composer, normalized_title_hawaiian, normalized_title_english,
            normalized_composer, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT (canonical_mele_id) DO UPDATE SET
            canonical_title_hawaiian = excluded.canonical_title_hawaiian,
            canonical_title_english = excluded.canonical_title_english,
            primary_composer = excluded.primary_composer,
            normalized_title_hawaiian = excluded.normalized_title_hawaiian,
            normalized_title_english = excluded.normalized_title_english,
            normalized_composer = excluded.normalized_composer,
            updated_at = excluded.updated_at`,
		song.ID,
		nullableString(song.TitleHawaiian),
		nullableString(song.TitleEnglish),
		nullableString(song.PrimaryComposer),
		nullableString(s.normalizer.NormalizeText(song.TitleHawaiian)),
		nullableString(s.normalizer.NormalizeText(song.TitleEnglish)),
		nullableString(s.normalizer.NormalizeComposer(song.PrimaryComposer)),
		now,
		now,
	)
	if err != nil {
		return "", fmt.Errorf("upsert canonical song: %w", err)
	}
	return song.ID, nil
}

// CanonicalSong fetches a canonical song by id. A missing id returns nil
// without error.
func (s *Store) CanonicalSong(ctx context.Context, id string) (*linkage.CanonicalSong, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT canonical_mele_id, canonical_title_hawaiian, canonical_title_english, primary_composer
         FROM canonical_mele WHERE canonical_mele_id = ?`,
		id,
	)
	song, err := scanSong(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get canonical song: %w", err)
	}
	return song, nil
}

// ListSongs returns every canonical song ordered by id.
func (s *Store) ListSongs(ctx context.Context) ([]linkage.CanonicalSong, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT canonical_mele_id, canonical_title_hawaiian, canonical_title_english, primary_composer
         FROM canonical_mele ORDER BY canonical_mele_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list canonical songs: %w", err)
	}
	defer rows.Close()

	var songs []linkage.CanonicalSong
	for rows.Next() {
		song, err := scanSong(rows)
		if err != nil {
			return nil, fmt.Errorf("scan canonical song: %w", err)
		}
		songs = append(songs, *song)
	}
	return songs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSong(row rowScanner) (*linkage.CanonicalSong, error) {
	var (
		song            linkage.CanonicalSong
		titleHawaiian   sql.NullString
		titleEnglish    sql.NullString
		primaryComposer sql.NullString
	)
	if err := row.Scan(&song.ID, &titleHawaiian, &titleEnglish, &primaryComposer); err != nil {
		return nil, err
	}
	song.TitleHawaiian = titleHawaiian.String
	song.TitleEnglish = titleEnglish.String
	song.PrimaryComposer = primaryComposer.String
	return &song, nil
}
