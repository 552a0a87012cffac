package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"melelink/internal/linkage"
)

// DecisionRecord is a stored linkage decision with its audit fields.
type DecisionRecord struct {
	linkage.Decision
	MatchedAt  time.Time
	ReviewedAt *time.Time
	ReviewedBy string
}

// SaveDecisions upserts a batch of decisions in one transaction. The upsert
// is keyed on the (canonical id, entry id) pair: re-scoring a pair updates
// the existing row. The whole batch commits or rolls back together.
func (s *Store) SaveDecisions(ctx context.Context, decisions []linkage.Decision) error {
	if len(decisions) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin decisions tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, decision := range decisions {
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO matching_status (
                canonical_mele_id, songbook_entry_id, match_confidence,
                match_method, match_status, matched_at, algorithm_version,
                notes, created_at
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
            ON CONFLICT (canonical_mele_id, songbook_entry_id) DO UPDATE SET
                match_confidence = excluded.match_confidence,
                match_method = excluded.match_method,
                match_status = excluded.match_status,
                matched_at = excluded.matched_at,
                algorithm_version = excluded.algorithm_version,
                notes = excluded.notes`,
			decision.CanonicalID,
			decision.EntryID,
			decision.Confidence,
			string(decision.Method),
			string(decision.Status),
			now,
			decision.AlgorithmVersion,
			nullableString(decision.Notes),
			now,
		)
		if err != nil {
			return fmt.Errorf("upsert decision (%s, %d): %w", decision.CanonicalID, decision.EntryID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit decisions: %w", err)
	}
	return nil
}

// DecisionsByStatus returns decisions with the given status, highest
// confidence first.
func (s *Store) DecisionsByStatus(ctx context.Context, status linkage.Status) ([]DecisionRecord, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT canonical_mele_id, songbook_entry_id, match_confidence, match_method,
                match_status, matched_at, reviewed_at, reviewed_by, algorithm_version, notes
         FROM matching_status WHERE match_status = ?
         ORDER BY match_confidence DESC, songbook_entry_id`,
		string(status),
	)
	if err != nil {
		return nil, fmt.Errorf("query decisions by status: %w", err)
	}
	defer rows.Close()

	var records []DecisionRecord
	for rows.Next() {
		var (
			rec        DecisionRecord
			confidence sql.NullFloat64
			method     sql.NullString
			matchedAt  string
			reviewedAt sql.NullString
			reviewedBy sql.NullString
			notes      sql.NullString
		)
		err := rows.Scan(
			&rec.CanonicalID,
			&rec.EntryID,
			&confidence,
			&method,
			(*string)(&rec.Status),
			&matchedAt,
			&reviewedAt,
			&reviewedBy,
			&rec.AlgorithmVersion,
			&notes,
		)
		if err != nil {
			return nil, fmt.Errorf("scan decision: %w", err)
		}
		rec.Confidence = confidence.Float64
		rec.Method = linkage.Method(method.String)
		rec.ReviewedBy = reviewedBy.String
		rec.Notes = notes.String
		if ts, err := time.Parse(time.RFC3339Nano, matchedAt); err == nil {
			rec.MatchedAt = ts
		}
		if reviewedAt.Valid {
			if ts, err := time.Parse(time.RFC3339Nano, reviewedAt.String); err == nil {
				rec.ReviewedAt = &ts
			}
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ConfirmDecision records a human approval: the decision row moves to
// confirmed with reviewer attribution and the entry's link is applied
// atomically with it. A pair without a prior engine decision gets a manual
// decision row, so reviewer-identified links need no scoring pass first.
func (s *Store) ConfirmDecision(ctx context.Context, canonicalID string, entryID int64, reviewer string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin confirm tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := tx.ExecContext(
		ctx,
		`UPDATE matching_status
         SET match_status = ?, reviewed_at = ?, reviewed_by = ?
         WHERE canonical_mele_id = ? AND songbook_entry_id = ?`,
		string(linkage.StatusConfirmed),
		now,
		nullableString(reviewer),
		canonicalID,
		entryID,
	)
	if err != nil {
		return fmt.Errorf("confirm decision: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("confirm decision rows affected: %w", err)
	}
	if affected == 0 {
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO matching_status (
                canonical_mele_id, songbook_entry_id, match_method, match_status,
                matched_at, reviewed_at, reviewed_by, created_at
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			canonicalID,
			entryID,
			string(linkage.MethodManual),
			string(linkage.StatusConfirmed),
			now,
			now,
			nullableString(reviewer),
			now,
		)
		if err != nil {
			return fmt.Errorf("record manual decision (%s, %d): %w", canonicalID, entryID, err)
		}
	}

	guard, err := tx.ExecContext(
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
		return fmt.Errorf("apply confirmed link: %w", err)
	}
	affected, err = guard.RowsAffected()
	if err != nil {
		return fmt.Errorf("apply confirmed link rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("entry %d is linked to another song: %w", entryID, linkage.ErrEntryLinked)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit confirm: %w", err)
	}
	return nil
}

// Stats summarizes table and decision counts.
type Stats struct {
	Songs           int
	Entries         int
	LinkedEntries   int
	Decisions       int
	DecisionsByKind map[linkage.Status]int
}

// Stats reports aggregate counts for the stats command.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{DecisionsByKind: make(map[linkage.Status]int)}

	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(1) FROM canonical_mele`, &stats.Songs},
		{`SELECT COUNT(1) FROM songbook_entries`, &stats.Entries},
		{`SELECT COUNT(1) FROM songbook_entries WHERE canonical_mele_id IS NOT NULL`, &stats.LinkedEntries},
		{`SELECT COUNT(1) FROM matching_status`, &stats.Decisions},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("count stats: %w", err)
		}
	}

	rows, err := s.db.QueryContext(ctx, `SELECT match_status, COUNT(1) FROM matching_status GROUP BY match_status`)
	if err != nil {
		return nil, fmt.Errorf("count decisions by status: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan decision count: %w", err)
		}
		stats.DecisionsByKind[linkage.Status(status)] = count
	}
	return stats, rows.Err()
}
