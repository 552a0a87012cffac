package linkage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sort"

	"melelink/internal/hawaiian"
)

// Engine scores songbook entries against canonical songs and drives linkage
// decisions. Construct with New; the zero value is not usable.
type Engine struct {
	store      Store
	normalizer *hawaiian.Normalizer
	policy     Policy
	bonuses    []BonusRule
	logger     *slog.Logger
}

// New builds an Engine. A nil logger disables logging. When no bonus rules
// are supplied the default publication-year rule applies with 5 points.
func New(store Store, policy Policy, logger *slog.Logger, bonuses ...BonusRule) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt32)}))
	}
	if len(bonuses) == 0 {
		bonuses = []BonusRule{PubYearBonus(5)}
	}
	return &Engine{
		store:      store,
		normalizer: hawaiian.New(),
		policy:     policy.normalized(),
		bonuses:    bonuses,
		logger:     logger,
	}
}

// Policy returns the engine's effective (normalized) policy.
func (e *Engine) Policy() Policy {
	return e.policy
}

// Normalizer exposes the engine's normalizer for index-population use.
func (e *Engine) Normalizer() *hawaiian.Normalizer {
	return e.normalizer
}

// FindMatches scores every unlinked songbook entry against the canonical
// song, drops results below the minimum-relevance floor, and returns the
// remainder sorted by descending confidence. Ties keep ascending entry id
// order. An unknown canonical id yields an empty list, not an error.
func (e *Engine) FindMatches(ctx context.Context, canonicalID string) ([]MatchResult, error) {
	song, err := e.store.CanonicalSong(ctx, canonicalID)
	if err != nil {
		return nil, fmt.Errorf("load canonical song %s: %w", canonicalID, err)
	}
	if song == nil {
		e.logger.Debug("canonical song not found", "canonical_id", canonicalID)
		return nil, nil
	}

	entries, err := e.store.UnlinkedEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list unlinked entries: %w", err)
	}

	results := make([]MatchResult, 0, len(entries))
	for _, entry := range entries {
		result := e.Score(*song, entry)
		if result.Confidence < e.policy.MinRelevance {
			continue
		}
		results = append(results, result)
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Confidence > results[j].Confidence
	})

	e.logger.Debug("scored candidates",
		"canonical_id", canonicalID,
		"candidates", len(entries),
		"matches", len(results))
	return results, nil
}

// Decide derives the linkage decision for a match. High-tier results
// auto-link unless autoLink is false; medium and low tiers queue for review.
// Low-confidence results that cleared the relevance floor still surface for
// human triage rather than being discarded.
func (e *Engine) Decide(result MatchResult, autoLink bool) Decision {
	status := StatusNeedsReview
	if result.Tier == TierHigh && autoLink {
		status = StatusAutoLinked
	}
	return Decision{
		CanonicalID:      result.CanonicalID,
		EntryID:          result.EntryID,
		Confidence:       result.Confidence,
		Method:           result.Method,
		Status:           status,
		AlgorithmVersion: e.policy.AlgorithmVersion,
		Notes:            breakdownNotes(result.Breakdown),
	}
}

// Process runs a full matching pass for one canonical song: find matches,
// derive decisions, persist them as one atomic batch, and confirm the link
// for auto-linked entries. A link conflict downgrades that single decision
// to needs_review and the pass continues. Store failures are returned to the
// caller un-retried; the decision upserts are idempotent, so re-running the
// whole pass is safe.
func (e *Engine) Process(ctx context.Context, canonicalID string, autoLink bool) (*Summary, error) {
	matches, err := e.FindMatches(ctx, canonicalID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		CanonicalID:  canonicalID,
		TotalMatches: len(matches),
		Matches:      matches,
	}

	decisions := make([]Decision, 0, len(matches))
	for _, match := range matches {
		switch match.Tier {
		case TierHigh:
			summary.HighConfidence++
		case TierMedium:
			summary.MediumConfidence++
		default:
			summary.LowConfidence++
		}
		decisions = append(decisions, e.Decide(match, autoLink))
	}

	if len(decisions) == 0 {
		return summary, nil
	}
	if err := e.store.SaveDecisions(ctx, decisions); err != nil {
		return nil, fmt.Errorf("save decisions for %s: %w", canonicalID, err)
	}

	for _, decision := range decisions {
		if decision.Status != StatusAutoLinked {
			summary.QueuedForReview++
			continue
		}
		err := e.store.LinkEntry(ctx, decision.EntryID, canonicalID)
		switch {
		case err == nil:
			summary.AutoLinked++
		case errors.Is(err, ErrEntryLinked):
			// Lost the race to another canonical song. Surface the result
			// for human triage instead of dropping it.
			decision.Status = StatusNeedsReview
			decision.Notes = "auto-link conflict: entry already linked; " + decision.Notes
			if err := e.store.SaveDecisions(ctx, []Decision{decision}); err != nil {
				return nil, fmt.Errorf("requeue conflicted entry %d: %w", decision.EntryID, err)
			}
			summary.Conflicts++
			summary.QueuedForReview++
			e.logger.Warn("auto-link conflict",
				"canonical_id", canonicalID,
				"entry_id", decision.EntryID)
		default:
			return nil, fmt.Errorf("link entry %d: %w", decision.EntryID, err)
		}
	}

	e.logger.Info("processed canonical song",
		"canonical_id", canonicalID,
		"matches", summary.TotalMatches,
		"auto_linked", summary.AutoLinked,
		"queued_for_review", summary.QueuedForReview,
		"conflicts", summary.Conflicts)
	return summary, nil
}

// breakdownNotes renders the per-dimension scores for the decision audit
// trail.
func breakdownNotes(breakdown Breakdown) string {
	data, err := json.Marshal(breakdown)
	if err != nil {
		return ""
	}
	return "scoring: " + string(data)
}
