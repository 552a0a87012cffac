package linkage

import (
	"strings"

	"melelink/internal/similarity"
)

// BonusRule is a pluggable scoring dimension awarding a flat number of
// points when an entry satisfies its predicate. Bonuses are presence
// signals, not similarity signals.
type BonusRule struct {
	Name    string
	Points  float64
	Applies func(SongbookEntry) bool
}

// PubYearBonus awards points to entries carrying a well-formed numeric
// publication year. This is the only rule the system ships with; richer
// signals (multiple songbook appearances of the same song) plug in alongside
// it without touching the engine.
func PubYearBonus(points float64) BonusRule {
	return BonusRule{
		Name:   "pub_year",
		Points: points,
		Applies: func(entry SongbookEntry) bool {
			return isNumeric(entry.PubYear)
		},
	}
}

func isNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// titleSimilarity compares two titles after normalization, as a 0-100
// percentage. Equal normalized forms short-circuit to 100 without invoking
// the sequence ratio. An absent side scores 0.
func (e *Engine) titleSimilarity(canonical, printed string) float64 {
	if canonical == "" || printed == "" {
		return 0
	}
	a := e.normalizer.NormalizeText(canonical)
	b := e.normalizer.NormalizeText(printed)
	if a == b {
		return 100
	}
	return similarity.Ratio(a, b) * 100
}

// composerSimilarity compares two composer names after composer-specific
// normalization, as a 0-100 percentage.
func (e *Engine) composerSimilarity(canonical, printed string) float64 {
	if canonical == "" || printed == "" {
		return 0
	}
	a := e.normalizer.NormalizeComposer(canonical)
	b := e.normalizer.NormalizeComposer(printed)
	if a == b {
		return 100
	}
	return similarity.Ratio(a, b) * 100
}

// Score produces a MatchResult for one (canonical song, songbook entry)
// pair. Missing fields degrade their dimension to zero; scoring never fails.
func (e *Engine) Score(song CanonicalSong, entry SongbookEntry) MatchResult {
	var breakdown Breakdown

	hawaiian := e.titleSimilarity(song.TitleHawaiian, entry.PrintedTitle)
	english := e.titleSimilarity(song.TitleEnglish, entry.PrintedTitle)
	titleScore := max(hawaiian, english) * e.policy.TitleWeight
	breakdown.TitleHawaiianSimilarity = hawaiian
	breakdown.TitleEnglishSimilarity = english
	breakdown.TitleScore = titleScore

	composer := e.composerSimilarity(song.PrimaryComposer, entry.Composer)
	composerScore := composer * e.policy.ComposerWeight
	breakdown.ComposerSimilarity = composer
	breakdown.ComposerScore = composerScore

	total := titleScore + composerScore
	for _, rule := range e.bonuses {
		if rule.Points <= 0 || rule.Applies == nil || !rule.Applies(entry) {
			continue
		}
		if breakdown.Bonuses == nil {
			breakdown.Bonuses = make(map[string]float64, len(e.bonuses))
		}
		breakdown.Bonuses[rule.Name] = rule.Points
		total += rule.Points
	}
	total = clampConfidence(total)

	// Method tag order is load-bearing for downstream auditing: title
	// exactness first, composer confirmation second and it wins.
	method := MethodFuzzy
	if hawaiian >= e.policy.ExactTitleThreshold || english >= e.policy.ExactTitleThreshold {
		method = MethodExact
	}
	if composer >= e.policy.ComposerConfirmThreshold {
		method = MethodComposerConfirmed
	}

	return MatchResult{
		CanonicalID: song.ID,
		EntryID:     entry.ID,
		Entry:       entry,
		Confidence:  total,
		Method:      method,
		Breakdown:   breakdown,
		Tier:        e.policy.Tier(total),
	}
}

func clampConfidence(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
