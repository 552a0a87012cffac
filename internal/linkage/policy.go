package linkage

import (
	"melelink/internal/config"
)

// Policy centralizes matching thresholds, dimension weights, and the
// algorithm version stamped onto decisions.
type Policy struct {
	// Tier thresholds on the 0-100 confidence scale. Tiering is a total,
	// non-overlapping partition: >= High is high, >= Medium is medium,
	// everything else is low.
	HighThreshold   float64
	MediumThreshold float64
	LowThreshold    float64

	// MinRelevance drops results below this confidence before ranking.
	MinRelevance float64

	// Weights scale a 0-100 dimension similarity into its share of the total.
	TitleWeight    float64
	ComposerWeight float64

	// Method tagging thresholds.
	ExactTitleThreshold      float64
	ComposerConfirmThreshold float64

	AlgorithmVersion string
}

// DefaultPolicy returns the thresholds the system ships with.
func DefaultPolicy() Policy {
	return Policy{
		HighThreshold:            95,
		MediumThreshold:          70,
		LowThreshold:             0,
		MinRelevance:             20,
		TitleWeight:              0.5,
		ComposerWeight:           0.3,
		ExactTitleThreshold:      95,
		ComposerConfirmThreshold: 80,
		AlgorithmVersion:         "v1.0",
	}
}

// NewPolicy builds a Policy from application configuration.
func NewPolicy(cfg *config.Config) Policy {
	if cfg == nil {
		return DefaultPolicy()
	}
	m := cfg.Matching
	return Policy{
		HighThreshold:            m.HighThreshold,
		MediumThreshold:          m.MediumThreshold,
		LowThreshold:             m.LowThreshold,
		MinRelevance:             m.MinRelevance,
		TitleWeight:              m.TitleWeight,
		ComposerWeight:           m.ComposerWeight,
		ExactTitleThreshold:      m.ExactTitleThreshold,
		ComposerConfirmThreshold: m.ComposerConfirmThreshold,
		AlgorithmVersion:         m.AlgorithmVersion,
	}.normalized()
}

// Tier buckets a confidence value. The thresholds partition [0, 100] with no
// overlap; no other state influences the result.
func (p Policy) Tier(confidence float64) Tier {
	switch {
	case confidence >= p.HighThreshold:
		return TierHigh
	case confidence >= p.MediumThreshold:
		return TierMedium
	default:
		return TierLow
	}
}

// normalized backfills unusable values with defaults.
func (p Policy) normalized() Policy {
	d := DefaultPolicy()

	if p.HighThreshold <= 0 || p.HighThreshold > 100 {
		p.HighThreshold = d.HighThreshold
	}
	if p.MediumThreshold <= 0 || p.MediumThreshold > 100 {
		p.MediumThreshold = d.MediumThreshold
	}
	if p.LowThreshold < 0 || p.LowThreshold > 100 {
		p.LowThreshold = d.LowThreshold
	}
	if p.MinRelevance < 0 || p.MinRelevance > 100 {
		p.MinRelevance = d.MinRelevance
	}
	if p.TitleWeight <= 0 || p.TitleWeight > 1 {
		p.TitleWeight = d.TitleWeight
	}
	if p.ComposerWeight <= 0 || p.ComposerWeight > 1 {
		p.ComposerWeight = d.ComposerWeight
	}
	if p.ExactTitleThreshold <= 0 || p.ExactTitleThreshold > 100 {
		p.ExactTitleThreshold = d.ExactTitleThreshold
	}
	if p.ComposerConfirmThreshold <= 0 || p.ComposerConfirmThreshold > 100 {
		p.ComposerConfirmThreshold = d.ComposerConfirmThreshold
	}
	if p.AlgorithmVersion == "" {
		p.AlgorithmVersion = d.AlgorithmVersion
	}
	return p
}
