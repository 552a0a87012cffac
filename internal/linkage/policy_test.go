package linkage

import "testing"

func TestPolicyTierBoundaries(t *testing.T) {
	p := DefaultPolicy()

	tests := []struct {
		confidence float64
		want       Tier
	}{
		{100, TierHigh},
		{95, TierHigh},
		{94.999, TierMedium},
		{70, TierMedium},
		{69.999, TierLow},
		{20, TierLow},
		{0, TierLow},
	}
	for _, tt := range tests {
		if got := p.Tier(tt.confidence); got != tt.want {
			t.Errorf("Tier(%v) = %v, want %v", tt.confidence, got, tt.want)
		}
	}
}

func TestPolicyTierPartition(t *testing.T) {
	// Every confidence in [0, 100] maps to exactly one tier.
	p := DefaultPolicy()
	for c := 0.0; c <= 100; c += 0.5 {
		tier := p.Tier(c)
		if tier != TierHigh && tier != TierMedium && tier != TierLow {
			t.Fatalf("Tier(%v) = %v, not a known tier", c, tier)
		}
	}
}

func TestPolicyNormalizedBackfill(t *testing.T) {
	p := Policy{HighThreshold: -1, TitleWeight: 2, AlgorithmVersion: ""}.normalized()
	d := DefaultPolicy()

	if p.HighThreshold != d.HighThreshold {
		t.Errorf("HighThreshold = %v, want default %v", p.HighThreshold, d.HighThreshold)
	}
	if p.TitleWeight != d.TitleWeight {
		t.Errorf("TitleWeight = %v, want default %v", p.TitleWeight, d.TitleWeight)
	}
	if p.AlgorithmVersion != d.AlgorithmVersion {
		t.Errorf("AlgorithmVersion = %q, want default %q", p.AlgorithmVersion, d.AlgorithmVersion)
	}
}

func TestPolicyNormalizedKeepsValid(t *testing.T) {
	p := Policy{
		HighThreshold:            90,
		MediumThreshold:          60,
		LowThreshold:             0,
		MinRelevance:             10,
		TitleWeight:              0.6,
		ComposerWeight:           0.2,
		ExactTitleThreshold:      97,
		ComposerConfirmThreshold: 85,
		AlgorithmVersion:         "v2.0-test",
	}.normalized()

	if p.HighThreshold != 90 || p.MediumThreshold != 60 || p.MinRelevance != 10 {
		t.Errorf("normalized altered valid thresholds: %+v", p)
	}
	if p.TitleWeight != 0.6 || p.ComposerWeight != 0.2 {
		t.Errorf("normalized altered valid weights: %+v", p)
	}
	if p.AlgorithmVersion != "v2.0-test" {
		t.Errorf("normalized altered version: %q", p.AlgorithmVersion)
	}
}
