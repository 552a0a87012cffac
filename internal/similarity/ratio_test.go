package similarity

import (
	"math"
	"testing"
)

func TestRatioEqual(t *testing.T) {
	for _, s := range []string{"a", "aloha oe", "na lei o hawaii", "ʻokina"} {
		if got := Ratio(s, s); got != 1 {
			t.Errorf("Ratio(%q, %q) = %v, want 1", s, s, got)
		}
	}
}

func TestRatioEmpty(t *testing.T) {
	if got := Ratio("", ""); got != 1 {
		t.Errorf("Ratio of two empty strings = %v, want 1", got)
	}
	if got := Ratio("aloha", ""); got != 0 {
		t.Errorf("Ratio against empty = %v, want 0", got)
	}
	if got := Ratio("", "aloha"); got != 0 {
		t.Errorf("Ratio against empty = %v, want 0", got)
	}
}

func TestRatioDisjoint(t *testing.T) {
	if got := Ratio("abc", "xyz"); got != 0 {
		t.Errorf("Ratio(disjoint) = %v, want 0", got)
	}
}

func TestRatioKnownValues(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		// Longest block "bcd" (3), no further matches: 2*3/8.
		{"abcd", "bcde", 0.75},
		// Greedy decomposition matches "kalakaua" then "king": M = 12.
		{"king kalakaua", "kingkalakaua", 2.0 * 12 / 25},
		// "aloha o" (7) plus the trailing "e" (1): M = 8.
		{"aloha oe", "aloha one", 2.0 * 8 / 17},
	}
	for _, tt := range tests {
		got := Ratio(tt.a, tt.b)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Ratio(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRatioSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"aloha oe", "aloha one"},
		{"na lei o hawaii", "nalei o hawaii"},
		{"charles e king", "chas e king"},
		{"abcd", "bcde"},
	}
	for _, p := range pairs {
		ab := Ratio(p[0], p[1])
		ba := Ratio(p[1], p[0])
		if math.Abs(ab-ba) > 1e-12 {
			t.Errorf("Ratio not symmetric for (%q, %q): %v vs %v", p[0], p[1], ab, ba)
		}
	}
}

func TestRatioBounds(t *testing.T) {
	pairs := [][2]string{
		{"aloha", "alohaaloha"},
		{"x", "xx"},
		{"hawaii calls", "hawaiian war chant"},
	}
	for _, p := range pairs {
		got := Ratio(p[0], p[1])
		if got < 0 || got > 1 {
			t.Errorf("Ratio(%q, %q) = %v, out of [0,1]", p[0], p[1], got)
		}
		if got == 1 && p[0] != p[1] {
			t.Errorf("Ratio(%q, %q) = 1 for unequal inputs", p[0], p[1])
		}
	}
}

func TestRatioRuneAware(t *testing.T) {
	// Multi-byte text must be measured in runes, not bytes.
	if got := Ratio("ʻāina", "ʻāina"); got != 1 {
		t.Errorf("Ratio(rune-identical) = %v, want 1", got)
	}
	got := Ratio("ʻāina", "aina")
	if got <= 0 || got >= 1 {
		t.Errorf("Ratio(overlapping rune text) = %v, want in (0,1)", got)
	}
}
