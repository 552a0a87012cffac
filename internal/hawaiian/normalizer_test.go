package hawaiian

import (
	"slices"
	"testing"
)

func TestNormalizeText(t *testing.T) {
	n := New()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"okina proper", "Aloha ʻOe", "aloha oe"},
		{"okina omitted", "Aloha Oe", "aloha oe"},
		{"okina right quote", "Aloha ’Oe", "aloha oe"},
		{"okina left quote", "Aloha ‘Oe", "aloha oe"},
		{"okina grave", "Aloha `Oe", "aloha oe"},
		{"okina apostrophe", "Aloha 'Oe", "aloha oe"},
		{"macrons", "Nā Lei O Hawaiʻi", "na lei o hawaii"},
		{"macron uppercase", "Ō Kaʻū", "o kau"},
		{"punctuation", "Aloha, Oe! (Farewell)", "aloha oe farewell"},
		{"whitespace runs", "  Aloha   Oe  ", "aloha oe"},
		{"hyphen and quotes", `"Ka-lā"`, "kala"},
		{"empty", "", ""},
		{"punctuation only", "?!.,", ""},
		{"combining macron fallback", "Nā Lei", "na lei"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.NormalizeText(tt.in); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeTextIdempotent(t *testing.T) {
	n := New()
	inputs := []string{
		"Aloha ʻOe",
		"Nā Lei O Hawaiʻi",
		"Ka Makani Kaʻili Aloha",
		"Queen Liliʻuokalani",
		"a - b",
		"  mixed,  CASE!  ",
		"",
	}
	for _, in := range inputs {
		once := n.NormalizeText(in)
		twice := n.NormalizeText(once)
		if once != twice {
			t.Errorf("NormalizeText not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalizeTextMarkInsensitive(t *testing.T) {
	n := New()

	// Titles differing only in macron presence or okina transcription must
	// normalize identically.
	variants := []string{
		"Ka Makani Kaʻili Aloha",
		"Ka Makani Ka'ili Aloha",
		"Ka Makani Ka’ili Aloha",
		"Ka Makani Kaili Aloha",
		"Kā Mākani Kaʻili Aloha",
	}
	want := n.NormalizeText(variants[0])
	for _, v := range variants[1:] {
		if got := n.NormalizeText(v); got != want {
			t.Errorf("NormalizeText(%q) = %q, want %q", v, got, want)
		}
	}
}

func TestNormalizeComposer(t *testing.T) {
	n := New()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"abbreviation expands", "Chas E. King", "charles e king"},
		{"canonical unchanged", "Charles E. King", "charles e king"},
		{"nickname expands", "Charlie King", "charles king"},
		{"wm expands", "Wm Kualii", "william kualii"},
		{"unknown tokens pass through", "Lena Machado", "lena machado"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.NormalizeComposer(tt.in); got != tt.want {
				t.Errorf("NormalizeComposer(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeComposerIdempotent(t *testing.T) {
	n := New()
	for _, in := range []string{"Chas E. King", "Willie K", "Queen Liliʻuokalani"} {
		once := n.NormalizeComposer(in)
		if twice := n.NormalizeComposer(once); once != twice {
			t.Errorf("NormalizeComposer not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestSearchVariants(t *testing.T) {
	n := New()

	variants := n.SearchVariants("Aloha ʻOe")
	if len(variants) == 0 {
		t.Fatal("expected variants")
	}
	if !slices.Contains(variants, "Aloha ʻOe") {
		t.Error("variants should include the raw input")
	}
	if !slices.Contains(variants, "aloha oe") {
		t.Error("variants should include the normalized form")
	}
	for _, v := range variants {
		if v == "" {
			t.Error("variants must not contain empty strings")
		}
	}

	seen := make(map[string]struct{}, len(variants))
	for _, v := range variants {
		if _, dup := seen[v]; dup {
			t.Errorf("duplicate variant %q", v)
		}
		seen[v] = struct{}{}
	}
}

func TestSearchVariantsEmpty(t *testing.T) {
	n := New()
	if got := n.SearchVariants(""); got != nil {
		t.Errorf("SearchVariants(\"\") = %v, want nil", got)
	}
}
