package hawaiian

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	spaceRun = regexp.MustCompile(`\s+`)
	punct    = regexp.MustCompile("[,.:;!?\\-()\\[\\]\"“”]")
)

// Normalizer holds the static lookup tables used to produce comparison forms.
// Construct once with New and share; all methods are read-only and safe for
// concurrent use.
type Normalizer struct {
	macrons         map[rune]rune
	okinaVariants   []string
	composerAliases map[string][]string
}

// New returns a Normalizer with the default alias tables.
func New() *Normalizer {
	return &Normalizer{
		macrons:         defaultMacrons(),
		okinaVariants:   defaultOkinaVariants(),
		composerAliases: defaultComposerAliases(),
	}
}

// NormalizeText applies the full pipeline: macron stripping, ʻokina deletion,
// punctuation and whitespace normalization, and lowercasing.
func (n *Normalizer) NormalizeText(text string) string {
	if text == "" {
		return ""
	}
	text = n.stripDiacritics(text)
	text = n.stripOkina(text)
	text = n.normalizeSpacing(text)
	return strings.ToLower(text)
}

// NormalizeComposer runs NormalizeText and then expands known name
// abbreviations token by token. Each matched token is replaced by the first
// (canonical) entry of its alias list.
func (n *Normalizer) NormalizeComposer(name string) string {
	normalized := n.NormalizeText(name)
	if normalized == "" {
		return ""
	}
	words := strings.Fields(normalized)
	for i, word := range words {
		if aliases, ok := n.composerAliases[word]; ok && len(aliases) > 0 {
			words[i] = aliases[0]
		}
	}
	return strings.Join(words, " ")
}

// SearchVariants returns the deduplicated comparison forms of text for
// index-time variant expansion: the raw input, the normalized form, forms
// with the ʻokina swapped among its common variants, and the
// diacritic-stripped form. Empty strings are excluded. The result is sorted;
// callers must not rely on any particular order.
func (n *Normalizer) SearchVariants(text string) []string {
	if text == "" {
		return nil
	}
	set := make(map[string]struct{})
	add := func(s string) {
		if s != "" {
			set[s] = struct{}{}
		}
	}

	add(text)
	add(n.NormalizeText(text))

	// Swap the proper ʻokina for its common mis-transcriptions.
	limit := min(3, len(n.okinaVariants))
	for _, variant := range n.okinaVariants[:limit] {
		add(n.NormalizeText(strings.ReplaceAll(text, "ʻ", variant)))
	}

	add(n.NormalizeText(n.stripDiacritics(text)))

	variants := make([]string, 0, len(set))
	for v := range set {
		variants = append(variants, v)
	}
	sort.Strings(variants)
	return variants
}

// stripDiacritics removes macrons via the explicit table, then applies NFD
// decomposition and drops combining marks to catch anything unlisted.
func (n *Normalizer) stripDiacritics(text string) string {
	if text == "" {
		return ""
	}
	mapped := strings.Map(func(r rune) rune {
		if plain, ok := n.macrons[r]; ok {
			return plain
		}
		return r
	}, text)

	stripped, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		mapped,
	)
	if err != nil {
		return mapped
	}
	return stripped
}

// stripOkina deletes every ʻokina variant. Presence, absence, or choice of
// variant must never affect comparison.
func (n *Normalizer) stripOkina(text string) string {
	for _, variant := range n.okinaVariants {
		text = strings.ReplaceAll(text, variant, "")
	}
	return text
}

// normalizeSpacing strips the punctuation that varies between sources, then
// collapses whitespace. Punctuation goes first so its removal cannot leave a
// double space behind, which keeps the pipeline idempotent.
func (n *Normalizer) normalizeSpacing(text string) string {
	text = punct.ReplaceAllString(text, "")
	text = spaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
