package linkage

// CanonicalSong is the authoritative reference entry for a song.
type CanonicalSong struct {
	ID              string
	TitleHawaiian   string
	TitleEnglish    string
	PrimaryComposer string
}

// SongbookEntry is a free-text songbook record awaiting linkage. CanonicalID
// is empty until a link is confirmed.
type SongbookEntry struct {
	ID           int64
	PrintedTitle string
	Composer     string
	PubYear      string
	SongbookName string
	CanonicalID  string
}

// Method annotates how a match was established.
type Method string

const (
	MethodExact             Method = "exact"
	MethodFuzzy             Method = "fuzzy"
	MethodComposerConfirmed Method = "composer_confirmed"
	MethodManual            Method = "manual"
)

// Tier is the discretized confidence bucket driving the linkage decision.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

// Status is the outcome recorded for a (canonical, entry) pair.
type Status string

const (
	StatusAutoLinked  Status = "auto_linked"
	StatusNeedsReview Status = "needs_review"
	StatusRejected    Status = "rejected"
	StatusConfirmed   Status = "confirmed"
)

// Breakdown records the per-dimension scores behind a confidence value.
// Bonuses maps bonus rule name to the points it contributed.
type Breakdown struct {
	TitleHawaiianSimilarity float64            `json:"title_hawaiian_similarity"`
	TitleEnglishSimilarity  float64            `json:"title_english_similarity"`
	TitleScore              float64            `json:"title_score"`
	ComposerSimilarity      float64            `json:"composer_similarity"`
	ComposerScore           float64            `json:"composer_score"`
	Bonuses                 map[string]float64 `json:"bonuses,omitempty"`
}

// MatchResult is the ephemeral outcome of scoring one entry against one
// canonical song. Created fresh on every pass and never mutated.
type MatchResult struct {
	CanonicalID string
	EntryID     int64
	Entry       SongbookEntry
	Confidence  float64
	Method      Method
	Breakdown   Breakdown
	Tier        Tier
}

// Decision is the persistable linkage outcome derived from a MatchResult.
type Decision struct {
	CanonicalID      string
	EntryID          int64
	Confidence       float64
	Method           Method
	Status           Status
	AlgorithmVersion string
	Notes            string
}

// Summary aggregates the outcome of processing one canonical song.
type Summary struct {
	CanonicalID      string
	TotalMatches     int
	HighConfidence   int
	MediumConfidence int
	LowConfidence    int
	AutoLinked       int
	QueuedForReview  int
	Conflicts        int
	Matches          []MatchResult
}
