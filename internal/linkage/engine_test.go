package linkage_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"melelink/internal/linkage"
)

type fakeStore struct {
	songs    map[string]linkage.CanonicalSong
	entries  []linkage.SongbookEntry
	saved    []linkage.Decision
	linked   map[int64]string
	saveErr  error
	linkErrs map[int64]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		songs:    make(map[string]linkage.CanonicalSong),
		linked:   make(map[int64]string),
		linkErrs: make(map[int64]error),
	}
}

func (f *fakeStore) CanonicalSong(_ context.Context, id string) (*linkage.CanonicalSong, error) {
	song, ok := f.songs[id]
	if !ok {
		return nil, nil
	}
	return &song, nil
}

func (f *fakeStore) UnlinkedEntries(context.Context) ([]linkage.SongbookEntry, error) {
	var unlinked []linkage.SongbookEntry
	for _, entry := range f.entries {
		if _, ok := f.linked[entry.ID]; !ok {
			unlinked = append(unlinked, entry)
		}
	}
	return unlinked, nil
}

func (f *fakeStore) SaveDecisions(_ context.Context, decisions []linkage.Decision) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, decisions...)
	return nil
}

func (f *fakeStore) LinkEntry(_ context.Context, entryID int64, canonicalID string) error {
	if err := f.linkErrs[entryID]; err != nil {
		return err
	}
	f.linked[entryID] = canonicalID
	return nil
}

func TestFindMatchesUnknownCanonical(t *testing.T) {
	engine := linkage.New(newFakeStore(), linkage.DefaultPolicy(), nil)

	matches, err := engine.FindMatches(context.Background(), "missing")
	if err != nil {
		t.Fatalf("FindMatches: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("expected empty result for unknown id, got %d matches", len(matches))
	}
}

func TestFindMatchesFilterAndSort(t *testing.T) {
	store := newFakeStore()
	store.songs["mele-1"] = linkage.CanonicalSong{
		ID:              "mele-1",
		TitleHawaiian:   "Aloha ʻOe",
		PrimaryComposer: "Queen Liliʻuokalani",
	}
	store.entries = []linkage.SongbookEntry{
		{ID: 1, PrintedTitle: "Aloha Oe"},                                       // title only: 50
		{ID: 2, PrintedTitle: "Aloha Oe", Composer: "Queen Liliuokalani"},       // title + composer: 80
		{ID: 3, PrintedTitle: "Sweet Leilani", Composer: "Harry Owens"},         // unrelated
	}
	engine := linkage.New(store, linkage.DefaultPolicy(), nil)

	matches, err := engine.FindMatches(context.Background(), "mele-1")
	if err != nil {
		t.Fatalf("FindMatches: %v", err)
	}
	for _, m := range matches {
		if m.Confidence < engine.Policy().MinRelevance {
			t.Errorf("result below relevance floor: entry %d at %v", m.EntryID, m.Confidence)
		}
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Confidence > matches[i-1].Confidence {
			t.Errorf("results not sorted descending at index %d", i)
		}
	}
	if len(matches) < 2 || matches[0].EntryID != 2 {
		t.Errorf("expected entry 2 ranked first, got %+v", matches)
	}
}

func TestFindMatchesStableTies(t *testing.T) {
	store := newFakeStore()
	store.songs["mele-1"] = linkage.CanonicalSong{ID: "mele-1", TitleHawaiian: "Aloha ʻOe"}
	// Identical entries score identically; retrieval order (ascending id)
	// must survive the sort.
	store.entries = []linkage.SongbookEntry{
		{ID: 7, PrintedTitle: "Aloha Oe"},
		{ID: 9, PrintedTitle: "Aloha Oe"},
		{ID: 11, PrintedTitle: "Aloha Oe"},
	}
	engine := linkage.New(store, linkage.DefaultPolicy(), nil)

	matches, err := engine.FindMatches(context.Background(), "mele-1")
	if err != nil {
		t.Fatalf("FindMatches: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}
	for i, wantID := range []int64{7, 9, 11} {
		if matches[i].EntryID != wantID {
			t.Errorf("matches[%d].EntryID = %d, want %d", i, matches[i].EntryID, wantID)
		}
	}
}

func TestProcessReviewOnlyNeverLinks(t *testing.T) {
	store := newFakeStore()
	store.songs["mele-1"] = linkage.CanonicalSong{
		ID:              "mele-1",
		TitleHawaiian:   "Aloha ʻOe",
		PrimaryComposer: "Queen Liliʻuokalani",
	}
	store.entries = []linkage.SongbookEntry{
		{ID: 1, PrintedTitle: "Aloha Oe", Composer: "Queen Liliuokalani", PubYear: "1916"},
	}
	// Lower the high threshold so the 85-point match lands in the high tier.
	policy := linkage.DefaultPolicy()
	policy.HighThreshold = 80
	engine := linkage.New(store, policy, nil)

	summary, err := engine.Process(context.Background(), "mele-1", false)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if summary.HighConfidence != 1 {
		t.Fatalf("expected 1 high-confidence match, got %d", summary.HighConfidence)
	}
	if summary.AutoLinked != 0 {
		t.Errorf("auto-linked %d entries in review-only mode", summary.AutoLinked)
	}
	if len(store.linked) != 0 {
		t.Errorf("review-only mode mutated linked state: %v", store.linked)
	}
	if summary.QueuedForReview != 1 {
		t.Errorf("queued = %d, want 1", summary.QueuedForReview)
	}
	for _, d := range store.saved {
		if d.Status != linkage.StatusNeedsReview {
			t.Errorf("decision status = %v, want needs_review", d.Status)
		}
	}
}

func TestProcessAutoLinksHighTier(t *testing.T) {
	store := newFakeStore()
	store.songs["mele-1"] = linkage.CanonicalSong{
		ID:              "mele-1",
		TitleHawaiian:   "Aloha ʻOe",
		PrimaryComposer: "Queen Liliʻuokalani",
	}
	store.entries = []linkage.SongbookEntry{
		{ID: 1, PrintedTitle: "Aloha Oe", Composer: "Queen Liliuokalani", PubYear: "1916"},
		{ID: 2, PrintedTitle: "Aloha Oe Medley"},
	}
	policy := linkage.DefaultPolicy()
	policy.HighThreshold = 80
	engine := linkage.New(store, policy, nil)

	summary, err := engine.Process(context.Background(), "mele-1", true)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if summary.AutoLinked != 1 {
		t.Fatalf("auto-linked = %d, want 1", summary.AutoLinked)
	}
	if store.linked[1] != "mele-1" {
		t.Errorf("entry 1 linked to %q, want mele-1", store.linked[1])
	}
	if _, ok := store.linked[2]; ok {
		t.Error("medium-tier entry must not be linked")
	}
	if summary.QueuedForReview == 0 {
		t.Error("expected the lower-tier match to queue for review")
	}
}

func TestProcessConflictDowngradesToReview(t *testing.T) {
	store := newFakeStore()
	store.songs["mele-1"] = linkage.CanonicalSong{
		ID:              "mele-1",
		TitleHawaiian:   "Aloha ʻOe",
		PrimaryComposer: "Queen Liliʻuokalani",
	}
	store.entries = []linkage.SongbookEntry{
		{ID: 1, PrintedTitle: "Aloha Oe", Composer: "Queen Liliuokalani", PubYear: "1916"},
	}
	store.linkErrs[1] = fmt.Errorf("entry 1 is linked to mele-9: %w", linkage.ErrEntryLinked)
	policy := linkage.DefaultPolicy()
	policy.HighThreshold = 80
	engine := linkage.New(store, policy, nil)

	summary, err := engine.Process(context.Background(), "mele-1", true)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if summary.Conflicts != 1 {
		t.Errorf("conflicts = %d, want 1", summary.Conflicts)
	}
	if summary.AutoLinked != 0 {
		t.Errorf("auto-linked = %d, want 0", summary.AutoLinked)
	}

	last := store.saved[len(store.saved)-1]
	if last.Status != linkage.StatusNeedsReview {
		t.Errorf("conflicted decision status = %v, want needs_review", last.Status)
	}
}

func TestProcessPropagatesStoreErrors(t *testing.T) {
	store := newFakeStore()
	store.songs["mele-1"] = linkage.CanonicalSong{ID: "mele-1", TitleHawaiian: "Aloha ʻOe"}
	store.entries = []linkage.SongbookEntry{{ID: 1, PrintedTitle: "Aloha Oe"}}
	store.saveErr = errors.New("disk full")
	engine := linkage.New(store, linkage.DefaultPolicy(), nil)

	if _, err := engine.Process(context.Background(), "mele-1", true); err == nil {
		t.Fatal("expected store error to propagate")
	}
}
