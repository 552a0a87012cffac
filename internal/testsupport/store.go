package testsupport

import (
	"context"
	"testing"

	"melelink/internal/config"
	"melelink/internal/linkage"
	"melelink/internal/store"
)

// MustOpenStore opens a store against the config's database and closes it
// when the test finishes.
func MustOpenStore(t *testing.T, cfg *config.Config) *store.Store {
	t.Helper()
	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

// SeedSong inserts a canonical song and returns its id.
func SeedSong(t *testing.T, st *store.Store, song linkage.CanonicalSong) string {
	t.Helper()
	id, err := st.UpsertSong(context.Background(), song)
	if err != nil {
		t.Fatalf("seed song: %v", err)
	}
	return id
}

// SeedEntry inserts a songbook entry and returns its id.
func SeedEntry(t *testing.T, st *store.Store, entry linkage.SongbookEntry) int64 {
	t.Helper()
	id, err := st.InsertEntry(context.Background(), entry)
	if err != nil {
		t.Fatalf("seed entry: %v", err)
	}
	return id
}
