package store

import (
	"context"
	"errors"
	"testing"

	"melelink/internal/config"
)

func TestOpenRejectsNewerSchema(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.DataDir = t.TempDir()

	st, err := Open(&cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	_, err = st.db.ExecContext(context.Background(),
		"INSERT INTO schema_migrations (version) VALUES ('9999_future')")
	if err != nil {
		t.Fatalf("insert future version: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	_, err = Open(&cfg)
	if !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}

func TestLoadMigrationsOrdered(t *testing.T) {
	migrations, err := loadMigrations()
	if err != nil {
		t.Fatalf("loadMigrations: %v", err)
	}
	if len(migrations) == 0 {
		t.Fatal("no embedded migrations")
	}
	for i := 1; i < len(migrations); i++ {
		if migrations[i-1].version >= migrations[i].version {
			t.Errorf("migrations out of order: %s before %s",
				migrations[i-1].version, migrations[i].version)
		}
	}
}
