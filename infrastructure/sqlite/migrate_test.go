package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/uptrace/bun"
)

func TestApplyEmbeddedMigrations(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "embedded.db")
	db, err := OpenDB(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := ApplyEmbeddedMigrations(context.Background(), db); err != nil {
		t.Fatalf("apply embedded migrations: %v", err)
	}

	for _, table := range []string{"audit_logs", "export_runs", "schema_migrations"} {
		var count int64
		err = db.WithReadTx(context.Background(), func(ctx context.Context, tx bun.Tx) error {
			return tx.NewRaw(
				`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
			).Scan(ctx, &count)
		})
		if err != nil {
			t.Fatalf("query sqlite_master: %v", err)
		}
		if count != 1 {
			t.Fatalf("expected %s table after embedded migrations, got %d", table, count)
		}
	}
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	if err := ApplyEmbeddedMigrations(context.Background(), db); err != nil {
		t.Fatalf("second apply: %v", err)
	}

	var applied int
	err := db.WithReadTx(context.Background(), func(ctx context.Context, tx bun.Tx) error {
		return tx.NewRaw(`SELECT COUNT(*) FROM schema_migrations`).Scan(ctx, &applied)
	})
	if err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if applied != 2 {
		t.Fatalf("expected 2 recorded migrations, got %d", applied)
	}
}

func TestApplyMigrationsFromDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "0001_notes.sql"), []byte(`CREATE TABLE notes (id INTEGER PRIMARY KEY, body TEXT);`), 0o600); err != nil {
		t.Fatalf("write migration: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("ignored"), 0o600); err != nil {
		t.Fatalf("write readme: %v", err)
	}

	db, err := OpenDB(filepath.Join(t.TempDir(), "dir.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := ApplyMigrations(context.Background(), db, dir); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := db.WriteSQL.Exec(`INSERT INTO notes (body) VALUES ('hello')`); err != nil {
		t.Fatalf("insert into migrated table: %v", err)
	}
}

func TestMemoryDatabaseSharedAcrossHandles(t *testing.T) {
	db, err := OpenDB("file:sampark-memory-test?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open memory db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := ApplyEmbeddedMigrations(context.Background(), db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := db.WriteSQL.Exec(`INSERT INTO audit_logs (actor, action, entity_type, entity_id) VALUES ('a', 'create', 'tasks', 'T-1')`); err != nil {
		t.Fatalf("insert audit row: %v", err)
	}

	var count int
	err = db.WithReadTx(context.Background(), func(ctx context.Context, tx bun.Tx) error {
		return tx.NewRaw(`SELECT COUNT(*) FROM audit_logs`).Scan(ctx, &count)
	})
	if err != nil {
		t.Fatalf("read through reader handle: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected reader to see 1 row, got %d", count)
	}
}
