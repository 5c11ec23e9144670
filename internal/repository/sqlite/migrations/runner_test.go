package migrations_test

import (
	"context"
	"database/sql"
	"testing"
	"testing/fstest"

	"github.com/msomdec/youth-portal/internal/repository/sqlite/migrations"
	_ "modernc.org/sqlite"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRunMigrations(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()

	n, err := migrations.Run(ctx, db)
	if err != nil {
		t.Fatalf("first migration run: %v", err)
	}
	if n == 0 {
		t.Fatal("expected at least one migration to be applied")
	}

	if _, err := db.ExecContext(ctx,
		"INSERT INTO local_storage (namespace, item_key, value) VALUES (?, ?, ?)",
		"ns", "users", "[]",
	); err != nil {
		t.Fatalf("insert into local_storage: %v", err)
	}
}

func TestRunMigrationsIdempotent(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()

	first, err := migrations.Run(ctx, db)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := migrations.Run(ctx, db)
	if err != nil {
		t.Fatalf("second run (idempotent): %v", err)
	}
	if second != 0 {
		t.Fatalf("expected no migrations on second run, got %d", second)
	}

	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("count schema_migrations: %v", err)
	}
	if count != first {
		t.Fatalf("expected %d migration records, got %d", first, count)
	}
}

func TestRunFS_AppliesInLexicalOrder(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()

	fsys := fstest.MapFS{
		"002_b.sql": {Data: []byte("INSERT INTO t (v) VALUES ('b');")},
		"001_a.sql": {Data: []byte("CREATE TABLE t (v TEXT); INSERT INTO t (v) VALUES ('a');")},
		"notes.txt": {Data: []byte("ignored")},
	}

	n, err := migrations.RunFS(ctx, db, fsys)
	if err != nil {
		t.Fatalf("RunFS: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 applied, got %d", n)
	}

	var first string
	if err := db.QueryRowContext(ctx, "SELECT v FROM t ORDER BY rowid LIMIT 1").Scan(&first); err != nil {
		t.Fatalf("select: %v", err)
	}
	if first != "a" {
		t.Fatalf("expected 001 to run first, got %q", first)
	}
}
