package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/msomdec/youth-portal/internal/domain"
	"github.com/msomdec/youth-portal/internal/repository/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// DB wraps the SQLite handle and hands out the repositories built on it.
type DB struct {
	SqlDB *sql.DB

	storage  *KeyValueStore
	attempts *QuizAttemptRepository
	files    *fileStore
}

var _ domain.Database = (*DB)(nil)

// New opens a SQLite database at the given path with WAL mode and foreign
// keys enabled. Use ":memory:" only in tests; the pool is capped at one
// connection so the in-memory database stays shared.
func New(dbPath string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	ctx := context.Background()
	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA foreign_keys=ON", "PRAGMA busy_timeout=5000"} {
		if _, err := sqlDB.ExecContext(ctx, pragma); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	db := &DB{SqlDB: sqlDB}
	db.storage = &KeyValueStore{db: sqlDB}
	db.attempts = &QuizAttemptRepository{db: sqlDB}
	db.files = &fileStore{db: sqlDB}
	return db, nil
}

// Migrate applies pending schema migrations.
func (d *DB) Migrate(ctx context.Context) error {
	if _, err := migrations.Run(ctx, d.SqlDB); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// Close closes the underlying handle.
func (d *DB) Close() error {
	return d.SqlDB.Close()
}

func (d *DB) LocalStorage() domain.KeyValueStore { return d.storage }

func (d *DB) QuizAttempts() domain.QuizAttemptRepository { return d.attempts }

func (d *DB) FileStore() domain.FileStore { return d.files }
