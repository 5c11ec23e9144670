package domain

import "context"

// Database is the storage backend: lifecycle plus access to the
// repositories it serves. Each implementation owns its migrations.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error
	LocalStorage() KeyValueStore
	QuizAttempts() QuizAttemptRepository
	FileStore() FileStore
}
