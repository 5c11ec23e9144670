package domain

import "context"

// KeyValueStore is the persistent per-client storage backing the local user
// store. Values are opaque strings scoped to a namespace, one namespace per
// browser.
type KeyValueStore interface {
	// GetItem returns ErrNotFound when the key has never been written.
	GetItem(ctx context.Context, namespace, key string) (string, error)
	SetItem(ctx context.Context, namespace, key, value string) error
	// UpdateItem replaces the value under key with the result of fn in one
	// atomic step. fn receives the current value and whether it exists; an
	// error from fn leaves the stored value untouched.
	UpdateItem(ctx context.Context, namespace, key string, fn func(current string, found bool) (string, error)) error
}

// FileStore abstracts raw file byte storage.
// The default implementation stores BLOBs in SQLite; an S3 implementation
// is selected by configuration.
type FileStore interface {
	Save(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
