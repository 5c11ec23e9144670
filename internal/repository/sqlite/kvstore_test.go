package sqlite_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/msomdec/youth-portal/internal/domain"
	"github.com/msomdec/youth-portal/internal/repository/sqlite"
)

func TestKeyValueStore_SetAndGet(t *testing.T) {
	store := sqlite.NewKeyValueStore(newTestDB(t))
	ctx := context.Background()

	if err := store.SetItem(ctx, "client-a", "users", `[{"id":"1"}]`); err != nil {
		t.Fatalf("SetItem: %v", err)
	}

	got, err := store.GetItem(ctx, "client-a", "users")
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if got != `[{"id":"1"}]` {
		t.Fatalf("expected stored value, got %q", got)
	}
}

func TestKeyValueStore_Overwrite(t *testing.T) {
	store := sqlite.NewKeyValueStore(newTestDB(t))
	ctx := context.Background()

	if err := store.SetItem(ctx, "ns", "user", "first"); err != nil {
		t.Fatalf("SetItem first: %v", err)
	}
	if err := store.SetItem(ctx, "ns", "user", "second"); err != nil {
		t.Fatalf("SetItem second: %v", err)
	}

	got, err := store.GetItem(ctx, "ns", "user")
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if got != "second" {
		t.Fatalf("expected %q, got %q", "second", got)
	}
}

func TestKeyValueStore_NamespacesAreIsolated(t *testing.T) {
	store := sqlite.NewKeyValueStore(newTestDB(t))
	ctx := context.Background()

	if err := store.SetItem(ctx, "browser-1", "user", "one"); err != nil {
		t.Fatalf("SetItem: %v", err)
	}

	_, err := store.GetItem(ctx, "browser-2", "user")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound in another namespace, got %v", err)
	}
}

func TestKeyValueStore_UpdateItem(t *testing.T) {
	store := sqlite.NewKeyValueStore(newTestDB(t))
	ctx := context.Background()

	err := store.UpdateItem(ctx, "ns", "k", func(current string, found bool) (string, error) {
		if found {
			t.Fatalf("expected no current value, got %q", current)
		}
		return "first", nil
	})
	if err != nil {
		t.Fatalf("UpdateItem create: %v", err)
	}

	err = store.UpdateItem(ctx, "ns", "k", func(current string, found bool) (string, error) {
		if !found || current != "first" {
			t.Fatalf("expected current %q, got %q (found=%v)", "first", current, found)
		}
		return current + "+second", nil
	})
	if err != nil {
		t.Fatalf("UpdateItem modify: %v", err)
	}

	got, err := store.GetItem(ctx, "ns", "k")
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if got != "first+second" {
		t.Fatalf("expected %q, got %q", "first+second", got)
	}
}

func TestKeyValueStore_UpdateItemErrorKeepsValue(t *testing.T) {
	store := sqlite.NewKeyValueStore(newTestDB(t))
	ctx := context.Background()

	if err := store.SetItem(ctx, "ns", "k", "v"); err != nil {
		t.Fatalf("SetItem: %v", err)
	}

	boom := errors.New("boom")
	err := store.UpdateItem(ctx, "ns", "k", func(string, bool) (string, error) { return "", boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected fn error, got %v", err)
	}

	got, err := store.GetItem(ctx, "ns", "k")
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if got != "v" {
		t.Fatalf("expected value to be untouched, got %q", got)
	}
}

func TestKeyValueStore_ConcurrentUpdates(t *testing.T) {
	store := sqlite.NewKeyValueStore(newTestDB(t))
	ctx := context.Background()

	const n = 25
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := store.UpdateItem(ctx, "ns", "counter", func(current string, found bool) (string, error) {
				return current + "x", nil
			})
			if err != nil {
				t.Errorf("UpdateItem: %v", err)
			}
		}()
	}
	wg.Wait()

	got, err := store.GetItem(ctx, "ns", "counter")
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if len(got) != n {
		t.Fatalf("expected %d updates to land, got %d", n, len(got))
	}
}
