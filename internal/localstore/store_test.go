package localstore_test

import (
	"context"
	"errors"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msomdec/youth-portal/internal/domain"
	"github.com/msomdec/youth-portal/internal/localstore"
	"github.com/msomdec/youth-portal/internal/repository/sqlite"
)

func newKV(t *testing.T) domain.KeyValueStore {
	t.Helper()
	db, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.Migrate(context.Background()))
	t.Cleanup(func() { db.Close() })
	return db.LocalStorage()
}

// memKV is a map-backed KeyValueStore that can be told to fail.
type memKV struct {
	mu      sync.Mutex
	items   map[string]string
	failGet bool
	failSet bool
}

func (m *memKV) GetItem(_ context.Context, ns, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet {
		return "", errors.New("disk on fire")
	}
	v, ok := m.items[ns+"/"+key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return v, nil
}

func (m *memKV) SetItem(_ context.Context, ns, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSet {
		return errors.New("quota exceeded")
	}
	if m.items == nil {
		m.items = map[string]string{}
	}
	m.items[ns+"/"+key] = value
	return nil
}

func (m *memKV) UpdateItem(_ context.Context, ns, key string, fn func(string, bool) (string, error)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet {
		return errors.New("disk on fire")
	}
	current, found := m.items[ns+"/"+key]
	next, err := fn(current, found)
	if err != nil {
		return err
	}
	if m.failSet {
		return errors.New("quota exceeded")
	}
	if m.items == nil {
		m.items = map[string]string{}
	}
	m.items[ns+"/"+key] = next
	return nil
}

func TestListAll_EmptyWhenAbsent(t *testing.T) {
	store := localstore.New(newKV(t), "client")

	users := store.ListAll(context.Background())
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestAppend_PreservesOrder(t *testing.T) {
	store := localstore.New(newKV(t), "client")
	ctx := context.Background()

	first := domain.User{ID: "a", FirstName: "Asha", Mobile: "9000000001"}
	second := domain.User{ID: "b", FirstName: "Ravi", Mobile: "9000000002", Languages: []string{"te"}}
	store.Append(ctx, first)
	store.Append(ctx, second)

	users := store.ListAll(ctx)
	require.Len(t, users, 2)
	assert.Equal(t, "a", users[0].ID)
	assert.Equal(t, second.Normalize(), users[len(users)-1])
}

func TestAppend_IdenticalRecordsAreBothKept(t *testing.T) {
	store := localstore.New(newKV(t), "client")
	ctx := context.Background()

	u := domain.User{ID: "same", Mobile: "9000000001"}
	store.Append(ctx, u)
	store.Append(ctx, u)

	assert.Len(t, store.ListAll(ctx), 2)
}

func TestAppend_ConcurrentAppendsAllLand(t *testing.T) {
	kv := newKV(t)
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// A fresh Store per call, the way each request builds its own.
			localstore.New(kv, "client-1").Append(ctx, domain.User{ID: strconv.Itoa(i)})
		}()
	}
	wg.Wait()

	users := localstore.New(kv, "client-1").ListAll(ctx)
	require.Len(t, users, n)

	seen := map[string]bool{}
	for _, u := range users {
		seen[u.ID] = true
	}
	assert.Len(t, seen, n)
}

func TestAppend_ReadFailureLeavesSequenceUntouched(t *testing.T) {
	kv := &memKV{}
	store := localstore.New(kv, "client")
	store.Append(context.Background(), domain.User{ID: "kept"})

	kv.failGet = true
	assert.NotPanics(t, func() { store.Append(context.Background(), domain.User{ID: "lost"}) })
	kv.failGet = false

	users := store.ListAll(context.Background())
	require.Len(t, users, 1)
	assert.Equal(t, "kept", users[0].ID)
}

func TestListAll_MalformedValueIsEmpty(t *testing.T) {
	kv := &memKV{}
	require.NoError(t, kv.SetItem(context.Background(), "client", localstore.UsersKey, "{not json"))
	store := localstore.New(kv, "client")

	assert.Empty(t, store.ListAll(context.Background()))

	// Appending over malformed data starts a fresh sequence.
	store.Append(context.Background(), domain.User{ID: "x"})
	users := store.ListAll(context.Background())
	require.Len(t, users, 1)
	assert.Equal(t, "x", users[0].ID)
}

func TestListAll_ReadFailureIsEmpty(t *testing.T) {
	store := localstore.New(&memKV{failGet: true}, "client")
	assert.Empty(t, store.ListAll(context.Background()))
}

func TestAppend_WriteFailureIsSwallowed(t *testing.T) {
	kv := &memKV{failSet: true}
	store := localstore.New(kv, "client")

	assert.NotPanics(t, func() { store.Append(context.Background(), domain.User{ID: "x"}) })
	kv.failSet = false
	assert.Empty(t, store.ListAll(context.Background()))
}

func TestFindByMobileOrUsername(t *testing.T) {
	store := localstore.New(newKV(t), "client")
	ctx := context.Background()

	store.Append(ctx, domain.User{ID: "1", Mobile: "9703662169"})
	store.Append(ctx, domain.User{ID: "2", Username: "giri38372", Mobile: "9000000002"})
	store.Append(ctx, domain.User{ID: "3", Mobile: "9703662169"})

	u, ok := store.FindByMobileOrUsername(ctx, "9703662169")
	require.True(t, ok)
	assert.Equal(t, "1", u.ID, "first match wins")

	u, ok = store.FindByMobileOrUsername(ctx, "giri38372")
	require.True(t, ok)
	assert.Equal(t, "2", u.ID)

	_, ok = store.FindByMobileOrUsername(ctx, "nobody")
	assert.False(t, ok)

	_, ok = store.FindByMobileOrUsername(ctx, "")
	assert.False(t, ok, "empty key never matches records without a username")
}

func TestOverwriteCurrent_IndependentOfSequence(t *testing.T) {
	store := localstore.New(newKV(t), "client")
	ctx := context.Background()

	_, ok := store.Current(ctx)
	assert.False(t, ok)

	original := domain.User{ID: "1", FirstName: "Asha", Mobile: "9000000001"}
	store.Append(ctx, original)

	edited := original
	edited.FirstName = "Asha Rani"
	store.OverwriteCurrent(ctx, edited)

	current, ok := store.Current(ctx)
	require.True(t, ok)
	assert.Equal(t, "Asha Rani", current.FirstName)

	users := store.ListAll(ctx)
	require.Len(t, users, 1)
	assert.Equal(t, "Asha", users[0].FirstName)
}

func TestNamespacesDoNotLeak(t *testing.T) {
	kv := newKV(t)
	ctx := context.Background()

	localstore.New(kv, "browser-1").Append(ctx, domain.User{ID: "1", Mobile: "9000000001"})

	_, ok := localstore.New(kv, "browser-2").FindByMobileOrUsername(ctx, "9000000001")
	assert.False(t, ok)
}
