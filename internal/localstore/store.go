// Package localstore keeps registered users in a client's key/value
// namespace: an append-only "users" sequence plus an independent
// single-record "user" slot.
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/msomdec/youth-portal/internal/domain"
)

const (
	UsersKey       = "users"
	CurrentUserKey = "user"
)

// Store is scoped to one namespace. Storage and serialization failures are
// logged and replaced by empty defaults; they never reach the caller.
type Store struct {
	kv        domain.KeyValueStore
	namespace string
	log       *slog.Logger
}

// New returns a Store over the given namespace.
func New(kv domain.KeyValueStore, namespace string) *Store {
	return &Store{
		kv:        kv,
		namespace: namespace,
		log:       slog.Default().With("component", "localstore", "namespace", namespace),
	}
}

// Append adds user to the end of the stored sequence. The read and the
// write happen in one store update, so concurrent appends to the same
// namespace all land.
func (s *Store) Append(ctx context.Context, user domain.User) {
	err := s.kv.UpdateItem(ctx, s.namespace, UsersKey, func(current string, found bool) (string, error) {
		users := s.decodeUsers(current, found)
		raw, err := json.Marshal(append(users, user.Normalize()))
		if err != nil {
			return "", fmt.Errorf("encode users: %w", err)
		}
		return string(raw), nil
	})
	if err != nil {
		s.log.Error("save users", "error", err)
	}
}

// ListAll returns the stored sequence, or an empty one when it is absent or
// cannot be decoded.
func (s *Store) ListAll(ctx context.Context) []domain.User {
	raw, err := s.kv.GetItem(ctx, s.namespace, UsersKey)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.Error("load users", "error", err)
		}
		return []domain.User{}
	}
	return s.decodeUsers(raw, true)
}

func (s *Store) decodeUsers(raw string, found bool) []domain.User {
	if !found {
		return []domain.User{}
	}
	var users []domain.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		s.log.Error("decode users", "error", err)
		return []domain.User{}
	}
	if users == nil {
		return []domain.User{}
	}
	return users
}

// FindByMobileOrUsername returns the first stored user whose mobile number
// or username equals key.
func (s *Store) FindByMobileOrUsername(ctx context.Context, key string) (domain.User, bool) {
	if key == "" {
		return domain.User{}, false
	}
	for _, u := range s.ListAll(ctx) {
		if u.Mobile == key || u.Username == key {
			return u, true
		}
	}
	return domain.User{}, false
}

// OverwriteCurrent replaces the current-user slot. The appended sequence is
// not touched.
func (s *Store) OverwriteCurrent(ctx context.Context, user domain.User) {
	raw, err := json.Marshal(user.Normalize())
	if err != nil {
		s.log.Error("encode current user", "error", err)
		return
	}
	if err := s.kv.SetItem(ctx, s.namespace, CurrentUserKey, string(raw)); err != nil {
		s.log.Error("save current user", "error", err)
	}
}

// Current reads the current-user slot.
func (s *Store) Current(ctx context.Context) (domain.User, bool) {
	raw, err := s.kv.GetItem(ctx, s.namespace, CurrentUserKey)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.Error("load current user", "error", err)
		}
		return domain.User{}, false
	}

	var u domain.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		s.log.Error("decode current user", "error", err)
		return domain.User{}, false
	}
	return u.Normalize(), true
}
