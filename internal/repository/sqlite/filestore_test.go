package sqlite_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/msomdec/youth-portal/internal/domain"
)

func TestFileStore_RoundTrip(t *testing.T) {
	files := newTestDB(t).FileStore()
	ctx := context.Background()

	if err := files.Save(ctx, "profile-images/abc", []byte{1, 2, 3}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := files.Save(ctx, "profile-images/abc", []byte{4, 5}); err != nil {
		t.Fatalf("Save replace: %v", err)
	}

	got, err := files.Get(ctx, "profile-images/abc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, []byte{4, 5}) {
		t.Fatalf("expected replaced bytes, got %v", got)
	}

	if err := files.Delete(ctx, "profile-images/abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := files.Get(ctx, "profile-images/abc"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
