package ttlmap_test

import (
	"context"
	"testing"
	"time"

	"github.com/msomdec/youth-portal/internal/ttlmap"
)

func TestGet_CreatesOnce(t *testing.T) {
	m := ttlmap.New[*int](time.Minute)

	calls := 0
	create := func() *int { calls++; v := calls; return &v }

	a := m.Get("k", create)
	b := m.Get("k", create)
	if a != b {
		t.Fatal("expected the same value for repeated Get")
	}
	if calls != 1 {
		t.Fatalf("expected create to run once, ran %d times", calls)
	}
}

func TestSweep_DropsIdleEntries(t *testing.T) {
	now := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	m := ttlmap.New[string](10 * time.Minute).WithClock(func() time.Time { return now })

	m.Get("old", func() string { return "old" })
	now = now.Add(8 * time.Minute)
	m.Get("fresh", func() string { return "fresh" })
	now = now.Add(5 * time.Minute)

	if dropped := m.Sweep(); dropped != 1 {
		t.Fatalf("expected 1 entry dropped, got %d", dropped)
	}
	if _, ok := m.Peek("old"); ok {
		t.Fatal("expected idle entry to be gone")
	}
	if _, ok := m.Peek("fresh"); !ok {
		t.Fatal("expected recent entry to survive")
	}
}

func TestGet_RefreshesLastSeen(t *testing.T) {
	now := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	m := ttlmap.New[int](10 * time.Minute).WithClock(func() time.Time { return now })

	m.Get("k", func() int { return 1 })
	now = now.Add(9 * time.Minute)
	m.Get("k", func() int { return 2 })
	now = now.Add(9 * time.Minute)

	if dropped := m.Sweep(); dropped != 0 {
		t.Fatalf("expected touched entry to survive, %d dropped", dropped)
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	m := ttlmap.New[int](time.Minute)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		m.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
