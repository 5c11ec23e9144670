package service_test

import (
	"testing"
	"time"

	"github.com/msomdec/youth-portal/internal/service"
)

func TestTokenBucket_AllowsUpToBurst(t *testing.T) {
	tb := service.NewTokenBucket(3, 3)

	for i := 0; i < 3; i++ {
		if !tb.Allow("test-key") {
			t.Fatalf("request %d should be allowed (bucket not yet empty)", i+1)
		}
	}

	if tb.Allow("test-key") {
		t.Fatal("4th request should be denied (bucket empty)")
	}
}

func TestTokenBucket_DifferentKeysAreIndependent(t *testing.T) {
	tb := service.NewTokenBucket(1, 1)

	if !tb.Allow("ip-a") {
		t.Fatal("ip-a first request should be allowed")
	}
	if tb.Allow("ip-a") {
		t.Fatal("ip-a second request should be denied")
	}
	if !tb.Allow("ip-b") {
		t.Fatal("ip-b first request should be allowed (independent bucket)")
	}
}

func TestTokenBucket_Refills(t *testing.T) {
	tb := service.NewTokenBucket(60, 1) // one token per second
	start := time.Now()

	if !tb.AllowAt("k", start) {
		t.Fatal("first request should be allowed")
	}
	if tb.AllowAt("k", start.Add(100*time.Millisecond)) {
		t.Fatal("second request within a second should be denied")
	}
	if !tb.AllowAt("k", start.Add(1100*time.Millisecond)) {
		t.Fatal("request after refill should be allowed")
	}
}
