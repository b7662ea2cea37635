package services

import (
	"context"
	"testing"
	"time"
)

func TestMemoryRateLimitStoreFixedWindow(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryRateLimitStore()
	store.Now = func() time.Time { return now }
	window := 15 * time.Minute

	var hit WindowHit
	for i := 1; i <= 3; i++ {
		hit, _ = store.Hit(ctx, "auth:10.0.0.1", window)
		if hit.Count != int64(i) {
			t.Fatalf("hit %d: expected count %d, got %d", i, i, hit.Count)
		}
	}
	if !hit.ResetAt.Equal(now.Add(window)) {
		t.Fatalf("reset should stay anchored to the first hit, got %v", hit.ResetAt)
	}

	other, _ := store.Hit(ctx, "auth:10.0.0.2", window)
	if other.Count != 1 {
		t.Fatalf("keys must be independent, got %d", other.Count)
	}

	now = now.Add(window)
	hit, _ = store.Hit(ctx, "auth:10.0.0.1", window)
	if hit.Count != 1 {
		t.Fatalf("expected a new window, got count %d", hit.Count)
	}
}

func TestMemoryRateLimitStoreSweep(t *testing.T) {
	now := time.Now()
	store := NewMemoryRateLimitStore()
	store.Now = func() time.Time { return now }
	defer store.Close()

	store.Hit(context.Background(), "a", time.Minute)
	store.Hit(context.Background(), "b", time.Hour)

	now = now.Add(2 * time.Minute)
	if removed := store.sweep(); removed != 1 {
		t.Fatalf("expected 1 expired window, removed %d", removed)
	}
	if _, ok := store.windows["b"]; !ok {
		t.Fatal("live window was swept")
	}
}
