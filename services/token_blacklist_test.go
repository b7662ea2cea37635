package services

import (
	"context"
	"testing"
	"time"
)

func TestMemoryTokenBlacklist(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tb := NewMemoryTokenBlacklist()
	tb.Now = func() time.Time { return now }

	if revoked, _ := tb.IsRevoked(ctx, "tok"); revoked {
		t.Fatal("fresh token reported as revoked")
	}

	if err := tb.Revoke(ctx, "tok", now.Add(time.Hour)); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	if revoked, _ := tb.IsRevoked(ctx, "tok"); !revoked {
		t.Fatal("expected token to be revoked")
	}
	if revoked, _ := tb.IsRevoked(ctx, "other"); revoked {
		t.Fatal("unrelated token reported as revoked")
	}

	now = now.Add(2 * time.Hour)
	if revoked, _ := tb.IsRevoked(ctx, "tok"); revoked {
		t.Fatal("entry should lapse once the token expired")
	}
}

func TestBlacklistKeyDoesNotEmbedToken(t *testing.T) {
	key := blacklistKey("header.payload.signature")
	if len(key) != len("blacklist:access:")+64 {
		t.Fatalf("unexpected key %q", key)
	}
}
