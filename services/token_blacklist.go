package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenRevoker remembers logged-out tokens until they expire
type TokenRevoker interface {
	Revoke(ctx context.Context, token string, until time.Time) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

func blacklistKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "blacklist:access:" + hex.EncodeToString(sum[:])
}

type RedisTokenBlacklist struct {
	Client *redis.Client
}

func NewRedisTokenBlacklist(client *redis.Client) *RedisTokenBlacklist {
	return &RedisTokenBlacklist{Client: client}
}

func (tb *RedisTokenBlacklist) Revoke(ctx context.Context, token string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	if err := tb.Client.Set(ctx, blacklistKey(token), "true", ttl).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token in Redis: %v", err)
	}
	return nil
}

func (tb *RedisTokenBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := tb.Client.Exists(ctx, blacklistKey(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MemoryTokenBlacklist is used when no redis is configured
type MemoryTokenBlacklist struct {
	mu      sync.Mutex
	entries map[string]time.Time
	Now     func() time.Time
}

func NewMemoryTokenBlacklist() *MemoryTokenBlacklist {
	return &MemoryTokenBlacklist{entries: make(map[string]time.Time), Now: time.Now}
}

func (tb *MemoryTokenBlacklist) Revoke(_ context.Context, token string, until time.Time) error {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	now := tb.Now()
	for k, exp := range tb.entries {
		if !exp.After(now) {
			delete(tb.entries, k)
		}
	}
	if until.After(now) {
		tb.entries[blacklistKey(token)] = until
	}
	return nil
}

func (tb *MemoryTokenBlacklist) IsRevoked(_ context.Context, token string) (bool, error) {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	exp, ok := tb.entries[blacklistKey(token)]
	return ok && exp.After(tb.Now()), nil
}
