package services

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// WindowHit is the state of a fixed window after counting one request
type WindowHit struct {
	Count   int64
	ResetAt time.Time
}

// RateLimitStore counts hits per key in fixed windows
type RateLimitStore interface {
	Hit(ctx context.Context, key string, window time.Duration) (WindowHit, error)
}

type memoryWindow struct {
	count   int64
	resetAt time.Time
}

type MemoryRateLimitStore struct {
	mu      sync.Mutex
	windows map[string]*memoryWindow
	Now     func() time.Time
	stop    chan struct{}
	once    sync.Once
}

func NewMemoryRateLimitStore() *MemoryRateLimitStore {
	return &MemoryRateLimitStore{
		windows: make(map[string]*memoryWindow),
		Now:     time.Now,
		stop:    make(chan struct{}),
	}
}

func (s *MemoryRateLimitStore) Hit(_ context.Context, key string, window time.Duration) (WindowHit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.Now()
	w, ok := s.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &memoryWindow{resetAt: now.Add(window)}
		s.windows[key] = w
	}
	w.count++
	return WindowHit{Count: w.count, ResetAt: w.resetAt}, nil
}

// StartJanitor sweeps elapsed windows until Close is called
func (s *MemoryRateLimitStore) StartJanitor(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-s.stop:
				return
			}
		}
	}()
}

func (s *MemoryRateLimitStore) sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.Now()
	removed := 0
	for k, w := range s.windows {
		if !now.Before(w.resetAt) {
			delete(s.windows, k)
			removed++
		}
	}
	return removed
}

func (s *MemoryRateLimitStore) Close() {
	s.once.Do(func() { close(s.stop) })
}

// RedisRateLimitStore shares counters between instances
type RedisRateLimitStore struct {
	Client *redis.Client
	Prefix string
}

func NewRedisRateLimitStore(client *redis.Client) *RedisRateLimitStore {
	return &RedisRateLimitStore{Client: client, Prefix: "ratelimit:"}
}

func (s *RedisRateLimitStore) Hit(ctx context.Context, key string, window time.Duration) (WindowHit, error) {
	k := s.Prefix + key

	count, err := s.Client.Incr(ctx, k).Result()
	if err != nil {
		return WindowHit{}, err
	}
	if count == 1 {
		if err := s.Client.PExpire(ctx, k, window).Err(); err != nil {
			return WindowHit{}, err
		}
		return WindowHit{Count: count, ResetAt: time.Now().Add(window)}, nil
	}

	ttl, err := s.Client.PTTL(ctx, k).Result()
	if err != nil {
		return WindowHit{}, err
	}
	if ttl < 0 {
		// key lost its expiry; start the window over
		if err := s.Client.PExpire(ctx, k, window).Err(); err != nil {
			return WindowHit{}, err
		}
		ttl = window
	}
	return WindowHit{Count: count, ResetAt: time.Now().Add(ttl)}, nil
}
