package cache

import (
	"context"
	"sync"
	"time"

	"salon-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// RedisLocker hands out short-lived keys shared across API instances. It
// guards scheduled runs and remembers which reminders were already queued.
type RedisLocker struct {
	client *redis.Client
	prefix string
}

func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrapf(err, "connect to redis at %s", addr)
	}
	return client, nil
}

func NewRedisLocker(client *redis.Client, prefix string) *RedisLocker {
	return &RedisLocker{client: client, prefix: prefix}
}

// Acquire sets key if it is absent. It reports false when another holder has it.
func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, l.prefix+key, time.Now().UTC().Format(time.RFC3339), ttl).Result()
	if err != nil {
		return false, errs.Wrapf(err, "acquire %s", key)
	}
	return ok, nil
}

func (l *RedisLocker) Release(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.prefix+key).Err(); err != nil {
		return errs.Wrapf(err, "release %s", key)
	}
	return nil
}

// MemoryLocker is the single-instance fallback when no Redis is configured.
type MemoryLocker struct {
	mu      sync.Mutex
	now     func() time.Time
	expires map[string]time.Time
}

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{now: time.Now, expires: make(map[string]time.Time)}
}

func (l *MemoryLocker) Acquire(_ context.Context, key string, ttl time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if exp, ok := l.expires[key]; ok && now.Before(exp) {
		return false, nil
	}
	l.expires[key] = now.Add(ttl)

	for k, exp := range l.expires {
		if !now.Before(exp) {
			delete(l.expires, k)
		}
	}
	return true, nil
}

func (l *MemoryLocker) Release(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.expires, key)
	return nil
}
