package idempotency

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
)

func TestRedisStoreClaimUnreachable(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 200 * time.Millisecond,
	})
	defer rdb.Close()

	store := NewRedisStore(rdb, DefaultTTL)
	ok, err := store.Claim(context.Background(), "abc")
	if err == nil {
		t.Fatalf("expected dial error")
	}
	if ok {
		t.Fatalf("a failed claim must not report success")
	}
}

func TestRedisStoreReleaseUnreachable(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 200 * time.Millisecond,
	})
	defer rdb.Close()

	if err := NewRedisStore(rdb, DefaultTTL).Release(context.Background(), "abc"); err == nil {
		t.Fatalf("expected dial error")
	}
}
