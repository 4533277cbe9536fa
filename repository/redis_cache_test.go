package repository

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestRedisCache_UnreachableServerIsAMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	cache := NewRedisCacheWithClient(client, time.Minute)
	defer cache.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if _, ok := cache.Get(ctx, "k"); ok {
		t.Errorf("expected a miss")
	}
	if err := cache.Set(ctx, "k", "v"); err == nil {
		t.Errorf("expected an error from an unreachable server")
	}
	if err := cache.Ping(ctx); err == nil {
		t.Errorf("expected ping to fail")
	}
}
