//go:build integration

package cache

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"
)

// redisAddr resolves the test Redis instance, defaulting to a local one.
func redisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

func TestRedisCacheRoundTrip_Integration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c, err := NewRedisCache(ctx, RedisConfig{Addr: redisAddr()})
	if err != nil {
		t.Fatalf("NewRedisCache() error: %v", err)
	}
	defer c.Close()

	key := "solve:integration-test-roundtrip"
	value := []byte(`{"seats": 8}`)

	if err := c.Set(ctx, key, value, time.Minute); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	got, hit, err := c.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if !hit {
		t.Fatal("Get() should hit after Set()")
	}
	if !bytes.Equal(got, value) {
		t.Errorf("Get() = %q, want %q", got, value)
	}

	if err := c.Delete(ctx, key); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, key); hit {
		t.Error("Get() should miss after Delete()")
	}
}

func TestRedisCacheTTL_Integration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c, err := NewRedisCache(ctx, RedisConfig{Addr: redisAddr()})
	if err != nil {
		t.Fatalf("NewRedisCache() error: %v", err)
	}
	defer c.Close()

	key := "solve:integration-test-ttl"
	if err := c.Set(ctx, key, []byte("x"), time.Second); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	time.Sleep(1500 * time.Millisecond)

	if _, hit, _ := c.Get(ctx, key); hit {
		t.Error("Get() should miss after TTL expiry")
	}
}

func TestRedisCacheMiss_Integration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c, err := NewRedisCache(ctx, RedisConfig{Addr: redisAddr()})
	if err != nil {
		t.Fatalf("NewRedisCache() error: %v", err)
	}
	defer c.Close()

	_, hit, err := c.Get(ctx, "solve:integration-test-never-set")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if hit {
		t.Error("Get() on an unknown key should miss without error")
	}
}
