package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestFixedWindowAllow(t *testing.T) {
	ctx := context.Background()
	fake := newFakeCmdable()
	client := &Client{store: fake}

	allowed, count, err := client.FixedWindowAllow(ctx, "login:email:a@b.c", 2, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !allowed || count != 1 {
		t.Fatalf("first call: allowed=%v count=%d", allowed, count)
	}
	if len(fake.expireCalls) != 1 {
		t.Fatalf("expected ttl to be armed on first increment")
	}

	allowed, count, err = client.FixedWindowAllow(ctx, "login:email:a@b.c", 2, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !allowed || count != 2 {
		t.Fatalf("second call: allowed=%v count=%d", allowed, count)
	}
	if len(fake.expireCalls) != 1 {
		t.Fatalf("ttl should only be armed once")
	}

	allowed, _, err = client.FixedWindowAllow(ctx, "login:email:a@b.c", 2, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if allowed {
		t.Fatalf("expected limit reached on third call")
	}
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	fake := newFakeCmdable()
	client := &Client{store: fake}

	key := client.SessionKey("jti-1")
	if err := client.Set(ctx, key, "1", time.Hour); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	got, err := client.Get(ctx, key)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != "1" {
		t.Fatalf("expected stored marker, got %q", got)
	}

	if err := client.Del(ctx, key); err != nil {
		t.Fatalf("del failed: %v", err)
	}
	if _, err := client.Get(ctx, key); err != redis.Nil {
		t.Fatalf("expected redis.Nil after delete, got %v", err)
	}
}

func TestKeyBuilders(t *testing.T) {
	client := &Client{}
	if got := client.SessionKey("abc"); got != "socialai:session:abc" {
		t.Fatalf("unexpected session key %s", got)
	}
	if got := client.RateLimitKey("login:ip:1.2.3.4"); got != "socialai:rate_limit:login:ip:1.2.3.4" {
		t.Fatalf("unexpected rate limit key %s", got)
	}
}

type fakeCmdable struct {
	data        map[string]string
	incr        map[string]int64
	expireCalls []string
}

func newFakeCmdable() *fakeCmdable {
	return &fakeCmdable{
		data: make(map[string]string),
		incr: make(map[string]int64),
	}
}

func (f *fakeCmdable) Ping(context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (f *fakeCmdable) Set(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	f.data[key] = fmt.Sprint(value)
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeCmdable) Incr(ctx context.Context, key string) *redis.IntCmd {
	f.incr[key]++
	return redis.NewIntResult(f.incr[key], nil)
}

func (f *fakeCmdable) Expire(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd {
	f.expireCalls = append(f.expireCalls, key)
	return redis.NewBoolResult(true, nil)
}

func (f *fakeCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	for _, key := range keys {
		delete(f.data, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}
