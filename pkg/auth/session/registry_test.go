package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	redislib "github.com/redis/go-redis/v9"
)

type fakeStore struct {
	data map[string]string
	ttls map[string]time.Duration
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	f.data[key] = value.(string)
	f.ttls[key] = ttl
	return nil
}

func (f *fakeStore) Get(ctx context.Context, key string) (string, error) {
	v, ok := f.data[key]
	if !ok {
		return "", redislib.Nil
	}
	return v, nil
}

func (f *fakeStore) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.data, key)
	}
	return nil
}

type fakeKeyer struct{}

func (fakeKeyer) SessionKey(accessID string) string { return "socialai:session:" + accessID }

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	reg := &Registry{store: store, keyer: fakeKeyer{}, ttl: time.Hour}

	userID := uuid.New()
	if err := reg.Register(ctx, "jti-1", userID); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if store.ttls["socialai:session:jti-1"] != time.Hour {
		t.Fatalf("expected ttl to be applied")
	}

	ok, err := reg.HasSession(ctx, "jti-1")
	if err != nil {
		t.Fatalf("HasSession: %v", err)
	}
	if !ok {
		t.Fatal("expected live session after register")
	}

	if err := reg.Revoke(ctx, "jti-1"); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	ok, err = reg.HasSession(ctx, "jti-1")
	if err != nil {
		t.Fatalf("HasSession after revoke: %v", err)
	}
	if ok {
		t.Fatal("expected no session after revoke")
	}
}

func TestHasSessionRequiresAccessID(t *testing.T) {
	reg := &Registry{store: newFakeStore(), keyer: fakeKeyer{}, ttl: time.Hour}
	if _, err := reg.HasSession(context.Background(), "  "); err == nil {
		t.Fatal("expected error for blank access id")
	}
}
