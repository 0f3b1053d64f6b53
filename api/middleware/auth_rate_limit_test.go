package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type fakeLimiter struct {
	counts map[string]int64
}

func (f *fakeLimiter) FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error) {
	if f.counts == nil {
		f.counts = map[string]int64{}
	}
	f.counts[scope]++
	return f.counts[scope] <= limit, f.counts[scope], nil
}

func postLogin(handler http.Handler, body, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("X-Forwarded-For", ip)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAuthRateLimitBlocksEmailAfterLimit(t *testing.T) {
	policy := NewAuthRateLimitPolicy("login", time.Minute, 100, 2)
	limiter := &fakeLimiter{}
	handler := AuthRateLimit(policy, limiter, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	body := `{"email":"user@example.com","password":"x"}`
	for i := 0; i < 2; i++ {
		if rec := postLogin(handler, body, "1.2.3.4"); rec.Code != http.StatusOK {
			t.Fatalf("attempt %d: expected 200, got %d", i+1, rec.Code)
		}
	}
	if rec := postLogin(handler, body, "1.2.3.4"); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 on third attempt, got %d", rec.Code)
	}
}

func TestAuthRateLimitBlocksIPAfterLimit(t *testing.T) {
	policy := NewAuthRateLimitPolicy("login", time.Minute, 2, 0)
	limiter := &fakeLimiter{}
	handler := AuthRateLimit(policy, limiter, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 2; i++ {
		if rec := postLogin(handler, `{}`, "9.9.9.9"); rec.Code != http.StatusOK {
			t.Fatalf("attempt %d: expected 200, got %d", i+1, rec.Code)
		}
	}
	if rec := postLogin(handler, `{}`, "9.9.9.9"); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 on third attempt, got %d", rec.Code)
	}
}

func TestAuthRateLimitPreservesBodyForHandler(t *testing.T) {
	policy := NewAuthRateLimitPolicy("login", time.Minute, 0, 5)
	limiter := &fakeLimiter{}

	var seenBody string
	handler := AuthRateLimit(policy, limiter, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}
		seenBody = string(data)
	}))

	body := `{"email":"user@example.com","password":"secret"}`
	postLogin(handler, body, "1.2.3.4")
	if seenBody != body {
		t.Fatalf("body not preserved for handler: %q", seenBody)
	}
}

func TestAuthRateLimitDisabledPolicyPassesThrough(t *testing.T) {
	policy := NewAuthRateLimitPolicy("login", 0, 0, 0)
	handler := AuthRateLimit(policy, &fakeLimiter{}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 10; i++ {
		if rec := postLogin(handler, `{}`, "1.1.1.1"); rec.Code != http.StatusOK {
			t.Fatalf("expected pass-through, got %d", rec.Code)
		}
	}
}
