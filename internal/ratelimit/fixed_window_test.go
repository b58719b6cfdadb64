package ratelimit

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestFixedWindowBlocksOverQuota(t *testing.T) {
	srv := miniredis.RunT(t)
	limiter, err := NewRedisFixedWindowLimiter(srv.Addr(), "", "ourstory:ratelimit:login", 2, time.Minute)
	if err != nil {
		t.Fatalf("NewRedisFixedWindowLimiter: %v", err)
	}
	for i := 0; i < 2; i++ {
		if !limiter.Allow("10.0.0.1") {
			t.Fatalf("request %d within quota was blocked", i+1)
		}
	}
	if limiter.Allow("10.0.0.1") {
		t.Fatal("request over quota was allowed")
	}
	// another client gets its own window
	if !limiter.Allow("10.0.0.2") {
		t.Fatal("separate key must not share the exhausted window")
	}
}

func TestFixedWindowNormalizesEmptyKey(t *testing.T) {
	srv := miniredis.RunT(t)
	limiter, err := NewRedisFixedWindowLimiter(srv.Addr(), "", "ourstory:ratelimit:verify", 1, time.Minute)
	if err != nil {
		t.Fatalf("NewRedisFixedWindowLimiter: %v", err)
	}
	if !limiter.Allow("") {
		t.Fatal("first request with empty key should pass")
	}
	if limiter.Allow("   ") {
		t.Fatal("blank keys must share the unknown bucket")
	}
}

func TestFixedWindowFailsClosedOnRedisOutage(t *testing.T) {
	srv := miniredis.RunT(t)
	limiter, err := NewRedisFixedWindowLimiter(srv.Addr(), "", "ourstory:ratelimit:login", 5, time.Minute)
	if err != nil {
		t.Fatalf("NewRedisFixedWindowLimiter: %v", err)
	}
	srv.Close()
	if limiter.Allow("10.0.0.1") {
		t.Fatal("limiter must deny when redis is unreachable")
	}
}

func TestFixedWindowConstructorValidation(t *testing.T) {
	if _, err := NewRedisFixedWindowLimiter("", "", "p", 1, time.Minute); err == nil {
		t.Fatal("expected error for missing redis addr")
	}
	if _, err := NewRedisFixedWindowLimiter("localhost:6379", "", "p", 0, time.Minute); err == nil {
		t.Fatal("expected error for non-positive limit")
	}
	if _, err := NewRedisFixedWindowLimiter("localhost:6379", "", "p", 1, 0); err == nil {
		t.Fatal("expected error for non-positive window")
	}
}
