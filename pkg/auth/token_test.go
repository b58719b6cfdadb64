package auth

import (
	"errors"
	"testing"
	"time"

	"ourstory/pkg/domain"
)

func newTestTokens(t *testing.T, opts Options) *Tokens {
	t.Helper()
	tokens, err := NewTokens("test-secret", opts)
	if err != nil {
		t.Fatalf("NewTokens: %v", err)
	}
	return tokens
}

func TestNewTokensRequiresSecret(t *testing.T) {
	if _, err := NewTokens("   ", Options{}); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestMintAndVerifyAdmin(t *testing.T) {
	tokens := newTestTokens(t, Options{})

	raw, err := tokens.MintAdmin(domain.Admin{ID: 7, Email: "a@b.c", Name: "Abdullah"})
	if err != nil {
		t.Fatalf("MintAdmin: %v", err)
	}
	claims, err := tokens.Verify(raw)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("role = %q, want %q", claims.Role, domain.RoleAdmin)
	}
	if claims.Subject != "7" || claims.Email != "a@b.c" || claims.Name != "Abdullah" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestMintAndVerifyVisitor(t *testing.T) {
	tokens := newTestTokens(t, Options{})

	raw, err := tokens.MintVisitor(42)
	if err != nil {
		t.Fatalf("MintVisitor: %v", err)
	}
	claims, err := tokens.Verify(raw)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Role != domain.RoleVisitor {
		t.Fatalf("role = %q, want %q", claims.Role, domain.RoleVisitor)
	}
	if claims.Subject != "42" {
		t.Fatalf("subject = %q, want 42", claims.Subject)
	}
	if claims.Email != "" {
		t.Fatalf("visitor token must not carry an email, got %q", claims.Email)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	tokens := newTestTokens(t, Options{})

	for _, raw := range []string{"", "  ", "not.a.token", "aaaa.bbbb.cccc"} {
		if _, err := tokens.Verify(raw); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("Verify(%q) err = %v, want ErrInvalidToken", raw, err)
		}
	}
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	tokens := newTestTokens(t, Options{})
	other, err := NewTokens("another-secret", Options{})
	if err != nil {
		t.Fatalf("NewTokens: %v", err)
	}

	raw, err := other.MintAdmin(domain.Admin{ID: 1, Email: "a@b.c"})
	if err != nil {
		t.Fatalf("MintAdmin: %v", err)
	}
	if _, err := tokens.Verify(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	tokens := newTestTokens(t, Options{TTL: time.Millisecond, Leeway: time.Millisecond})

	raw, err := tokens.MintVisitor(1)
	if err != nil {
		t.Fatalf("MintVisitor: %v", err)
	}
	time.Sleep(25 * time.Millisecond)
	if _, err := tokens.Verify(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsWrongAudience(t *testing.T) {
	tokens := newTestTokens(t, Options{})
	other := newTestTokens(t, Options{Audience: "some-other-api"})

	raw, err := other.MintVisitor(1)
	if err != nil {
		t.Fatalf("MintVisitor: %v", err)
	}
	if _, err := tokens.Verify(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}
