package util

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientIPTrustsForwardedOnlyFromProxies(t *testing.T) {
	trusted, err := NewTrustedProxies([]string{"10.0.0.0/8"})
	if err != nil {
		t.Fatalf("NewTrustedProxies: %v", err)
	}

	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		xrip       string
		trusted    *TrustedProxies
		want       string
	}{
		{
			name:       "untrusted peer keeps remote addr",
			remoteAddr: "198.51.100.10:4821",
			xff:        "203.0.113.5",
			xrip:       "203.0.113.6",
			want:       "198.51.100.10",
		},
		{
			name:       "trusted proxy exposes forwarded client",
			remoteAddr: "10.0.0.20:4821",
			xff:        "203.0.113.5",
			trusted:    trusted,
			want:       "203.0.113.5",
		},
		{
			name:       "chain walks right to left past trusted hops",
			remoteAddr: "10.0.0.20:4821",
			xff:        "203.0.113.5, 10.0.0.11",
			trusted:    trusted,
			want:       "203.0.113.5",
		},
		{
			name:       "real ip fallback when xff is unusable",
			remoteAddr: "10.0.0.20:4821",
			xff:        "not-an-ip",
			xrip:       "203.0.113.7",
			trusted:    trusted,
			want:       "203.0.113.7",
		},
		{
			name:       "nil allowlist never trusts headers",
			remoteAddr: "10.0.0.20:4821",
			xff:        "203.0.113.5",
			want:       "10.0.0.20",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xrip != "" {
				r.Header.Set("X-Real-IP", tt.xrip)
			}
			if got := ClientIP(r, tt.trusted); got != tt.want {
				t.Fatalf("ClientIP = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewTrustedProxiesRejectsBadEntries(t *testing.T) {
	if _, err := NewTrustedProxies([]string{"10.0.0.0/99"}); err == nil {
		t.Fatal("expected error for invalid CIDR")
	}
	if _, err := NewTrustedProxies([]string{"not-an-ip"}); err == nil {
		t.Fatal("expected error for invalid IP")
	}
	trusted, err := NewTrustedProxies([]string{"", "  "})
	if err != nil {
		t.Fatalf("NewTrustedProxies: %v", err)
	}
	if trusted != nil {
		t.Fatal("blank-only input should mean trust none")
	}
}

func TestWithRequestIDGeneratesAndPropagates(t *testing.T) {
	var seen string
	h := WithRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromRequest(r)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" {
		t.Fatal("request id missing from context")
	}
	if got := rec.Header().Get("X-Request-Id"); got != seen {
		t.Fatalf("response header %q, context %q", got, seen)
	}

	rec = httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Request-Id", "upstream-id")
	h.ServeHTTP(rec, r)
	if seen != "upstream-id" {
		t.Fatalf("incoming id not propagated, got %q", seen)
	}
}

func TestWithSecurityHeaders(t *testing.T) {
	h := WithSecurityHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatal("missing nosniff header")
	}
	if rec.Header().Get("Strict-Transport-Security") != "" {
		t.Fatal("HSTS must not be set for plain HTTP")
	}

	rec = httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Forwarded-Proto", "https")
	h.ServeHTTP(rec, r)
	if rec.Header().Get("Strict-Transport-Security") == "" {
		t.Fatal("HSTS expected for forwarded https")
	}
}

func TestWithCORS(t *testing.T) {
	h := WithCORS("https://ourstory.example", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "https://ourstory.example" {
		t.Fatalf("origin header = %q", rec.Header().Get("Access-Control-Allow-Origin"))
	}

	rec = httptest.NewRecorder()
	fallback := WithCORS("", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	fallback.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatal("empty origin should fall back to wildcard")
	}
}
