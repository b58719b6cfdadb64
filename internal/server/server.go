package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"ourstory/internal/app"
	"ourstory/internal/ratelimit"
	"ourstory/internal/util"
	"ourstory/pkg/auth"
	"ourstory/pkg/domain"
)

// Config wires required dependencies for the HTTP server.
type Config struct {
	App *app.App

	// Rate limiting is enabled only when RedisAddr is set.
	RedisAddr                string
	RedisPassword            string
	LoginRateLimitPerMinute  int
	VerifyRateLimitPerMinute int
	AIRateLimitPerMinute     int

	MaxUploadBytes int64

	// UploadsDir, when non-empty, is served under /uploads/.
	UploadsDir string

	AllowedOrigin  string
	TrustedProxies *util.TrustedProxies
}

// Server exposes the HTTP endpoints backing the site.
type Server struct {
	app            *app.App
	mux            *http.ServeMux
	maxUploadBytes int64
	allowedOrigin  string
	trustedProxies *util.TrustedProxies

	loginLimiter  *ratelimit.FixedWindowLimiter
	verifyLimiter *ratelimit.FixedWindowLimiter
	aiLimiter     *ratelimit.FixedWindowLimiter
}

// New constructs the server with routes configured.
func New(cfg Config) (*Server, error) {
	s := &Server{
		app:            cfg.App,
		mux:            http.NewServeMux(),
		maxUploadBytes: normalizeMaxBytes(cfg.MaxUploadBytes),
		allowedOrigin:  cfg.AllowedOrigin,
		trustedProxies: cfg.TrustedProxies,
	}
	if cfg.RedisAddr != "" {
		rateWindow := time.Minute
		newLimiter := func(name string, limit, fallback int) (*ratelimit.FixedWindowLimiter, error) {
			if limit <= 0 {
				limit = fallback
			}
			prefix := "ourstory:ratelimit:" + name
			limiter, err := ratelimit.NewRedisFixedWindowLimiter(cfg.RedisAddr, cfg.RedisPassword, prefix, limit, rateWindow)
			if err != nil {
				return nil, fmt.Errorf("init %s limiter: %w", name, err)
			}
			return limiter, nil
		}
		var err error
		if s.loginLimiter, err = newLimiter("login", cfg.LoginRateLimitPerMinute, 10); err != nil {
			return nil, err
		}
		if s.verifyLimiter, err = newLimiter("verify", cfg.VerifyRateLimitPerMinute, 10); err != nil {
			return nil, err
		}
		if s.aiLimiter, err = newLimiter("ai", cfg.AIRateLimitPerMinute, 20); err != nil {
			return nil, err
		}
	}
	s.routes(cfg.UploadsDir)
	return s, nil
}

// Router returns the configured handler with middleware applied.
func (s *Server) Router() http.Handler {
	return util.WithSecurityHeaders(
		util.WithCORS(s.allowedOrigin,
			util.WithRequestID(
				util.WithRequestLog(s.mux))))
}

func (s *Server) routes(uploadsDir string) {
	s.mux.HandleFunc("/healthz", s.handleHealth)

	// auth
	s.mux.HandleFunc("/api/admin/login", s.handleLogin)
	s.mux.HandleFunc("/api/admin/register", s.handleRegister)
	s.mux.HandleFunc("/api/auth/verify", s.handleVerify)

	// admin content CRUD
	for path, res := range map[string]resource{
		"/api/admin/memories":     s.memoriesResource(),
		"/api/admin/gallery":      s.galleryResource(),
		"/api/admin/quotes":       s.quotesResource(),
		"/api/admin/foods":        s.foodsResource(),
		"/api/admin/songs":        s.songsResource(),
		"/api/admin/movies":       s.moviesResource(),
		"/api/admin/memory-books": s.memoryBooksResource(),
		"/api/admin/navigation":   s.navigationResource(),
	} {
		s.mux.Handle(path, s.adminOnly(s.handleCollection(res)))
		s.mux.Handle(path+"/", s.adminOnly(s.handleItem(path+"/", res)))
	}
	s.mux.Handle("/api/admin/page-content", s.adminOnly(s.handlePageContent))
	s.mux.Handle("/api/admin/visitors", s.adminOnly(s.handleVisitors))
	s.mux.Handle("/api/admin/ai/captions/", s.adminOnly(s.handleCaptions))
	s.mux.Handle("/api/admin/ai/generate-caption", s.adminOnly(s.handleGenerateCaption))

	// public
	s.mux.HandleFunc("/api/public/featured-content", s.handleFeatured)
	s.mux.HandleFunc("/api/public/gallery", s.handlePublicGallery)
	s.mux.HandleFunc("/api/public/memories", s.handlePublicMemories)
	s.mux.HandleFunc("/api/public/quotes", s.handlePublicQuotes)

	// uploads and the assistant
	s.mux.HandleFunc("/api/upload", s.handleUpload)
	s.mux.HandleFunc("/api/ai/relationship", s.handleRelationship)
	if uploadsDir != "" {
		s.mux.Handle("/uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir))))
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// auth wrappers
type authHandler func(http.ResponseWriter, *http.Request, auth.Claims)

func (s *Server) authenticated(next authHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		claims, err := s.app.Tokens().Verify(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		next(w, r, claims)
	})
}

func (s *Server) adminOnly(next authHandler) http.Handler {
	return s.authenticated(func(w http.ResponseWriter, r *http.Request, claims auth.Claims) {
		if claims.Role != domain.RoleAdmin {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		next(w, r, claims)
	})
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if token == "" {
		return "", false
	}
	return token, true
}

// writeAppError maps app-layer failures onto the response taxonomy.
// Unexpected errors are logged with the operation name and surface as a
// generic 500.
func (s *Server) writeAppError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var verr app.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Msg)
	case errors.Is(err, app.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, app.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, app.ErrWrongAnswer):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, app.ErrAdminExists):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		util.LoggerFromContext(r.Context()).Error("request failed", "op", op, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (s *Server) audit(r *http.Request, event, outcome string, attrs ...any) {
	logAttrs := []any{
		"event", event,
		"outcome", outcome,
		"path", r.URL.Path,
		"method", r.Method,
		"ip", s.clientIP(r),
	}
	logAttrs = append(logAttrs, attrs...)
	if outcome == "success" {
		slog.Info("security_event", logAttrs...)
		return
	}
	slog.Warn("security_event", logAttrs...)
}

// allowRate is a no-op when rate limiting is not configured.
func (s *Server) allowRate(w http.ResponseWriter, r *http.Request, limiter *ratelimit.FixedWindowLimiter, msg string) bool {
	if limiter == nil {
		return true
	}
	key := r.URL.Path + "|" + s.clientIP(r)
	if limiter.Allow(key) {
		return true
	}
	w.Header().Set("Retry-After", "60")
	writeError(w, http.StatusTooManyRequests, msg)
	return false
}

func (s *Server) clientIP(r *http.Request) string {
	return util.ClientIP(r, s.trustedProxies)
}

func decodeJSON[T any](r *http.Request) (T, error) {
	var v T
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&v); err != nil {
		return v, app.ValidationError{Msg: "invalid JSON body"}
	}
	return v, nil
}

func methodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func normalizeMaxBytes(value int64) int64 {
	if value <= 0 {
		return 10 * 1024 * 1024
	}
	return value
}
