package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"ourstory/pkg/domain"
)

const (
	defaultIssuer   = "ourstory"
	defaultAudience = "ourstory-api"
	defaultTTL      = 24 * time.Hour
)

var defaultLeeway = 30 * time.Second

// ErrInvalidToken covers parse, signature, expiry and claim failures.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the token payload. Role distinguishes admin tokens from
// visitor tokens issued by the verification flow.
type Claims struct {
	Email string      `json:"email,omitempty"`
	Name  string      `json:"name,omitempty"`
	Role  domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Tokens mints and verifies HS256 bearer tokens. The signing secret is
// required; there is deliberately no development fallback.
type Tokens struct {
	secret   []byte
	ttl      time.Duration
	issuer   string
	audience string
	leeway   time.Duration
}

// Options overrides token defaults (24h TTL, 30s leeway).
type Options struct {
	TTL      time.Duration
	Issuer   string
	Audience string
	Leeway   time.Duration
}

// NewTokens builds a token service from the signing secret.
func NewTokens(secret string, opts Options) (*Tokens, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, errors.New("token signing secret is required")
	}
	if opts.TTL <= 0 {
		opts.TTL = defaultTTL
	}
	if strings.TrimSpace(opts.Issuer) == "" {
		opts.Issuer = defaultIssuer
	}
	if strings.TrimSpace(opts.Audience) == "" {
		opts.Audience = defaultAudience
	}
	if opts.Leeway <= 0 {
		opts.Leeway = defaultLeeway
	}
	return &Tokens{
		secret:   []byte(secret),
		ttl:      opts.TTL,
		issuer:   opts.Issuer,
		audience: opts.Audience,
		leeway:   opts.Leeway,
	}, nil
}

// MintAdmin issues a 24h admin token carrying id, email and name.
func (t *Tokens) MintAdmin(admin domain.Admin) (string, error) {
	return t.mint(fmt.Sprintf("%d", admin.ID), admin.Email, admin.Name, domain.RoleAdmin)
}

// MintVisitor issues a 24h visitor token for a verified visitor row.
func (t *Tokens) MintVisitor(visitorID int64) (string, error) {
	return t.mint(fmt.Sprintf("%d", visitorID), "", "", domain.RoleVisitor)
}

func (t *Tokens) mint(subject, email, name string, role domain.Role) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Email: email,
		Name:  name,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    t.issuer,
			Audience:  jwt.ClaimStrings{t.audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify parses the token and returns its claims. Any failure maps to
// ErrInvalidToken so callers can treat all bad tokens alike.
func (t *Tokens) Verify(token string) (Claims, error) {
	claims := Claims{}
	token = strings.TrimSpace(token)
	if token == "" {
		return claims, ErrInvalidToken
	}
	parsed, err := jwt.ParseWithClaims(token, &claims, func(tok *jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithAudience(t.audience),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(t.leeway),
	)
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}
	if strings.TrimSpace(claims.Subject) == "" || claims.Role == "" {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}
