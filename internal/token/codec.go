package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fokanendapascal/internship-management-app/internal/domain"
)

var (
	ErrMalformed        = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid token signature")
)

// Kind distinguishes short-lived access tokens from long-lived refresh tokens.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

// Claims are the verified claims carried by a signed token.
// Roles are present on access tokens only; downstream services that
// trust the token directly may read them, but the identity resolver
// always re-derives roles from the account store.
type Claims struct {
	Roles []string `json:"roles,omitempty"`
	Typ   string   `json:"typ,omitempty"`
	jwt.RegisteredClaims
}

// Kind returns the token kind encoded in the claims.
func (c *Claims) Kind() Kind {
	if c.Typ == string(KindRefresh) {
		return KindRefresh
	}
	return KindAccess
}

// IsExpired reports whether the token's exp claim is in the past.
func (c *Claims) IsExpired(now time.Time) bool {
	return c.ExpiresAt != nil && c.ExpiresAt.Before(now)
}

// Config holds signing configuration for the codec
type Config struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Codec issues and parses HMAC-SHA-256 signed tokens.
type Codec struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewCodec creates a new Codec
func NewCodec(cfg *Config) *Codec {
	accessTTL := cfg.AccessTTL
	if accessTTL == 0 {
		accessTTL = 15 * time.Minute
	}
	refreshTTL := cfg.RefreshTTL
	if refreshTTL == 0 {
		refreshTTL = 14 * 24 * time.Hour
	}
	return &Codec{
		secret:     []byte(cfg.Secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// TTL returns the configured lifetime for the given token kind.
func (c *Codec) TTL(kind Kind) time.Duration {
	if kind == KindRefresh {
		return c.refreshTTL
	}
	return c.accessTTL
}

// Issue builds and signs a token for the subject. Access tokens embed
// the role names; refresh tokens carry only the subject and a typ marker.
func (c *Codec) Issue(subject string, roles []domain.Role, kind Kind) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.TTL(kind))),
		},
	}
	if kind == KindRefresh {
		claims.Typ = string(KindRefresh)
	} else {
		claims.Roles = domain.RoleNames(roles)
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(c.secret)
}

// Decode verifies the signature and structural validity of a raw token
// and returns its claims. Expiry is not checked here; callers that care
// about liveness check the exp claim themselves.
func (c *Codec) Decode(raw string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSignature
		}
		return c.secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, ErrInvalidSignature
		}
		return nil, ErrMalformed
	}
	if !tok.Valid {
		return nil, ErrInvalidSignature
	}
	return claims, nil
}
