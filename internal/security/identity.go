package security

import (
	"context"
	"time"

	"github.com/fokanendapascal/internship-management-app/internal/domain"
	"github.com/fokanendapascal/internship-management-app/internal/token"
)

// AccountStore is the account lookup the resolver depends on. It
// returns nil without error when no account matches.
type AccountStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Resolver turns raw bearer tokens into authenticated principals.
// Roles are always re-read from the account store rather than taken
// from the token, so a role change invalidates stale tokens' authority
// immediately.
type Resolver struct {
	codec    *token.Codec
	accounts AccountStore
}

// NewResolver creates a new Resolver
func NewResolver(codec *token.Codec, accounts AccountStore) *Resolver {
	return &Resolver{codec: codec, accounts: accounts}
}

// Resolve verifies the raw token and produces the principal for the
// account it names. Cryptographic failure detail is deliberately not
// exposed; callers only learn that authentication failed.
func (r *Resolver) Resolve(ctx context.Context, raw string) (*domain.Principal, error) {
	claims, err := r.codec.Decode(raw)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}
	if claims.IsExpired(time.Now()) {
		return nil, domain.ErrUnauthenticated
	}

	user, err := r.accounts.GetByEmail(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	return &domain.Principal{
		AccountID: user.ID,
		Email:     user.Email,
		Roles:     user.Roles,
	}, nil
}

// IsValid reports whether the raw token has a valid signature and has
// not expired. No account lookup is performed.
func (r *Resolver) IsValid(raw string) bool {
	claims, err := r.codec.Decode(raw)
	if err != nil {
		return false
	}
	return !claims.IsExpired(time.Now())
}
