package security

import (
	"context"

	"github.com/fokanendapascal/internship-management-app/internal/domain"
)

type contextKey struct{}

var principalKey contextKey

// WithPrincipal binds the principal to the request context. Any
// previously bound principal is discarded.
func WithPrincipal(ctx context.Context, p *domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromContext returns the principal bound to the context, or
// nil when the request is anonymous.
func PrincipalFromContext(ctx context.Context) *domain.Principal {
	p, _ := ctx.Value(principalKey).(*domain.Principal)
	return p
}
