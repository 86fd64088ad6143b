package httpapi

import (
	"context"

	"github.com/rmarques/futstats/internal/domain/account"
)

type contextKey string

const principalContextKey contextKey = "auth_principal"

// principal is the authenticated caller plus the bearer token that proved it.
// The token rides along because session operations (sign-out, favorites) are
// keyed by token, not by account id.
type principal struct {
	Account account.Account
	Token   string
}

func withPrincipal(ctx context.Context, p principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

func principalFromContext(ctx context.Context) (principal, bool) {
	p, ok := ctx.Value(principalContextKey).(principal)
	return p, ok
}
