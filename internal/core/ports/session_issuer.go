package ports

import "context"

// SessionIssuer mints, resolves and revokes opaque bearer tokens.
//
// Issue is get-or-create: at most one live token exists per account, and
// concurrent calls for the same account collapse to a single value. Tokens
// carry no embedded account data; Resolve is a store lookup returning the
// owning account id or domain.ErrInvalidToken. Revoke is immediate and
// returns domain.ErrTokenNotFound when the token is not live, so a repeated
// logout is reported as already-logged-out rather than failing hard.
type SessionIssuer interface {
	Issue(ctx context.Context, accountID string) (string, error)
	Resolve(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
}
