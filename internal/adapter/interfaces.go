// Package adapter bridges the application to the external identity
// provider. Token verification is delegated wholesale: this layer never
// inspects token contents itself, it only asks the provider whether a bearer
// token is valid and for which identity.
package adapter

import "context"

// TokenVerifier verifies a bearer token with the identity provider and
// returns the identity (uid) it belongs to.
type TokenVerifier interface {
	// VerifyToken returns the uid encoded in a valid token. Any verification
	// failure (expired, malformed, revoked) is reported as
	// [ErrTokenRejected] (wrapped); infrastructure failures reaching the
	// provider are returned as ordinary errors.
	VerifyToken(ctx context.Context, token string) (string, error)
}
