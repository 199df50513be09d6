package service

import (
	"context"

	"github.com/glowclean/quote-api/models"
)

// AuthService authenticates a caller from a bearer token and resolves the
// caller's authorization role. Every call re-verifies from scratch; no
// session state is kept anywhere in the process.
type AuthService interface {
	// Authenticate verifies token with the identity provider and loads the
	// caller's user record. Returns [ErrTokenIsInvalid] when the token is
	// missing, malformed, expired, or revoked. An identity without a user
	// document is NOT an error: the returned user simply carries no role,
	// and the role check is the handler's decision (the read and write
	// paths answer it with different status codes).
	Authenticate(ctx context.Context, token string) (models.User, error)
}

// QuoteService implements the quote request operations: the
// validate-sanitize-encrypt-persist pipeline on the write path and the
// decrypt-in-place pass on the read paths.
type QuoteService interface {
	// Quote returns the stored document with sensitive fields decrypted,
	// or a nil map when no document exists for id (not-found is deliberately
	// indistinguishable from an empty document).
	Quote(ctx context.Context, id string) (map[string]any, error)

	// Quotes returns all stored documents, each with sensitive fields
	// decrypted.
	Quotes(ctx context.Context) ([]models.Document, error)

	// CreateQuote validates, sanitizes and encrypts req, persists it with a
	// server-assigned submission timestamp, and returns the re-read stored
	// document. Sensitive fields in the returned document remain in
	// envelope form; the create path never decrypts what it just stored.
	// Returns [ErrInvalidDataProvided] when req fails validation.
	CreateQuote(ctx context.Context, req models.QuoteRequest) (models.Document, error)
}
