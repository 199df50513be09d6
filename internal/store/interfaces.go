package store

import (
	"context"

	"github.com/glowclean/quote-api/models"
)

// UserRepository looks up accounts in the identity system's user collection.
type UserRepository interface {
	// FindUserByUID returns the user record for the given identity.
	// Returns [ErrNoUserWasFound] when no user document exists for uid;
	// callers treat such identities as authenticated but role-less.
	FindUserByUID(ctx context.Context, uid string) (models.User, error)
}

// QuoteRepository persists and retrieves quote request documents.
//
// Documents are handled as raw field maps: by the time a record reaches this
// layer its sensitive fields are already encrypted envelopes, and decryption
// on the way out is the service layer's concern.
type QuoteRepository interface {
	// Quote fetches a single document by id. A missing document is reported
	// as a nil map with a nil error: the API deliberately does not
	// distinguish not-found from an empty document.
	Quote(ctx context.Context, id string) (map[string]any, error)

	// Quotes fetches every document in the collection.
	Quotes(ctx context.Context) ([]models.Document, error)

	// CreateQuote persists fields as a new document and re-reads it, so the
	// returned document reflects exactly what was durably stored, including
	// any storage-layer normalization.
	CreateQuote(ctx context.Context, fields map[string]any) (models.Document, error)
}
