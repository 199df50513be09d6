package validators

import (
	"context"

	"github.com/glowclean/quote-api/models"
)

// QuoteRequestValidator checks an inbound quote request against the accepted
// record shape. Validation is all-or-nothing: a request is either accepted
// whole or rejected whole, with no field-level error detail exposed to
// callers.
type QuoteRequestValidator interface {
	// Validate returns nil when req matches the accepted shape and
	// [ErrInvalidQuoteRequest] (wrapped) otherwise.
	Validate(ctx context.Context, req models.QuoteRequest) error
}
