package service

import (
	"github.com/glowclean/quote-api/internal/adapter"
	"github.com/glowclean/quote-api/internal/crypto"
	"github.com/glowclean/quote-api/internal/logger"
	"github.com/glowclean/quote-api/internal/sanitize"
	"github.com/glowclean/quote-api/internal/store"
	"github.com/glowclean/quote-api/internal/validators"
)

// Services aggregates every service consumed by the transport layer.
type Services struct {
	AuthService  AuthService
	QuoteService QuoteService
}

// Deps carries the explicitly constructed dependencies of the service layer.
// The cipher, sanitizer and validator are injected values rather than
// package-level singletons so tests can substitute them.
type Deps struct {
	Storages  *store.Storages
	Verifier  adapter.TokenVerifier
	Cipher    crypto.FieldCipher
	Sanitizer *sanitize.Sanitizer
	Validator validators.QuoteRequestValidator
}

// NewServices wires the service layer from its dependencies.
func NewServices(deps Deps, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(deps.Verifier, deps.Storages.UserRepository, logger),
		QuoteService: NewQuoteService(deps.Storages.QuoteRepository, deps.Cipher, deps.Sanitizer, deps.Validator, logger),
	}
}
