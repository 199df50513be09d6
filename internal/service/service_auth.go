package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/glowclean/quote-api/internal/adapter"
	"github.com/glowclean/quote-api/internal/logger"
	"github.com/glowclean/quote-api/internal/store"
	"github.com/glowclean/quote-api/models"
)

// authService is the concrete implementation of [AuthService]. Verification
// is delegated to the identity provider; the role lookup goes to the user
// collection of the document store.
type authService struct {
	verifier       adapter.TokenVerifier
	userRepository store.UserRepository

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given verifier and
// user repository.
func NewAuthService(verifier adapter.TokenVerifier, userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		verifier:       verifier,
		userRepository: userRepository,
		logger:         logger,
	}
}

// Authenticate implements [AuthService].
func (a *authService) Authenticate(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return models.User{}, ErrTokenIsInvalid
	}

	uid, err := a.verifier.VerifyToken(ctx, token)
	if err != nil {
		// The provider does not let callers tell a bad token from a failed
		// verification attempt, and neither does this API: both are 401.
		log.Err(err).Msg("token verification failed")
		return models.User{}, ErrTokenIsInvalid
	}

	user, err := a.userRepository.FindUserByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			// Authenticated identity without a user record: no role.
			return models.User{UID: uid}, nil
		}
		log.Err(err).Str("uid", uid).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}
