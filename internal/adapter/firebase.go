package adapter

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/glowclean/quote-api/internal/config"
	"github.com/glowclean/quote-api/internal/logger"
)

// ErrTokenRejected is returned by [TokenVerifier.VerifyToken] when the
// identity provider refuses a token: expired, malformed, revoked, or signed
// for a different project.
var ErrTokenRejected = errors.New("token was rejected by the identity provider")

// firebaseVerifier is the Firebase Auth implementation of [TokenVerifier].
type firebaseVerifier struct {
	client *auth.Client
	logger *logger.Logger
}

// NewFirebaseVerifier constructs a [TokenVerifier] backed by the Firebase
// Admin SDK for the configured project. When cfg.Firebase.CredentialsFile is
// empty, application default credentials are used.
func NewFirebaseVerifier(ctx context.Context, cfg config.Storage, logger *logger.Logger) (TokenVerifier, error) {
	var opts []option.ClientOption
	if cfg.Firebase.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating firebase auth client: %w", err)
	}

	logger.Info().Str("project", cfg.Firebase.ProjectID).Msg("firebase auth client created")

	return &firebaseVerifier{client: client, logger: logger}, nil
}

// VerifyToken implements [TokenVerifier]. Every call re-verifies from
// scratch; no session state is kept.
func (v *firebaseVerifier) VerifyToken(ctx context.Context, token string) (string, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("id token verification failed")
		return "", fmt.Errorf("%w: %w", ErrTokenRejected, err)
	}

	return decoded.UID, nil
}
