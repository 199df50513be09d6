package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"github.com/glowclean/quote-api/internal/config"
	"github.com/glowclean/quote-api/internal/logger"
)

// Names of the Firestore collections used by the application.
const (
	usersCollection  = "users"
	quotesCollection = "requests"
)

// Storages aggregates every repository backed by the document database.
type Storages struct {
	UserRepository  UserRepository
	QuoteRepository QuoteRepository

	client *firestore.Client
}

// NewStorages opens a Firestore client for the configured project and wires
// the repositories on top of it. When cfg.Firebase.CredentialsFile is empty,
// application default credentials are used.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	var opts []option.ClientOption
	if cfg.Firebase.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsFile))
	}

	client, err := firestore.NewClient(ctx, cfg.Firebase.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}

	logger.Info().Str("project", cfg.Firebase.ProjectID).Msg("firestore client created")

	return &Storages{
		UserRepository:  newUserRepository(client, logger),
		QuoteRepository: newQuoteRepository(client, logger),
		client:          client,
	}, nil
}

// Close releases the underlying Firestore client.
func (s *Storages) Close() error {
	return s.client.Close()
}
