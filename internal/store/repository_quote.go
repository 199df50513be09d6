package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/glowclean/quote-api/internal/logger"
	"github.com/glowclean/quote-api/models"
)

// quoteRepository is the Firestore-backed implementation of
// [QuoteRepository].
type quoteRepository struct {
	client *firestore.Client
	logger *logger.Logger
}

func newQuoteRepository(client *firestore.Client, logger *logger.Logger) QuoteRepository {
	return &quoteRepository{client: client, logger: logger}
}

// Quote implements [QuoteRepository].
func (r *quoteRepository) Quote(ctx context.Context, id string) (map[string]any, error) {
	log := logger.FromContext(ctx)

	snapshot, err := r.client.Collection(quotesCollection).Doc(id).Get(ctx)
	if err != nil {
		// Missing documents are not an error at the API level.
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		log.Err(err).Str("id", id).Msg("fetching quote document failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return snapshot.Data(), nil
}

// Quotes implements [QuoteRepository].
func (r *quoteRepository) Quotes(ctx context.Context) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	iter := r.client.Collection(quotesCollection).Documents(ctx)
	defer iter.Stop()

	documents := make([]models.Document, 0)
	for {
		snapshot, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			log.Err(err).Msg("iterating quote documents failed")
			return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		documents = append(documents, models.Document{
			ID:   snapshot.Ref.ID,
			Data: snapshot.Data(),
		})
	}

	return documents, nil
}

// CreateQuote implements [QuoteRepository]. The stored document is re-read
// after the write rather than echoing the local copy.
func (r *quoteRepository) CreateQuote(ctx context.Context, fields map[string]any) (models.Document, error) {
	log := logger.FromContext(ctx)

	ref, _, err := r.client.Collection(quotesCollection).Add(ctx, fields)
	if err != nil {
		log.Err(err).Msg("persisting quote document failed")
		return models.Document{}, fmt.Errorf("%w: %w", ErrQuoteNotSaved, err)
	}

	snapshot, err := ref.Get(ctx)
	if err != nil {
		log.Err(err).Str("id", ref.ID).Msg("re-reading stored quote document failed")
		return models.Document{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return models.Document{ID: snapshot.Ref.ID, Data: snapshot.Data()}, nil
}
