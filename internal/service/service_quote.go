package service

import (
	"context"
	"fmt"
	"time"

	"github.com/glowclean/quote-api/internal/crypto"
	"github.com/glowclean/quote-api/internal/logger"
	"github.com/glowclean/quote-api/internal/sanitize"
	"github.com/glowclean/quote-api/internal/store"
	"github.com/glowclean/quote-api/internal/validators"
	"github.com/glowclean/quote-api/models"
)

// quoteService is the concrete implementation of [QuoteService].
type quoteService struct {
	quoteRepository store.QuoteRepository
	cipher          crypto.FieldCipher
	sanitizer       *sanitize.Sanitizer
	validator       validators.QuoteRequestValidator

	logger *logger.Logger
}

// NewQuoteService constructs a [QuoteService] from its injected
// dependencies. The returned service is safe for concurrent use; all state
// is read-only after construction.
func NewQuoteService(
	quoteRepository store.QuoteRepository,
	cipher crypto.FieldCipher,
	sanitizer *sanitize.Sanitizer,
	validator validators.QuoteRequestValidator,
	logger *logger.Logger,
) QuoteService {
	return &quoteService{
		quoteRepository: quoteRepository,
		cipher:          cipher,
		sanitizer:       sanitizer,
		validator:       validator,
		logger:          logger,
	}
}

// Quote implements [QuoteService].
func (s *quoteService) Quote(ctx context.Context, id string) (map[string]any, error) {
	data, err := s.quoteRepository.Quote(ctx, id)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	if err := s.decryptSensitiveFields(ctx, data); err != nil {
		return nil, err
	}

	return data, nil
}

// Quotes implements [QuoteService].
func (s *quoteService) Quotes(ctx context.Context) ([]models.Document, error) {
	documents, err := s.quoteRepository.Quotes(ctx)
	if err != nil {
		return nil, err
	}

	for _, document := range documents {
		if err := s.decryptSensitiveFields(ctx, document.Data); err != nil {
			return nil, err
		}
	}

	return documents, nil
}

// CreateQuote implements [QuoteService].
//
// Order of operations is fixed: structural validation first (reject early,
// no mutation), then per-field sanitization, then encryption of sensitive
// fields, then the server timestamp, then persistence.
func (s *quoteService) CreateQuote(ctx context.Context, req models.QuoteRequest) (models.Document, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("quote request rejected")
		return models.Document{}, ErrInvalidDataProvided
	}

	fields := req.Fields()
	for key, value := range fields {
		text, ok := value.(string)
		if !ok {
			// Boolean fields pass through unchanged.
			continue
		}

		clean := s.sanitizer.Clean(text)

		if crypto.IsSensitive(key) {
			envelope, err := s.cipher.Encrypt(clean)
			if err != nil {
				log.Err(err).Str("field", key).Msg("encrypting field failed")
				return models.Document{}, fmt.Errorf("encrypting field %q: %w", key, err)
			}
			fields[key] = envelope
			continue
		}

		fields[key] = clean
	}

	fields[models.FieldSubmittedAt] = time.Now().UTC()

	return s.quoteRepository.CreateQuote(ctx, fields)
}

// decryptSensitiveFields replaces every sensitive field stored in envelope
// form with its plaintext, in place. Values already stored as plain strings
// are left alone. A decryption failure is a hard error: corrupted stored
// data must surface, not be silently masked.
func (s *quoteService) decryptSensitiveFields(ctx context.Context, data map[string]any) error {
	log := logger.FromContext(ctx)

	for _, key := range crypto.SensitiveFields {
		value, present := data[key]
		if !present {
			continue
		}
		if _, isPlain := value.(string); isPlain {
			continue
		}

		envelope, err := envelopeFromStored(value)
		if err != nil {
			log.Err(err).Str("field", key).Msg("stored field is not a valid envelope")
			return fmt.Errorf("field %q: %w", key, err)
		}

		plaintext, err := s.cipher.Decrypt(envelope)
		if err != nil {
			log.Err(err).Str("field", key).Msg("decrypting field failed")
			return fmt.Errorf("decrypting field %q: %w", key, err)
		}

		data[key] = plaintext
	}

	return nil
}

// envelopeFromStored rebuilds a [models.Envelope] from the raw map form the
// document store hands back.
func envelopeFromStored(value any) (models.Envelope, error) {
	stored, ok := value.(map[string]any)
	if !ok {
		return models.Envelope{}, fmt.Errorf("unexpected stored type %T", value)
	}

	iv, _ := stored["iv"].(string)
	content, _ := stored["content"].(string)

	return models.Envelope{IV: iv, Content: content}, nil
}
