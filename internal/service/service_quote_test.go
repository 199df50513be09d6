package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowclean/quote-api/internal/crypto"
	"github.com/glowclean/quote-api/internal/logger"
	"github.com/glowclean/quote-api/internal/sanitize"
	"github.com/glowclean/quote-api/internal/validators"
	"github.com/glowclean/quote-api/models"
)

// mockQuoteRepository implements store.QuoteRepository for unit tests.
type mockQuoteRepository struct {
	quoteFn       func(ctx context.Context, id string) (map[string]any, error)
	quotesFn      func(ctx context.Context) ([]models.Document, error)
	createQuoteFn func(ctx context.Context, fields map[string]any) (models.Document, error)
}

func (m *mockQuoteRepository) Quote(ctx context.Context, id string) (map[string]any, error) {
	return m.quoteFn(ctx, id)
}

func (m *mockQuoteRepository) Quotes(ctx context.Context) ([]models.Document, error) {
	return m.quotesFn(ctx)
}

func (m *mockQuoteRepository) CreateQuote(ctx context.Context, fields map[string]any) (models.Document, error) {
	return m.createQuoteFn(ctx, fields)
}

func newQuoteService(t *testing.T, repo *mockQuoteRepository) (QuoteService, crypto.FieldCipher) {
	t.Helper()

	cipher, err := crypto.NewFieldCipher(bytes.Repeat([]byte{0x24}, 32))
	require.NoError(t, err)

	validator, err := validators.NewQuoteRequestValidator()
	require.NoError(t, err)

	return NewQuoteService(repo, cipher, sanitize.NewSanitizer(), validator, logger.Nop()), cipher
}

func validQuoteRequest() models.QuoteRequest {
	return models.QuoteRequest{
		FullName:     "John Smith",
		Email:        "john@example.com",
		PhoneNumber:  "+447911123456",
		Postcode:     "SW1A 1AA",
		CleaningType: "deep",
		ServiceLevel: "standard",
		Rooms:        "3",
		Bathrooms:    "2",
		Kitchens:     "1",
		Status:       models.StatusAwaitingQuote,
	}
}

// storedEnvelope encrypts plaintext and returns it in the raw map form the
// document store would hand back.
func storedEnvelope(t *testing.T, cipher crypto.FieldCipher, plaintext string) map[string]any {
	t.Helper()
	envelope, err := cipher.Encrypt(plaintext)
	require.NoError(t, err)
	return map[string]any{"iv": envelope.IV, "content": envelope.Content}
}

func TestCreateQuote_EncryptsSensitiveFields(t *testing.T) {
	var persisted map[string]any
	repo := &mockQuoteRepository{
		createQuoteFn: func(_ context.Context, fields map[string]any) (models.Document, error) {
			persisted = fields
			return models.Document{ID: "doc-1", Data: fields}, nil
		},
	}
	svc, cipher := newQuoteService(t, repo)

	doc, err := svc.CreateQuote(context.Background(), validQuoteRequest())
	require.NoError(t, err)
	assert.Equal(t, "doc-1", doc.ID)

	for _, key := range crypto.SensitiveFields {
		envelope, ok := persisted[key].(models.Envelope)
		require.True(t, ok, "field %q should be stored as an envelope, got %T", key, persisted[key])

		plaintext, err := cipher.Decrypt(envelope)
		require.NoError(t, err)
		assert.Equal(t, validQuoteRequest().Fields()[key], plaintext)
	}

	// Non-sensitive fields stay plaintext.
	assert.Equal(t, "deep", persisted[models.FieldCleaningType])
	assert.Equal(t, "3", persisted[models.FieldRooms])
	assert.Equal(t, string(models.StatusAwaitingQuote), persisted[models.FieldStatus])
}

func TestCreateQuote_AssignsSubmittedAt(t *testing.T) {
	repo := &mockQuoteRepository{
		createQuoteFn: func(_ context.Context, fields map[string]any) (models.Document, error) {
			return models.Document{ID: "doc-1", Data: fields}, nil
		},
	}
	svc, _ := newQuoteService(t, repo)

	before := time.Now().UTC()
	doc, err := svc.CreateQuote(context.Background(), validQuoteRequest())
	require.NoError(t, err)

	submittedAt, ok := doc.Data[models.FieldSubmittedAt].(time.Time)
	require.True(t, ok)
	assert.False(t, submittedAt.Before(before))
	assert.False(t, submittedAt.After(time.Now().UTC()))
}

func TestCreateQuote_SanitizesFields(t *testing.T) {
	var persisted map[string]any
	repo := &mockQuoteRepository{
		createQuoteFn: func(_ context.Context, fields map[string]any) (models.Document, error) {
			persisted = fields
			return models.Document{ID: "doc-1", Data: fields}, nil
		},
	}
	svc, cipher := newQuoteService(t, repo)

	info := `high windows <a href="evil">click</a> please`
	req := validQuoteRequest()
	req.CleaningType = "<b>deep</b>"
	req.FullName = `John <a href="evil">click</a>Smith`
	req.AdditionalInfo = &info

	_, err := svc.CreateQuote(context.Background(), req)
	require.NoError(t, err)

	// Anchor tags are dropped together with their text content.
	assert.Equal(t, "deep", persisted[models.FieldCleaningType])
	assert.Equal(t, "high windows  please", persisted[models.FieldAdditionalInfo])

	envelope, ok := persisted[models.FieldFullName].(models.Envelope)
	require.True(t, ok)
	plaintext, err := cipher.Decrypt(envelope)
	require.NoError(t, err)
	assert.Equal(t, "John Smith", plaintext)
}

func TestCreateQuote_BooleanPassesThrough(t *testing.T) {
	var persisted map[string]any
	repo := &mockQuoteRepository{
		createQuoteFn: func(_ context.Context, fields map[string]any) (models.Document, error) {
			persisted = fields
			return models.Document{ID: "doc-1", Data: fields}, nil
		},
	}
	svc, _ := newQuoteService(t, repo)

	oven := true
	req := validQuoteRequest()
	req.OvenCleaning = &oven

	_, err := svc.CreateQuote(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, true, persisted[models.FieldOvenCleaning])
}

func TestCreateQuote_RejectsInvalidRequest(t *testing.T) {
	repo := &mockQuoteRepository{
		createQuoteFn: func(_ context.Context, _ map[string]any) (models.Document, error) {
			t.Fatal("repository must not be called for invalid data")
			return models.Document{}, nil
		},
	}
	svc, _ := newQuoteService(t, repo)

	req := validQuoteRequest()
	req.PhoneNumber = "12345"

	_, err := svc.CreateQuote(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestQuote_DecryptsSensitiveFields(t *testing.T) {
	var cipherRef crypto.FieldCipher
	repo := &mockQuoteRepository{
		quoteFn: func(_ context.Context, id string) (map[string]any, error) {
			assert.Equal(t, "doc-1", id)
			return map[string]any{
				models.FieldFullName:     storedEnvelope(t, cipherRef, "John Smith"),
				models.FieldEmail:        storedEnvelope(t, cipherRef, "john@example.com"),
				models.FieldCleaningType: "deep",
			}, nil
		},
	}
	svc, cipher := newQuoteService(t, repo)
	cipherRef = cipher

	data, err := svc.Quote(context.Background(), "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "John Smith", data[models.FieldFullName])
	assert.Equal(t, "john@example.com", data[models.FieldEmail])
	assert.Equal(t, "deep", data[models.FieldCleaningType])
}

// Sensitive fields already stored as plain strings are left alone.
func TestQuote_SkipsPlainStringValues(t *testing.T) {
	repo := &mockQuoteRepository{
		quoteFn: func(_ context.Context, _ string) (map[string]any, error) {
			return map[string]any{models.FieldFullName: "already plaintext"}, nil
		},
	}
	svc, _ := newQuoteService(t, repo)

	data, err := svc.Quote(context.Background(), "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "already plaintext", data[models.FieldFullName])
}

func TestQuote_MissingDocumentIsNil(t *testing.T) {
	repo := &mockQuoteRepository{
		quoteFn: func(_ context.Context, _ string) (map[string]any, error) {
			return nil, nil
		},
	}
	svc, _ := newQuoteService(t, repo)

	data, err := svc.Quote(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestQuote_CorruptedEnvelopeIsHardError(t *testing.T) {
	repo := &mockQuoteRepository{
		quoteFn: func(_ context.Context, _ string) (map[string]any, error) {
			return map[string]any{
				models.FieldFullName: map[string]any{"iv": "zz", "content": "zz"},
			}, nil
		},
	}
	svc, _ := newQuoteService(t, repo)

	_, err := svc.Quote(context.Background(), "doc-1")
	assert.ErrorIs(t, err, crypto.ErrMalformedEnvelope)
}

func TestQuotes_DecryptsEveryDocument(t *testing.T) {
	var cipherRef crypto.FieldCipher
	repo := &mockQuoteRepository{
		quotesFn: func(_ context.Context) ([]models.Document, error) {
			return []models.Document{
				{ID: "a", Data: map[string]any{models.FieldFullName: storedEnvelope(t, cipherRef, "Alice")}},
				{ID: "b", Data: map[string]any{models.FieldFullName: storedEnvelope(t, cipherRef, "Bob")}},
			}, nil
		},
	}
	svc, cipher := newQuoteService(t, repo)
	cipherRef = cipher

	documents, err := svc.Quotes(context.Background())
	require.NoError(t, err)
	require.Len(t, documents, 2)
	assert.Equal(t, "Alice", documents[0].Data[models.FieldFullName])
	assert.Equal(t, "Bob", documents[1].Data[models.FieldFullName])
}

func TestQuotes_RepositoryErrorPropagates(t *testing.T) {
	repoErr := errors.New("firestore is down")
	repo := &mockQuoteRepository{
		quotesFn: func(_ context.Context) ([]models.Document, error) {
			return nil, repoErr
		},
	}
	svc, _ := newQuoteService(t, repo)

	_, err := svc.Quotes(context.Background())
	assert.ErrorIs(t, err, repoErr)
}
