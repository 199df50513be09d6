package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowclean/quote-api/internal/adapter"
	"github.com/glowclean/quote-api/internal/logger"
	"github.com/glowclean/quote-api/internal/store"
	"github.com/glowclean/quote-api/models"
)

// mockVerifier implements adapter.TokenVerifier for unit tests.
type mockVerifier struct {
	verifyTokenFn func(ctx context.Context, token string) (string, error)
}

func (m *mockVerifier) VerifyToken(ctx context.Context, token string) (string, error) {
	return m.verifyTokenFn(ctx, token)
}

// mockUserRepository implements store.UserRepository for unit tests.
type mockUserRepository struct {
	findUserByUIDFn func(ctx context.Context, uid string) (models.User, error)
}

func (m *mockUserRepository) FindUserByUID(ctx context.Context, uid string) (models.User, error) {
	return m.findUserByUIDFn(ctx, uid)
}

func TestAuthenticate_Success(t *testing.T) {
	verifier := &mockVerifier{
		verifyTokenFn: func(_ context.Context, token string) (string, error) {
			assert.Equal(t, "valid-token", token)
			return "uid-1", nil
		},
	}
	users := &mockUserRepository{
		findUserByUIDFn: func(_ context.Context, uid string) (models.User, error) {
			assert.Equal(t, "uid-1", uid)
			return models.User{UID: uid, Role: models.RoleAdmin}, nil
		},
	}

	svc := NewAuthService(verifier, users, logger.Nop())

	user, err := svc.Authenticate(context.Background(), "valid-token")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", user.UID)
	assert.True(t, user.IsAdmin())
}

func TestAuthenticate_EmptyToken(t *testing.T) {
	svc := NewAuthService(&mockVerifier{}, &mockUserRepository{}, logger.Nop())

	_, err := svc.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, ErrTokenIsInvalid)
}

func TestAuthenticate_RejectedToken(t *testing.T) {
	verifier := &mockVerifier{
		verifyTokenFn: func(_ context.Context, _ string) (string, error) {
			return "", adapter.ErrTokenRejected
		},
	}

	svc := NewAuthService(verifier, &mockUserRepository{}, logger.Nop())

	_, err := svc.Authenticate(context.Background(), "expired-token")
	assert.ErrorIs(t, err, ErrTokenIsInvalid)
}

// An identity without a user record authenticates fine but carries no role;
// the transport layer decides between 401 and 403 from there.
func TestAuthenticate_NoUserRecord(t *testing.T) {
	verifier := &mockVerifier{
		verifyTokenFn: func(_ context.Context, _ string) (string, error) {
			return "uid-2", nil
		},
	}
	users := &mockUserRepository{
		findUserByUIDFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	svc := NewAuthService(verifier, users, logger.Nop())

	user, err := svc.Authenticate(context.Background(), "valid-token")
	require.NoError(t, err)
	assert.Equal(t, "uid-2", user.UID)
	assert.False(t, user.IsAdmin())
}

func TestAuthenticate_UserLookupFailure(t *testing.T) {
	lookupErr := errors.New("firestore is down")

	verifier := &mockVerifier{
		verifyTokenFn: func(_ context.Context, _ string) (string, error) {
			return "uid-3", nil
		},
	}
	users := &mockUserRepository{
		findUserByUIDFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, lookupErr
		},
	}

	svc := NewAuthService(verifier, users, logger.Nop())

	_, err := svc.Authenticate(context.Background(), "valid-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, lookupErr)
	assert.NotErrorIs(t, err, ErrTokenIsInvalid)
}
