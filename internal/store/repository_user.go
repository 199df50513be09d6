package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/glowclean/quote-api/internal/logger"
	"github.com/glowclean/quote-api/models"
)

// userRepository is the Firestore-backed implementation of [UserRepository].
type userRepository struct {
	client *firestore.Client
	logger *logger.Logger
}

func newUserRepository(client *firestore.Client, logger *logger.Logger) UserRepository {
	return &userRepository{client: client, logger: logger}
}

// FindUserByUID implements [UserRepository]. Only the role attribute of the
// user document is read; a document without a role field yields a user with
// an empty role, which no authorization check accepts.
func (r *userRepository) FindUserByUID(ctx context.Context, uid string) (models.User, error) {
	log := logger.FromContext(ctx)

	if uid == "" {
		return models.User{}, ErrNoUserWasFound
	}

	snapshot, err := r.client.Collection(usersCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("uid", uid).Msg("fetching user document failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	role, _ := snapshot.Data()["role"].(string)

	return models.User{UID: uid, Role: role}, nil
}
