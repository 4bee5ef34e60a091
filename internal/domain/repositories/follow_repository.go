package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/rafabene/folio-backend/internal/domain/entities"
)

// ErrDuplicateFollow é a violação de unicidade do par
// (follower, following) traduzida pela camada de persistência
var ErrDuplicateFollow = errors.New("follow edge already exists")

// FollowRepository define a interface para o grafo de seguidores
type FollowRepository interface {
	Create(ctx context.Context, follow *entities.Follow) error
	Delete(ctx context.Context, followerID, followingID uuid.UUID) error
	Exists(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)
	// ListFollowing retorna os ids dos usuários seguidos pelo follower
	ListFollowing(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error)
}
