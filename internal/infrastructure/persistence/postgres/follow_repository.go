package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rafabene/folio-backend/internal/domain/entities"
	"github.com/rafabene/folio-backend/internal/domain/repositories"
)

// FollowRepository implementa repositories.FollowRepository
type FollowRepository struct {
	db *gorm.DB
}

// NewFollowRepository cria um novo FollowRepository
func NewFollowRepository(db *gorm.DB) repositories.FollowRepository {
	return &FollowRepository{db: db}
}

func (r *FollowRepository) Create(ctx context.Context, follow *entities.Follow) error {
	model := &FollowModel{
		FollowerID:  follow.FollowerID.String(),
		FollowingID: follow.FollowingID.String(),
	}

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repositories.ErrDuplicateFollow
		}
		return err
	}

	return nil
}

// Delete remove a aresta. Remover uma aresta inexistente não é erro
// (unfollow é idempotente).
func (r *FollowRepository) Delete(ctx context.Context, followerID, followingID uuid.UUID) error {
	db := r.getDB(ctx)
	return db.Where("follower_id = ? AND following_id = ?", followerID.String(), followingID.String()).
		Delete(&FollowModel{}).Error
}

func (r *FollowRepository) Exists(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	var count int64

	db := r.getDB(ctx)
	if err := db.Model(&FollowModel{}).
		Where("follower_id = ? AND following_id = ?", followerID.String(), followingID.String()).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *FollowRepository) ListFollowing(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error) {
	var rawIDs []string

	db := r.getDB(ctx)
	if err := db.Model(&FollowModel{}).
		Where("follower_id = ?", followerID.String()).
		Pluck("following_id", &rawIDs).Error; err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *FollowRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}
