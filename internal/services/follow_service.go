package services

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"

	"github.com/rafabene/folio-backend/internal/domain/entities"
	"github.com/rafabene/folio-backend/internal/domain/errors"
	"github.com/rafabene/folio-backend/internal/domain/ports"
	"github.com/rafabene/folio-backend/internal/domain/repositories"
)

// FollowService contém a lógica de negócio do grafo de seguidores
type FollowService struct {
	followRepo repositories.FollowRepository
	userRepo   repositories.UserRepository
	uow        ports.UnitOfWork
	logger     ports.Logger
}

// NewFollowService cria um novo FollowService
func NewFollowService(
	followRepo repositories.FollowRepository,
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
		uow:        uow,
		logger:     logger,
	}
}

// Follow cria a aresta follower -> target.
// Auto-follow é erro de validação; alvo inexistente é "não
// encontrado"; follow duplicado é sucesso silencioso (idempotente).
func (s *FollowService) Follow(ctx context.Context, followerID, targetID uuid.UUID) error {
	edge, err := entities.NewFollow(followerID, targetID)
	if err != nil {
		return errors.ErrCannotFollowSelf
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		target, err := s.userRepo.FindByID(txCtx, targetID)
		if err != nil {
			return err
		}
		if target == nil {
			return errors.ErrUserNotFound
		}

		exists, err := s.followRepo.Exists(txCtx, followerID, targetID)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}

		return s.followRepo.Create(txCtx, edge)
	})
	// Corrida entre Exists e Create: a aresta já foi criada por outra
	// requisição, o que para o chamador é o mesmo sucesso idempotente
	if stderrors.Is(err, repositories.ErrDuplicateFollow) {
		return nil
	}
	if err != nil {
		return err
	}

	s.logger.Info("follow created", "follower_id", followerID, "target_id", targetID)
	return nil
}

// Unfollow remove a aresta follower -> target.
// Remover uma aresta inexistente é no-op silencioso (idempotente).
func (s *FollowService) Unfollow(ctx context.Context, followerID, targetID uuid.UUID) error {
	if err := s.followRepo.Delete(ctx, followerID, targetID); err != nil {
		return err
	}

	s.logger.Info("follow removed", "follower_id", followerID, "target_id", targetID)
	return nil
}

// IsFollowing verifica se a aresta follower -> target existe
func (s *FollowService) IsFollowing(ctx context.Context, followerID, targetID uuid.UUID) (bool, error) {
	return s.followRepo.Exists(ctx, followerID, targetID)
}

// ListFollowing retorna os usuários seguidos pelo follower
func (s *FollowService) ListFollowing(ctx context.Context, followerID uuid.UUID) ([]*entities.User, error) {
	ids, err := s.followRepo.ListFollowing(ctx, followerID)
	if err != nil {
		return nil, err
	}

	return s.userRepo.FindByIDs(ctx, ids)
}
