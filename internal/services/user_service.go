package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/rafabene/folio-backend/internal/domain/entities"
	"github.com/rafabene/folio-backend/internal/domain/errors"
	"github.com/rafabene/folio-backend/internal/domain/ports"
	"github.com/rafabene/folio-backend/internal/domain/repositories"
)

// UserService contém a lógica de negócio para perfis de usuários
type UserService struct {
	userRepo repositories.UserRepository
	uow      ports.UnitOfWork
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		uow:      uow,
		logger:   logger,
	}
}

// GetUser busca um usuário por ID
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// GetUserByUsername busca um usuário por username
func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile aplica uma atualização parcial de perfil ao próprio
// usuário (display_name, bio e avatar_url apenas)
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, update entities.ProfileUpdate) (*entities.User, error) {
	var updated *entities.User

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		user, err := s.userRepo.FindByID(txCtx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return errors.ErrUserNotFound
		}

		user.ApplyProfileUpdate(update)

		if err := s.userRepo.Update(txCtx, user); err != nil {
			return err
		}

		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("profile updated", "user_id", userID)
	return updated, nil
}
