package services

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"

	"github.com/rafabene/folio-backend/internal/domain/entities"
	"github.com/rafabene/folio-backend/internal/domain/errors"
	"github.com/rafabene/folio-backend/internal/domain/ports"
	"github.com/rafabene/folio-backend/internal/domain/repositories"
	"github.com/rafabene/folio-backend/internal/domain/valueobjects"
)

// AuthService contém a lógica de registro e autenticação
type AuthService struct {
	userRepo repositories.UserRepository
	uow      ports.UnitOfWork
	hasher   ports.PasswordHasher
	tokens   ports.TokenIssuer
	logger   ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		uow:      uow,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// RegisterInput representa os dados para registrar um usuário
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// Register cria um novo usuário e emite um token de acesso
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*entities.User, string, error) {
	s.logger.Info("registering user", "email", input.Email, "username", input.Username)

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, "", errors.ErrInvalidEmail
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, "", err
	}

	user := &entities.User{
		Email:        email,
		Username:     input.Username,
		PasswordHash: hash,
	}

	if err := user.Validate(); err != nil {
		return nil, "", &errors.DomainError{
			Type:    errors.ProblemTypeValidation,
			Message: err.Error(),
			Err:     errors.ErrValidation,
		}
	}

	// Checagens de unicidade e insert na mesma transação
	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.userRepo.FindByEmail(txCtx, email.String())
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.ErrEmailAlreadyExists
		}

		existing, err = s.userRepo.FindByUsername(txCtx, input.Username)
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.ErrUsernameAlreadyTaken
		}

		return s.userRepo.Create(txCtx, user)
	})
	// Corrida entre as checagens e o insert: outro registro venceu a
	// unicidade. Resolve qual campo colidiu para manter o mesmo
	// contrato de erro do caminho sem corrida.
	if stderrors.Is(err, repositories.ErrDuplicateUser) {
		existing, lookupErr := s.userRepo.FindByEmail(ctx, email.String())
		if lookupErr == nil && existing != nil {
			return nil, "", errors.ErrEmailAlreadyExists
		}
		return nil, "", errors.ErrUsernameAlreadyTaken
	}
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return user, token, nil
}

// LoginInput representa as credenciais de login
type LoginInput struct {
	Email    string
	Password string
}

// Login autentica um usuário e emite um token de acesso.
// "Email inexistente" e "senha incorreta" retornam o mesmo erro para
// não permitir enumeração de usuários.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*entities.User, string, error) {
	// Canonicaliza igual ao registro; email malformado cai no mesmo
	// erro de credenciais
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, "", errors.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, "", err
	}

	if user == nil || !s.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, "", errors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return user, token, nil
}

// ResolveActor busca o usuário correspondente a um token já verificado.
// Retorna nil (sem erro) quando o usuário não existe mais.
func (s *AuthService) ResolveActor(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}
