package services_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/google/uuid"

	"github.com/rafabene/folio-backend/internal/domain/entities"
	"github.com/rafabene/folio-backend/internal/domain/errors"
	"github.com/rafabene/folio-backend/internal/domain/repositories"
	"github.com/rafabene/folio-backend/internal/services"
)

func TestAuthServiceRegister(t *testing.T) {
	t.Run("registra usuário e emite token", func(t *testing.T) {
		env := setupTestEnv(t)
		svc := env.authService()

		user, token, err := svc.Register(context.Background(), services.RegisterInput{
			Email:    "alice@example.com",
			Username: "alice",
			Password: "password123",
		})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if user.Email.String() != "alice@example.com" || user.Username != "alice" {
			t.Errorf("esperava usuário criado com os dados informados, obteve %+v", user)
		}
		if token == "" {
			t.Error("esperava token emitido")
		}
		if user.PasswordHash == "password123" {
			t.Error("não esperava senha em claro armazenada")
		}
	})

	t.Run("rejeita email inválido", func(t *testing.T) {
		env := setupTestEnv(t)
		svc := env.authService()

		_, _, err := svc.Register(context.Background(), services.RegisterInput{
			Email:    "not-an-email",
			Username: "alice",
			Password: "password123",
		})
		if !stderrors.Is(err, errors.ErrInvalidEmail) {
			t.Errorf("esperava ErrInvalidEmail, obteve %v", err)
		}
	})

	t.Run("rejeita email já registrado", func(t *testing.T) {
		env := setupTestEnv(t)
		svc := env.authService()
		env.seedUser(t, "alice")

		_, _, err := svc.Register(context.Background(), services.RegisterInput{
			Email:    "alice@example.com",
			Username: "alice2",
			Password: "password123",
		})
		if !stderrors.Is(err, errors.ErrEmailAlreadyExists) {
			t.Errorf("esperava ErrEmailAlreadyExists, obteve %v", err)
		}
	})

	t.Run("rejeita username já em uso", func(t *testing.T) {
		env := setupTestEnv(t)
		svc := env.authService()
		env.seedUser(t, "alice")

		_, _, err := svc.Register(context.Background(), services.RegisterInput{
			Email:    "other@example.com",
			Username: "alice",
			Password: "password123",
		})
		if !stderrors.Is(err, errors.ErrUsernameAlreadyTaken) {
			t.Errorf("esperava ErrUsernameAlreadyTaken, obteve %v", err)
		}
	})
}

// passthroughUoW executa a função diretamente, sem transação real
type passthroughUoW struct{}

func (passthroughUoW) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (passthroughUoW) Commit(ctx context.Context) error                   { return nil }
func (passthroughUoW) Rollback(ctx context.Context) error                 { return nil }
func (passthroughUoW) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// racingUserRepo simula outro registro vencendo a corrida entre as
// checagens de unicidade e o insert: as buscas dentro da transação não
// veem o conflito, o insert colide no unique index, e só depois o
// registro vencedor fica visível por email (nil quando a colisão foi
// por username)
type racingUserRepo struct {
	winner       *entities.User
	emailLookups int
}

func (r *racingUserRepo) Create(ctx context.Context, user *entities.User) error {
	return repositories.ErrDuplicateUser
}

func (r *racingUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return nil, nil
}

func (r *racingUserRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.User, error) {
	return nil, nil
}

func (r *racingUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	r.emailLookups++
	if r.emailLookups == 1 {
		return nil, nil
	}
	return r.winner, nil
}

func (r *racingUserRepo) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	return nil, nil
}

func (r *racingUserRepo) Update(ctx context.Context, user *entities.User) error {
	return nil
}

func TestAuthServiceRegisterRace(t *testing.T) {
	newService := func(repo repositories.UserRepository) *services.AuthService {
		return services.NewAuthService(repo, passthroughUoW{}, fakeHasher{}, fakeTokens{}, noopLogger{})
	}

	input := services.RegisterInput{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "password123",
	}

	t.Run("colisão concorrente por email retorna conflito de email", func(t *testing.T) {
		svc := newService(&racingUserRepo{winner: &entities.User{ID: uuid.New()}})

		_, _, err := svc.Register(context.Background(), input)
		if !stderrors.Is(err, errors.ErrEmailAlreadyExists) {
			t.Errorf("esperava ErrEmailAlreadyExists, obteve %v", err)
		}
	})

	t.Run("colisão concorrente por username retorna conflito de username", func(t *testing.T) {
		svc := newService(&racingUserRepo{})

		_, _, err := svc.Register(context.Background(), input)
		if !stderrors.Is(err, errors.ErrUsernameAlreadyTaken) {
			t.Errorf("esperava ErrUsernameAlreadyTaken, obteve %v", err)
		}
	})
}

func TestAuthServiceLogin(t *testing.T) {
	t.Run("autentica com credenciais corretas", func(t *testing.T) {
		env := setupTestEnv(t)
		svc := env.authService()
		seeded := env.seedUser(t, "alice")

		user, token, err := svc.Login(context.Background(), services.LoginInput{
			Email:    "alice@example.com",
			Password: "password",
		})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if user.ID != seeded.ID {
			t.Errorf("esperava o usuário registrado, obteve %+v", user)
		}
		if token == "" {
			t.Error("esperava token emitido")
		}
	})

	t.Run("aceita o email com a mesma capitalização usada no registro", func(t *testing.T) {
		env := setupTestEnv(t)
		svc := env.authService()

		registered, _, err := svc.Register(context.Background(), services.RegisterInput{
			Email:    "Alice@Example.com",
			Username: "alice",
			Password: "password123",
		})
		if err != nil {
			t.Fatalf("falha no registro: %v", err)
		}

		user, _, err := svc.Login(context.Background(), services.LoginInput{
			Email:    "Alice@Example.com",
			Password: "password123",
		})
		if err != nil {
			t.Fatalf("esperava login com o mesmo email do registro, obteve erro: %v", err)
		}
		if user.ID != registered.ID {
			t.Errorf("esperava o usuário registrado, obteve %+v", user)
		}
	})

	t.Run("email malformado retorna credenciais inválidas", func(t *testing.T) {
		env := setupTestEnv(t)
		svc := env.authService()

		_, _, err := svc.Login(context.Background(), services.LoginInput{
			Email:    "not-an-email",
			Password: "password",
		})
		if !stderrors.Is(err, errors.ErrInvalidCredentials) {
			t.Errorf("esperava ErrInvalidCredentials, obteve %v", err)
		}
	})

	t.Run("senha incorreta e email inexistente retornam o mesmo erro", func(t *testing.T) {
		env := setupTestEnv(t)
		svc := env.authService()
		env.seedUser(t, "alice")

		_, _, badPassword := svc.Login(context.Background(), services.LoginInput{
			Email:    "alice@example.com",
			Password: "wrong",
		})
		_, _, missingUser := svc.Login(context.Background(), services.LoginInput{
			Email:    "nobody@example.com",
			Password: "password",
		})

		if !stderrors.Is(badPassword, errors.ErrInvalidCredentials) {
			t.Errorf("esperava ErrInvalidCredentials para senha incorreta, obteve %v", badPassword)
		}
		if !stderrors.Is(missingUser, errors.ErrInvalidCredentials) {
			t.Errorf("esperava ErrInvalidCredentials para email inexistente, obteve %v", missingUser)
		}
	})
}

func TestAuthServiceResolveActor(t *testing.T) {
	t.Run("usuário removido resolve para nil sem erro", func(t *testing.T) {
		env := setupTestEnv(t)
		svc := env.authService()
		user := env.seedUser(t, "alice")

		actor, err := svc.ResolveActor(context.Background(), user.ID)
		if err != nil || actor == nil {
			t.Fatalf("esperava ator resolvido, obteve %v / %v", actor, err)
		}
	})
}
