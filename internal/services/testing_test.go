package services_test

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rafabene/folio-backend/internal/domain/entities"
	"github.com/rafabene/folio-backend/internal/domain/ports"
	"github.com/rafabene/folio-backend/internal/domain/repositories"
	"github.com/rafabene/folio-backend/internal/domain/valueobjects"
	"github.com/rafabene/folio-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/folio-backend/internal/services"
)

// testingT é o subconjunto de *testing.T usado pelos helpers, para que
// a suite Ginkgo possa reutilizá-los via GinkgoT()
type testingT interface {
	Helper()
	TempDir() string
	Fatalf(format string, args ...any)
}

// noopLogger descarta logs nos testes
type noopLogger struct{}

func (noopLogger) Info(msg string, args ...any)  {}
func (noopLogger) Error(msg string, args ...any) {}
func (noopLogger) Debug(msg string, args ...any) {}
func (noopLogger) Warn(msg string, args ...any)  {}
func (l noopLogger) With(args ...any) ports.Logger {
	return l
}

// fakeHasher troca o bcrypt por uma transformação determinística barata
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Verify(password, digest string) bool {
	return digest == "hashed:"+password
}

// fakeTokens emite tokens previsíveis derivados do id do usuário
type fakeTokens struct{}

func (fakeTokens) Issue(userID uuid.UUID) (string, error) {
	return "token-" + userID.String(), nil
}

func (fakeTokens) Verify(token string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimPrefix(token, "token-"))
}

// testEnv agrupa os services montados sobre um banco SQLite isolado
type testEnv struct {
	userRepo   repositories.UserRepository
	postRepo   repositories.PostRepository
	followRepo repositories.FollowRepository
	uow        ports.UnitOfWork
}

func setupTestEnv(t testingT) *testEnv {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("falha ao abrir banco de teste: %v", err)
	}

	if err := postgres.Migrate(db); err != nil {
		t.Fatalf("falha ao migrar schema de teste: %v", err)
	}

	return &testEnv{
		userRepo:   postgres.NewUserRepository(db),
		postRepo:   postgres.NewPostRepository(db),
		followRepo: postgres.NewFollowRepository(db),
		uow:        postgres.NewUnitOfWork(db),
	}
}

func (e *testEnv) authService() *services.AuthService {
	return services.NewAuthService(e.userRepo, e.uow, fakeHasher{}, fakeTokens{}, noopLogger{})
}

func (e *testEnv) userService() *services.UserService {
	return services.NewUserService(e.userRepo, e.uow, noopLogger{})
}

func (e *testEnv) postService() *services.PostService {
	return services.NewPostService(e.postRepo, e.userRepo, e.uow, noopLogger{})
}

func (e *testEnv) followService() *services.FollowService {
	return services.NewFollowService(e.followRepo, e.userRepo, e.uow, noopLogger{})
}

func (e *testEnv) feedService() *services.FeedService {
	return services.NewFeedService(e.postRepo, e.followRepo, e.userRepo, noopLogger{})
}

// seedUser insere um usuário diretamente pelo repositório
func (e *testEnv) seedUser(t testingT, username string) *entities.User {
	t.Helper()

	email, err := valueobjects.NewEmail(fmt.Sprintf("%s@example.com", username))
	if err != nil {
		t.Fatalf("falha ao criar email de teste: %v", err)
	}

	user := &entities.User{
		Email:        email,
		Username:     username,
		PasswordHash: "hashed:password",
	}

	if err := e.userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("falha ao inserir usuário de teste: %v", err)
	}

	return user
}

// seedPost insere um post diretamente pelo repositório; publishedAt nil
// cria um rascunho
func (e *testEnv) seedPost(t testingT, authorID uuid.UUID, slug string, publishedAt *time.Time) *entities.Post {
	t.Helper()

	post := &entities.Post{
		AuthorID:    authorID,
		Title:       slug,
		Slug:        slug,
		Body:        "body",
		BodyFormat:  "markdown",
		PublishedAt: publishedAt,
	}

	if err := e.postRepo.Create(context.Background(), post); err != nil {
		t.Fatalf("falha ao inserir post de teste: %v", err)
	}

	return post
}

func timePtr(t time.Time) *time.Time {
	return &t
}
