package postgres

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rafabene/folio-backend/internal/domain/entities"
	"github.com/rafabene/folio-backend/internal/domain/valueobjects"
)

// setupTestDB cria um banco SQLite isolado por teste, com o mesmo
// schema e tradução de erros da conexão de produção
func setupTestDB(t *testing.T) *gorm.DB {
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

	if err := Migrate(db); err != nil {
		t.Fatalf("falha ao migrar schema de teste: %v", err)
	}

	return db
}

// seedUser insere um usuário de teste e retorna a entidade
func seedUser(t *testing.T, db *gorm.DB, username string) *entities.User {
	t.Helper()

	email, err := valueobjects.NewEmail(fmt.Sprintf("%s@example.com", username))
	if err != nil {
		t.Fatalf("falha ao criar email de teste: %v", err)
	}

	user := &entities.User{
		Email:        email,
		Username:     username,
		PasswordHash: "hash",
	}

	if err := NewUserRepository(db).Create(context.Background(), user); err != nil {
		t.Fatalf("falha ao inserir usuário de teste: %v", err)
	}

	return user
}

// seedPost insere um post de teste; publishedAt nil cria um rascunho
func seedPost(t *testing.T, db *gorm.DB, authorID uuid.UUID, slug string, publishedAt *time.Time) *entities.Post {
	t.Helper()

	post := &entities.Post{
		AuthorID:    authorID,
		Title:       slug,
		Slug:        slug,
		Body:        "body",
		BodyFormat:  "markdown",
		PublishedAt: publishedAt,
	}

	if err := NewPostRepository(db).Create(context.Background(), post); err != nil {
		t.Fatalf("falha ao inserir post de teste: %v", err)
	}

	return post
}

func timePtr(t time.Time) *time.Time {
	return &t
}
