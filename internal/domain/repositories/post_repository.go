package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/rafabene/folio-backend/internal/domain/entities"
)

// ErrDuplicateSlug é a violação de unicidade de slug traduzida pela
// camada de persistência
var ErrDuplicateSlug = errors.New("slug already exists")

// PostRepository define a interface para persistência de posts
type PostRepository interface {
	// Create insere o post. Retorna erro de chave duplicada quando o
	// slug já existe (usado pelo retry de resolução de colisão).
	Create(ctx context.Context, post *entities.Post) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Post, error)
	FindBySlug(ctx context.Context, slug string) (*entities.Post, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Update(ctx context.Context, post *entities.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListPublished retorna apenas posts publicados, ordenados por
	// published_at decrescente com desempate determinístico por id.
	ListPublished(ctx context.Context, filters PostFilters) ([]*entities.Post, error)
}

// PostFilters contém filtros para listagem de posts publicados
type PostFilters struct {
	AuthorID  *uuid.UUID  // Restringe a um único autor
	AuthorIDs []uuid.UUID // Restringe ao conjunto de autores (feed)
	Limit     int         // Itens por página (default: 20, max: 100)
	Offset    int         // Linhas ignoradas do resultado ordenado
}
