package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rafabene/folio-backend/internal/domain/entities"
	"github.com/rafabene/folio-backend/internal/domain/repositories"
)

// PostRepository implementa repositories.PostRepository
type PostRepository struct {
	db *gorm.DB
}

// NewPostRepository cria um novo PostRepository
func NewPostRepository(db *gorm.DB) repositories.PostRepository {
	return &PostRepository{db: db}
}

// Create insere o post. Uma colisão de slug é traduzida para
// repositories.ErrDuplicateSlug (TranslateError habilitado na
// conexão), que o service trata tentando o próximo sufixo.
func (r *PostRepository) Create(ctx context.Context, post *entities.Post) error {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}

	model := r.toModel(post)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repositories.ErrDuplicateSlug
		}
		return err
	}

	post.CreatedAt = time.Unix(model.CreatedAt, 0)
	post.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *PostRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Post, error) {
	var model PostModel

	db := r.getDB(ctx)
	if err := db.Where("id = ?", id.String()).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *PostRepository) FindBySlug(ctx context.Context, slug string) (*entities.Post, error) {
	var model PostModel

	db := r.getDB(ctx)
	if err := db.Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *PostRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64

	db := r.getDB(ctx)
	if err := db.Model(&PostModel{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *PostRepository) Update(ctx context.Context, post *entities.Post) error {
	model := r.toModel(post)

	db := r.getDB(ctx)
	if err := db.Save(model).Error; err != nil {
		return err
	}

	post.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := r.getDB(ctx)
	// Hard delete: o slug volta a ficar livre
	return db.Where("id = ?", id.String()).Delete(&PostModel{}).Error
}

func (r *PostRepository) ListPublished(ctx context.Context, filters repositories.PostFilters) ([]*entities.Post, error) {
	var models []*PostModel

	db := r.getDB(ctx)
	query := db.Model(&PostModel{}).Where("published_at IS NOT NULL")

	if filters.AuthorID != nil {
		query = query.Where("author_id = ?", filters.AuthorID.String())
	}

	if len(filters.AuthorIDs) > 0 {
		authorIDs := make([]string, len(filters.AuthorIDs))
		for i, id := range filters.AuthorIDs {
			authorIDs[i] = id.String()
		}
		query = query.Where("author_id IN ?", authorIDs)
	}

	// Paginação
	limit := filters.Limit
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	// Desempate por id para paginação determinística
	query = query.Order("published_at DESC, id DESC").Limit(limit).Offset(offset)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

// getDB extrai DB do contexto (para suportar transações)
func (r *PostRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// Conversores
func (r *PostRepository) toModel(post *entities.Post) *PostModel {
	var publishedAt *int64
	if post.PublishedAt != nil {
		ts := post.PublishedAt.Unix()
		publishedAt = &ts
	}

	return &PostModel{
		ID:            post.ID.String(),
		AuthorID:      post.AuthorID.String(),
		Title:         post.Title,
		Slug:          post.Slug,
		Body:          post.Body,
		BodyFormat:    post.BodyFormat,
		CoverImageURL: post.CoverImageURL,
		PublishedAt:   publishedAt,
		CreatedAt:     unixOrZero(post.CreatedAt),
		UpdatedAt:     unixOrZero(post.UpdatedAt),
	}
}

func (r *PostRepository) toEntity(model *PostModel) (*entities.Post, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, err
	}

	authorID, err := uuid.Parse(model.AuthorID)
	if err != nil {
		return nil, err
	}

	var publishedAt *time.Time
	if model.PublishedAt != nil {
		ts := time.Unix(*model.PublishedAt, 0)
		publishedAt = &ts
	}

	return &entities.Post{
		ID:            id,
		AuthorID:      authorID,
		Title:         model.Title,
		Slug:          model.Slug,
		Body:          model.Body,
		BodyFormat:    model.BodyFormat,
		CoverImageURL: model.CoverImageURL,
		PublishedAt:   publishedAt,
		CreatedAt:     time.Unix(model.CreatedAt, 0),
		UpdatedAt:     time.Unix(model.UpdatedAt, 0),
	}, nil
}

func (r *PostRepository) toEntities(models []*PostModel) ([]*entities.Post, error) {
	posts := make([]*entities.Post, 0, len(models))

	for _, model := range models {
		post, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	return posts, nil
}
