package services

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"

	"github.com/rafabene/folio-backend/internal/domain/entities"
	"github.com/rafabene/folio-backend/internal/domain/errors"
	"github.com/rafabene/folio-backend/internal/domain/ports"
	"github.com/rafabene/folio-backend/internal/domain/repositories"
	"github.com/rafabene/folio-backend/internal/domain/valueobjects"
)

// defaultBodyFormat é o renderer assumido quando a requisição não
// especifica um formato
const defaultBodyFormat = "markdown"

// PostView é um post acompanhado do resumo do autor, resolvido por id
// via camada de persistência (entidades não carregam referências
// bidirecionais).
type PostView struct {
	Post   *entities.Post
	Author *entities.User
}

// PostService contém a lógica de negócio para posts: resolução de
// slug, política de visibilidade e autorização de mutação
type PostService struct {
	postRepo repositories.PostRepository
	userRepo repositories.UserRepository
	uow      ports.UnitOfWork
	logger   ports.Logger
}

// NewPostService cria um novo PostService
func NewPostService(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		uow:      uow,
		logger:   logger,
	}
}

// CreatePostInput representa os dados para criar um post
type CreatePostInput struct {
	Title         string
	Body          string
	BodyFormat    string
	CoverImageURL *string
	Published     bool
}

// CreatePost cria um post resolvendo o slug a partir do título:
// tenta base, base-1, base-2, ... até encontrar um slug livre.
// Cada tentativa é um único INSERT atômico; se outra criação
// concorrente vencer a corrida pelo mesmo slug, o unique index
// devolve ErrDuplicateSlug e o loop passa ao próximo sufixo.
func (s *PostService) CreatePost(ctx context.Context, authorID uuid.UUID, input CreatePostInput) (*PostView, error) {
	author, err := s.userRepo.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, errors.ErrUserNotFound
	}

	format := input.BodyFormat
	if format == "" {
		format = defaultBodyFormat
	}

	post := &entities.Post{
		AuthorID:      authorID,
		Title:         input.Title,
		Body:          input.Body,
		BodyFormat:    format,
		CoverImageURL: input.CoverImageURL,
	}

	if input.Published {
		post.Publish(time.Now().UTC())
	}

	base := valueobjects.Slugify(input.Title)

	for attempt := 0; ; attempt++ {
		candidate := valueobjects.SlugWithSuffix(base, attempt)

		taken, err := s.postRepo.SlugExists(ctx, candidate)
		if err != nil {
			return nil, err
		}
		if taken {
			continue
		}

		post.Slug = candidate

		if err := post.Validate(); err != nil {
			return nil, &errors.DomainError{
				Type:    errors.ProblemTypeValidation,
				Message: err.Error(),
				Err:     errors.ErrValidation,
			}
		}

		err = s.postRepo.Create(ctx, post)
		if err == nil {
			break
		}
		if stderrors.Is(err, repositories.ErrDuplicateSlug) {
			// Corrida entre a checagem e o insert; o próximo
			// candidato resolve
			continue
		}
		return nil, err
	}

	s.logger.Info("post created",
		"post_id", post.ID,
		"author_id", authorID,
		"slug", post.Slug,
		"published", post.IsPublished(),
	)

	return &PostView{Post: post, Author: author}, nil
}

// GetPostByID busca um post por id aplicando a política de
// visibilidade: rascunho invisível ao viewer é reportado como
// "não encontrado" para não vazar a existência.
func (s *PostService) GetPostByID(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*PostView, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil || !post.VisibleTo(viewerID) {
		return nil, errors.ErrPostNotFound
	}

	return s.toView(ctx, post)
}

// GetPostBySlug busca um post por slug com a mesma política de
// visibilidade de GetPostByID
func (s *PostService) GetPostBySlug(ctx context.Context, slug string, viewerID *uuid.UUID) (*PostView, error) {
	post, err := s.postRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil || !post.VisibleTo(viewerID) {
		return nil, errors.ErrPostNotFound
	}

	return s.toView(ctx, post)
}

// ListPosts lista posts publicados, opcionalmente restritos a um autor
func (s *PostService) ListPosts(ctx context.Context, authorID *uuid.UUID, limit, offset int) ([]*PostView, error) {
	posts, err := s.postRepo.ListPublished(ctx, repositories.PostFilters{
		AuthorID: authorID,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return nil, err
	}

	return s.toViews(ctx, posts)
}

// ListUserPosts lista os posts publicados de um autor específico.
// Falha com "não encontrado" se o autor não existe.
func (s *PostService) ListUserPosts(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]*PostView, error) {
	author, err := s.userRepo.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, errors.ErrUserNotFound
	}

	return s.ListPosts(ctx, &authorID, limit, offset)
}

// UpdatePost aplica uma atualização parcial a um post.
// Apenas o autor pode mutar; outros atores autenticados recebem
// "forbidden" (a existência do post não é escondida em mutações).
func (s *PostService) UpdatePost(ctx context.Context, postID, actorID uuid.UUID, update entities.PostUpdate) (*PostView, error) {
	var updated *entities.Post

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		post, err := s.postRepo.FindByID(txCtx, postID)
		if err != nil {
			return err
		}
		if post == nil {
			return errors.ErrPostNotFound
		}

		if !post.CanBeEditedBy(actorID) {
			return errors.ErrForbidden
		}

		post.Apply(update, time.Now().UTC())

		if err := post.Validate(); err != nil {
			return &errors.DomainError{
				Type:    errors.ProblemTypeValidation,
				Message: err.Error(),
				Err:     errors.ErrValidation,
			}
		}

		if err := s.postRepo.Update(txCtx, post); err != nil {
			return err
		}

		updated = post
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("post updated", "post_id", postID, "author_id", actorID)
	return s.toView(ctx, updated)
}

// DeletePost remove um post definitivamente (o slug fica livre).
// Mesma regra de autorização de UpdatePost.
func (s *PostService) DeletePost(ctx context.Context, postID, actorID uuid.UUID) error {
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		post, err := s.postRepo.FindByID(txCtx, postID)
		if err != nil {
			return err
		}
		if post == nil {
			return errors.ErrPostNotFound
		}

		if !post.CanBeEditedBy(actorID) {
			return errors.ErrForbidden
		}

		return s.postRepo.Delete(txCtx, postID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("post deleted", "post_id", postID, "author_id", actorID)
	return nil
}

// toView resolve o autor de um único post
func (s *PostService) toView(ctx context.Context, post *entities.Post) (*PostView, error) {
	views, err := resolveAuthors(ctx, s.userRepo, []*entities.Post{post})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (s *PostService) toViews(ctx context.Context, posts []*entities.Post) ([]*PostView, error) {
	return resolveAuthors(ctx, s.userRepo, posts)
}

// resolveAuthors monta PostViews buscando os autores em lote por id.
// Compartilhado com o FeedService.
func resolveAuthors(ctx context.Context, userRepo repositories.UserRepository, posts []*entities.Post) ([]*PostView, error) {
	seen := make(map[uuid.UUID]bool, len(posts))
	ids := make([]uuid.UUID, 0, len(posts))
	for _, post := range posts {
		if !seen[post.AuthorID] {
			seen[post.AuthorID] = true
			ids = append(ids, post.AuthorID)
		}
	}

	authors, err := userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*entities.User, len(authors))
	for _, author := range authors {
		byID[author.ID] = author
	}

	views := make([]*PostView, len(posts))
	for i, post := range posts {
		views[i] = &PostView{Post: post, Author: byID[post.AuthorID]}
	}

	return views, nil
}
