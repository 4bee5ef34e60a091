package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/rafabene/folio-backend/internal/domain/ports"
	"github.com/rafabene/folio-backend/internal/domain/repositories"
)

// FeedService compõe o feed personalizado de um viewer a partir do
// grafo de seguidores
type FeedService struct {
	postRepo   repositories.PostRepository
	followRepo repositories.FollowRepository
	userRepo   repositories.UserRepository
	logger     ports.Logger
}

// NewFeedService cria um novo FeedService
func NewFeedService(
	postRepo repositories.PostRepository,
	followRepo repositories.FollowRepository,
	userRepo repositories.UserRepository,
	logger ports.Logger,
) *FeedService {
	return &FeedService{
		postRepo:   postRepo,
		followRepo: followRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// GetFeed retorna a sequência ordenada e paginada de posts visíveis
// ao viewer:
//   - viewer anônimo OU que não segue ninguém: feed global de posts
//     publicados (decisão de produto, não fallback acidental);
//   - viewer seguindo ao menos um usuário: apenas posts publicados dos
//     autores seguidos.
//
// Ordenação: published_at decrescente com desempate por id.
func (s *FeedService) GetFeed(ctx context.Context, viewerID *uuid.UUID, limit, offset int) ([]*PostView, error) {
	filters := repositories.PostFilters{
		Limit:  limit,
		Offset: offset,
	}

	if viewerID != nil {
		following, err := s.followRepo.ListFollowing(ctx, *viewerID)
		if err != nil {
			return nil, err
		}
		filters.AuthorIDs = following
	}

	posts, err := s.postRepo.ListPublished(ctx, filters)
	if err != nil {
		return nil, err
	}

	return resolveAuthors(ctx, s.userRepo, posts)
}
