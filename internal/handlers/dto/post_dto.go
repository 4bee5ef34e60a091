package dto

import (
	"time"

	"github.com/rafabene/folio-backend/internal/domain/entities"
	"github.com/rafabene/folio-backend/internal/services"
)

// CreatePostRequest representa a requisição para criar um post
type CreatePostRequest struct {
	Title         string  `json:"title" binding:"required,max=300"`
	Body          string  `json:"body" binding:"required"`
	BodyFormat    string  `json:"body_format" binding:"omitempty,max=20"`
	CoverImageURL *string `json:"cover_image_url" binding:"omitempty,max=500"`
	Published     bool    `json:"published"`
}

// ToCreatePostInput converte a requisição para o input do service
func (r *CreatePostRequest) ToCreatePostInput() services.CreatePostInput {
	return services.CreatePostInput{
		Title:         r.Title,
		Body:          r.Body,
		BodyFormat:    r.BodyFormat,
		CoverImageURL: r.CoverImageURL,
		Published:     r.Published,
	}
}

// UpdatePostRequest representa a atualização parcial de um post.
// O slug nunca muda, mesmo com novo título.
type UpdatePostRequest struct {
	Title         *string `json:"title" binding:"omitempty,min=1,max=300"`
	Body          *string `json:"body" binding:"omitempty,min=1"`
	BodyFormat    *string `json:"body_format" binding:"omitempty,max=20"`
	CoverImageURL *string `json:"cover_image_url" binding:"omitempty,max=500"`
	Published     *bool   `json:"published"`
}

// ToPostUpdate converte a requisição para o tipo de domínio
func (r *UpdatePostRequest) ToPostUpdate() entities.PostUpdate {
	return entities.PostUpdate{
		Title:         r.Title,
		Body:          r.Body,
		BodyFormat:    r.BodyFormat,
		CoverImageURL: r.CoverImageURL,
		Published:     r.Published,
	}
}

// PaginationQuery representa os parâmetros de paginação offset/limit.
// Valores fora da faixa (limit < 1, limit > 100, offset < 0) são erros
// de validação; a ausência do parâmetro usa o default.
type PaginationQuery struct {
	Limit  int `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// ListPostsQuery representa os filtros de listagem global de posts
type ListPostsQuery struct {
	PaginationQuery
	AuthorID string `form:"author_id" binding:"omitempty,uuid"`
}

// PostAuthorResponse é o resumo do autor embutido na resposta de post
type PostAuthorResponse struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	DisplayName *string `json:"display_name,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
}

// PostResponse representa a resposta de um post
type PostResponse struct {
	ID            string              `json:"id"`
	AuthorID      string              `json:"author_id"`
	Author        *PostAuthorResponse `json:"author,omitempty"`
	Title         string              `json:"title"`
	Slug          string              `json:"slug"`
	Body          string              `json:"body"`
	BodyFormat    string              `json:"body_format"`
	CoverImageURL *string             `json:"cover_image_url,omitempty"`
	PublishedAt   *time.Time          `json:"published_at,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// ToPostResponse converte um PostView para PostResponse
func ToPostResponse(view *services.PostView) PostResponse {
	response := PostResponse{
		ID:            view.Post.ID.String(),
		AuthorID:      view.Post.AuthorID.String(),
		Title:         view.Post.Title,
		Slug:          view.Post.Slug,
		Body:          view.Post.Body,
		BodyFormat:    view.Post.BodyFormat,
		CoverImageURL: view.Post.CoverImageURL,
		PublishedAt:   view.Post.PublishedAt,
		CreatedAt:     view.Post.CreatedAt,
		UpdatedAt:     view.Post.UpdatedAt,
	}

	if view.Author != nil {
		response.Author = &PostAuthorResponse{
			ID:          view.Author.ID.String(),
			Username:    view.Author.Username,
			DisplayName: view.Author.DisplayName,
			AvatarURL:   view.Author.AvatarURL,
		}
	}

	return response
}

// ToPostResponses converte uma lista de PostViews para PostResponse
func ToPostResponses(views []*services.PostView) []PostResponse {
	responses := make([]PostResponse, len(views))
	for i, view := range views {
		responses[i] = ToPostResponse(view)
	}
	return responses
}
