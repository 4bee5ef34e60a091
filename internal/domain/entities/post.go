package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPostData = errors.New("invalid post data")
)

// Post representa uma publicação de um autor.
// O slug é imutável após a criação; alterar o título não o regenera.
type Post struct {
	ID            uuid.UUID
	AuthorID      uuid.UUID
	Title         string
	Slug          string
	Body          string
	BodyFormat    string
	CoverImageURL *string
	PublishedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PostUpdate contém os campos mutáveis de um post.
// Campos nil são ignorados (atualização parcial).
type PostUpdate struct {
	Title         *string
	Body          *string
	BodyFormat    *string
	CoverImageURL *string
	Published     *bool
}

// IsPublished verifica se o post está publicado (rascunho = published_at nulo)
func (p *Post) IsPublished() bool {
	return p.PublishedAt != nil
}

// VisibleTo decide se o post pode ser retornado ao viewer.
// Posts publicados são visíveis a todos, inclusive anônimos; rascunhos
// apenas ao próprio autor. Viewer nil representa um viewer anônimo.
func (p *Post) VisibleTo(viewerID *uuid.UUID) bool {
	if p.IsPublished() {
		return true
	}
	return viewerID != nil && *viewerID == p.AuthorID
}

// CanBeEditedBy verifica se o ator pode mutar (update/delete) o post.
// Apenas o autor tem permissão.
func (p *Post) CanBeEditedBy(actorID uuid.UUID) bool {
	return p.AuthorID == actorID
}

// Publish marca o post como publicado no instante informado.
// No-op se já estiver publicado (preserva o published_at original).
func (p *Post) Publish(now time.Time) {
	if p.PublishedAt == nil {
		p.PublishedAt = &now
	}
}

// Unpublish volta o post para rascunho
func (p *Post) Unpublish() {
	p.PublishedAt = nil
}

// Apply aplica uma atualização parcial. O slug nunca é alterado.
func (p *Post) Apply(update PostUpdate, now time.Time) {
	if update.Title != nil {
		p.Title = *update.Title
	}
	if update.Body != nil {
		p.Body = *update.Body
	}
	if update.BodyFormat != nil {
		p.BodyFormat = *update.BodyFormat
	}
	if update.CoverImageURL != nil {
		p.CoverImageURL = update.CoverImageURL
	}
	if update.Published != nil {
		if *update.Published {
			p.Publish(now)
		} else {
			p.Unpublish()
		}
	}
	p.UpdatedAt = now
}

// Validate valida regras de negócio da entidade Post
func (p *Post) Validate() error {
	if p.AuthorID == uuid.Nil {
		return errors.New("author is required")
	}

	if p.Title == "" {
		return errors.New("title is required")
	}

	if p.Slug == "" {
		return errors.New("slug is required")
	}

	if p.Body == "" {
		return errors.New("body is required")
	}

	return nil
}
