package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rafabene/folio-backend/internal/domain/ports"
	"github.com/rafabene/folio-backend/internal/handlers/dto"
	"github.com/rafabene/folio-backend/internal/handlers/middleware"
	"github.com/rafabene/folio-backend/internal/services"
)

// PostHandler lida com requisições HTTP de posts
type PostHandler struct {
	postService *services.PostService
	logger      ports.Logger
}

// NewPostHandler cria um novo PostHandler
func NewPostHandler(postService *services.PostService, logger ports.Logger) *PostHandler {
	return &PostHandler{
		postService: postService,
		logger:      logger,
	}
}

// CreatePost cria um post com slug derivado do título
// @Summary      Criar post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      dto.CreatePostRequest  true  "Dados do post"
// @Success      201      {object}  dto.PostResponse
// @Failure      400      {object}  dto.Problem
// @Failure      401      {object}  dto.Problem
// @Router       /api/v1/posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthenticatedProblemI18n(c, "error.unauthenticated.detail"))
		return
	}

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationProblem(c, err))
		return
	}

	view, err := h.postService.CreatePost(c.Request.Context(), user.ID, req.ToCreatePostInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPostResponse(view))
}

// ListPosts lista posts publicados
// @Summary      Listar posts publicados
// @Tags         posts
// @Produce      json
// @Param        author_id  query     string  false  "Filtrar por autor"
// @Param        limit      query     int     false  "Tamanho da página (máx. 100)"
// @Param        offset     query     int     false  "Deslocamento"
// @Success      200        {array}   dto.PostResponse
// @Failure      400        {object}  dto.Problem
// @Router       /api/v1/posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	var query dto.ListPostsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationProblem(c, err))
		return
	}

	var authorID *uuid.UUID
	if query.AuthorID != "" {
		id, err := uuid.Parse(query.AuthorID)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ValidationProblemI18n(c, "error.validation.detail"))
			return
		}
		authorID = &id
	}

	views, err := h.postService.ListPosts(c.Request.Context(), authorID, query.Limit, query.Offset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponses(views))
}

// GetPost busca um post por ID
// @Summary      Buscar post por ID
// @Description  Rascunhos são visíveis apenas ao autor; para outros
// @Description  viewers o post é reportado como inexistente
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "ID do post"
// @Success      200  {object}  dto.PostResponse
// @Failure      404  {object}  dto.Problem
// @Router       /api/v1/posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, dto.NotFoundProblemI18n(c, "Post"))
		return
	}

	view, err := h.postService.GetPostByID(c.Request.Context(), id, middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponse(view))
}

// GetPostBySlug busca um post por slug
// @Summary      Buscar post por slug
// @Tags         posts
// @Produce      json
// @Param        slug  path      string  true  "Slug do post"
// @Success      200   {object}  dto.PostResponse
// @Failure      404   {object}  dto.Problem
// @Router       /api/v1/posts/slug/{slug} [get]
func (h *PostHandler) GetPostBySlug(c *gin.Context) {
	view, err := h.postService.GetPostBySlug(c.Request.Context(), c.Param("slug"), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponse(view))
}

// UpdatePost atualiza parcialmente um post do autor
// @Summary      Atualizar post
// @Description  Apenas o autor pode atualizar; o slug nunca muda
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                 true  "ID do post"
// @Param        request  body      dto.UpdatePostRequest  true  "Campos a atualizar"
// @Success      200      {object}  dto.PostResponse
// @Failure      400      {object}  dto.Problem
// @Failure      403      {object}  dto.Problem
// @Failure      404      {object}  dto.Problem
// @Router       /api/v1/posts/{id} [patch]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthenticatedProblemI18n(c, "error.unauthenticated.detail"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, dto.NotFoundProblemI18n(c, "Post"))
		return
	}

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationProblem(c, err))
		return
	}

	view, err := h.postService.UpdatePost(c.Request.Context(), id, user.ID, req.ToPostUpdate())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponse(view))
}

// DeletePost remove um post do autor
// @Summary      Remover post
// @Description  Remoção definitiva; o slug volta a ficar disponível
// @Tags         posts
// @Security     BearerAuth
// @Param        id  path  string  true  "ID do post"
// @Success      204
// @Failure      403  {object}  dto.Problem
// @Failure      404  {object}  dto.Problem
// @Router       /api/v1/posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthenticatedProblemI18n(c, "error.unauthenticated.detail"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, dto.NotFoundProblemI18n(c, "Post"))
		return
	}

	if err := h.postService.DeletePost(c.Request.Context(), id, user.ID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
