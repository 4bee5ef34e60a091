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

// UserHandler lida com requisições HTTP de perfis e grafo de seguidores
type UserHandler struct {
	userService   *services.UserService
	postService   *services.PostService
	followService *services.FollowService
	logger        ports.Logger
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(
	userService *services.UserService,
	postService *services.PostService,
	followService *services.FollowService,
	logger ports.Logger,
) *UserHandler {
	return &UserHandler{
		userService:   userService,
		postService:   postService,
		followService: followService,
		logger:        logger,
	}
}

// GetMe retorna o perfil do usuário autenticado
// @Summary      Perfil atual
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.Problem
// @Router       /api/v1/users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthenticatedProblemI18n(c, "error.unauthenticated.detail"))
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateMe atualiza o perfil do usuário autenticado
// @Summary      Atualizar perfil
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      dto.UpdateProfileRequest  true  "Campos do perfil"
// @Success      200      {object}  dto.UserResponse
// @Failure      400      {object}  dto.Problem
// @Failure      401      {object}  dto.Problem
// @Router       /api/v1/users/me [patch]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthenticatedProblemI18n(c, "error.unauthenticated.detail"))
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationProblem(c, err))
		return
	}

	updated, err := h.userService.UpdateProfile(c.Request.Context(), user.ID, req.ToProfileUpdate())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(updated))
}

// GetUser busca um usuário por ID
// @Summary      Buscar usuário por ID
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "ID do usuário"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.Problem
// @Router       /api/v1/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, dto.NotFoundProblemI18n(c, "User"))
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// GetUserByUsername busca um usuário por username
// @Summary      Buscar usuário por username
// @Tags         users
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  dto.UserResponse
// @Failure      404       {object}  dto.Problem
// @Router       /api/v1/users/by-username/{username} [get]
func (h *UserHandler) GetUserByUsername(c *gin.Context) {
	user, err := h.userService.GetUserByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ListUserPosts lista os posts publicados de um autor
// @Summary      Posts publicados de um autor
// @Tags         users
// @Produce      json
// @Param        id      path      string  true   "ID do autor"
// @Param        limit   query     int     false  "Tamanho da página (máx. 100)"
// @Param        offset  query     int     false  "Deslocamento"
// @Success      200     {array}   dto.PostResponse
// @Failure      404     {object}  dto.Problem
// @Router       /api/v1/users/{id}/posts [get]
func (h *UserHandler) ListUserPosts(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, dto.NotFoundProblemI18n(c, "User"))
		return
	}

	var query dto.PaginationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationProblem(c, err))
		return
	}

	views, err := h.postService.ListUserPosts(c.Request.Context(), id, query.Limit, query.Offset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponses(views))
}

// Follow segue um usuário
// @Summary      Seguir usuário
// @Tags         follows
// @Security     BearerAuth
// @Param        id  path  string  true  "ID do usuário a seguir"
// @Success      204
// @Failure      400  {object}  dto.Problem
// @Failure      404  {object}  dto.Problem
// @Router       /api/v1/users/me/follow/{id} [post]
func (h *UserHandler) Follow(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthenticatedProblemI18n(c, "error.unauthenticated.detail"))
		return
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, dto.NotFoundProblemI18n(c, "User"))
		return
	}

	if err := h.followService.Follow(c.Request.Context(), user.ID, targetID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Unfollow deixa de seguir um usuário
// @Summary      Deixar de seguir usuário
// @Tags         follows
// @Security     BearerAuth
// @Param        id  path  string  true  "ID do usuário"
// @Success      204
// @Router       /api/v1/users/me/follow/{id} [delete]
func (h *UserHandler) Unfollow(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthenticatedProblemI18n(c, "error.unauthenticated.detail"))
		return
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// Aresta inexistente: unfollow é idempotente
		c.Status(http.StatusNoContent)
		return
	}

	if err := h.followService.Unfollow(c.Request.Context(), user.ID, targetID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// IsFollowing consulta se o usuário autenticado segue outro usuário
// @Summary      Consultar relação de follow
// @Tags         follows
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID do usuário"
// @Success      200  {object}  dto.FollowingResponse
// @Router       /api/v1/users/me/follow/{id} [get]
func (h *UserHandler) IsFollowing(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthenticatedProblemI18n(c, "error.unauthenticated.detail"))
		return
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusOK, dto.FollowingResponse{Following: false})
		return
	}

	following, err := h.followService.IsFollowing(c.Request.Context(), user.ID, targetID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.FollowingResponse{Following: following})
}

// ListFollowing lista os usuários seguidos pelo usuário autenticado
// @Summary      Usuários seguidos
// @Tags         follows
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.UserResponse
// @Router       /api/v1/users/me/following [get]
func (h *UserHandler) ListFollowing(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthenticatedProblemI18n(c, "error.unauthenticated.detail"))
		return
	}

	users, err := h.followService.ListFollowing(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}
