package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/folio-backend/internal/domain/ports"
	"github.com/rafabene/folio-backend/internal/handlers/dto"
	"github.com/rafabene/folio-backend/internal/handlers/middleware"
	"github.com/rafabene/folio-backend/internal/services"
)

// AuthHandler lida com requisições HTTP de registro e autenticação
type AuthHandler struct {
	authService *services.AuthService
	logger      ports.Logger
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService, logger ports.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register registra um novo usuário
// @Summary      Registrar usuário
// @Description  Cria uma conta e retorna um token de acesso
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      dto.RegisterRequest  true  "Dados de registro"
// @Success      201      {object}  dto.TokenResponse
// @Failure      400      {object}  dto.Problem
// @Failure      409      {object}  dto.Problem
// @Router       /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationProblem(c, err))
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTokenResponse(user, token))
}

// Login autentica um usuário
// @Summary      Login
// @Description  Autentica com email e senha e retorna um token de acesso
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      dto.LoginRequest  true  "Credenciais"
// @Success      200      {object}  dto.TokenResponse
// @Failure      400      {object}  dto.Problem
// @Failure      401      {object}  dto.Problem
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationProblem(c, err))
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTokenResponse(user, token))
}

// Me retorna o usuário autenticado
// @Summary      Usuário atual
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.Problem
// @Router       /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthenticatedProblemI18n(c, "error.unauthenticated.detail"))
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
