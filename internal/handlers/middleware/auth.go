package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/moogar0880/problems"

	"github.com/rafabene/folio-backend/internal/domain/entities"
	"github.com/rafabene/folio-backend/internal/domain/errors"
	"github.com/rafabene/folio-backend/internal/domain/ports"
	"github.com/rafabene/folio-backend/internal/domain/repositories"
	"github.com/rafabene/folio-backend/internal/infrastructure/i18n"
)

// ContextUserKey é a chave usada para armazenar o ator autenticado no
// contexto do Gin
const ContextUserKey = "current_user"

// AuthMiddleware resolve o ator da requisição a partir do token Bearer
type AuthMiddleware struct {
	tokens   ports.TokenIssuer
	userRepo repositories.UserRepository
}

// NewAuthMiddleware cria um novo middleware de autenticação
func NewAuthMiddleware(tokens ports.TokenIssuer, userRepo repositories.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:   tokens,
		userRepo: userRepo,
	}
}

// RequireAuth exige um token válido; requisições sem identidade são
// rejeitadas com 401 antes de chegar aos services
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := m.resolveUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, unauthenticatedProblem(c))
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// OptionalAuth resolve o ator quando houver token válido; token
// ausente ou inválido vira viewer anônimo (sem erro)
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := m.resolveUser(c); user != nil {
			c.Set(ContextUserKey, user)
		}
		c.Next()
	}
}

// resolveUser extrai e verifica o token Bearer e carrega o usuário.
// Retorna nil para qualquer falha (ausência, token inválido/expirado,
// usuário inexistente).
func (m *AuthMiddleware) resolveUser(c *gin.Context) *entities.User {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil
	}

	userID, err := m.tokens.Verify(parts[1])
	if err != nil {
		return nil
	}

	user, err := m.userRepo.FindByID(c.Request.Context(), userID)
	if err != nil || user == nil {
		return nil
	}

	return user
}

// CurrentUser retorna o ator autenticado da requisição, se houver
func CurrentUser(c *gin.Context) (*entities.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*entities.User)
	if !ok || user == nil {
		return nil, false
	}

	return user, true
}

// CurrentUserID retorna o id do ator, ou nil para viewer anônimo
func CurrentUserID(c *gin.Context) *uuid.UUID {
	user, ok := CurrentUser(c)
	if !ok {
		return nil
	}

	id := user.ID
	return &id
}

// unauthenticatedProblem monta o problem RFC 7807 de 401.
// Construído aqui (e não no pacote dto) para evitar ciclo de imports.
func unauthenticatedProblem(c *gin.Context) *problems.DefaultProblem {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return &problems.DefaultProblem{
		Type:     baseURL + errors.ProblemTypeUnauthenticated,
		Title:    translate(c, "error.unauthenticated.title"),
		Status:   http.StatusUnauthorized,
		Detail:   translate(c, "error.unauthenticated.detail"),
		Instance: c.Request.URL.Path,
	}
}

// translate busca a tradução de uma chave usando o serviço i18n da
// requisição, com fallback para a própria chave
func translate(c *gin.Context, key string) string {
	value, exists := c.Get(I18nServiceContextKey)
	if !exists {
		return key
	}

	service, ok := value.(*i18n.Service)
	if !ok {
		return key
	}

	lang, _ := c.Get(LanguageContextKey)
	langStr, ok := lang.(string)
	if !ok {
		langStr = service.GetDefaultLanguage()
	}

	return service.T(langStr, key)
}
