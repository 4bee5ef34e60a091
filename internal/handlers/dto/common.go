package dto

import (
	stderrors "errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/moogar0880/problems"

	"github.com/rafabene/folio-backend/internal/domain/errors"
)

// Problem estende o problem RFC 7807 com a lista de erros de validação
// por campo
type Problem struct {
	problems.DefaultProblem
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// NewProblemI18n cria um problem RFC 7807 com título e detalhe
// traduzidos via i18n
func NewProblemI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) *Problem {
	// Pegar base URL da configuração
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return &Problem{
		DefaultProblem: problems.DefaultProblem{
			Type:     baseURL + problemType,
			Title:    T(c, titleKey, params...),
			Status:   status,
			Detail:   T(c, detailKey, params...),
			Instance: c.Request.URL.Path,
		},
	}
}

// Helpers para respostas de erro comuns

// ValidationProblem cria uma resposta 400 a partir de um erro de
// binding, extraindo os erros de campo do validator quando presentes
func ValidationProblem(c *gin.Context, err error) *Problem {
	problem := NewProblemI18n(
		c,
		errors.ProblemTypeValidation,
		"error.validation.title",
		"error.validation.detail",
		400,
	)

	var fieldErrors validator.ValidationErrors
	if stderrors.As(err, &fieldErrors) {
		for _, fe := range fieldErrors {
			problem.Errors = append(problem.Errors, ValidationError{
				Field:   fe.Field(),
				Message: fe.Error(),
				Tag:     fe.Tag(),
			})
		}
	}

	return problem
}

// ValidationProblemI18n cria uma resposta 400 com uma mensagem de
// detalhe específica (ex.: auto-follow)
func ValidationProblemI18n(c *gin.Context, detailKey string) *Problem {
	return NewProblemI18n(
		c,
		errors.ProblemTypeValidation,
		"error.validation.title",
		detailKey,
		400,
	)
}

// ValidationProblemDetail cria uma resposta 400 com um detalhe literal
// já construído pelo domínio (ex.: "title is required")
func ValidationProblemDetail(c *gin.Context, detail string) *Problem {
	problem := NewProblemI18n(
		c,
		errors.ProblemTypeValidation,
		"error.validation.title",
		"error.validation.detail",
		400,
	)
	problem.Detail = detail
	return problem
}

// NotFoundProblemI18n cria uma resposta 404
func NotFoundProblemI18n(c *gin.Context, resource string) *Problem {
	return NewProblemI18n(
		c,
		errors.ProblemTypeNotFound,
		"error.not_found.title",
		"error.not_found.detail",
		404,
		map[string]interface{}{"Resource": resource},
	)
}

// ConflictProblemI18n cria uma resposta 409
func ConflictProblemI18n(c *gin.Context, detailKey string, params ...map[string]interface{}) *Problem {
	return NewProblemI18n(
		c,
		errors.ProblemTypeConflict,
		"error.conflict.title",
		detailKey,
		409,
		params...,
	)
}

// UnauthenticatedProblemI18n cria uma resposta 401
func UnauthenticatedProblemI18n(c *gin.Context, detailKey string) *Problem {
	return NewProblemI18n(
		c,
		errors.ProblemTypeUnauthenticated,
		"error.unauthenticated.title",
		detailKey,
		401,
	)
}

// ForbiddenProblemI18n cria uma resposta 403
func ForbiddenProblemI18n(c *gin.Context) *Problem {
	return NewProblemI18n(
		c,
		errors.ProblemTypeForbidden,
		"error.forbidden.title",
		"error.forbidden.detail",
		403,
	)
}

// InternalProblemI18n cria uma resposta 500
func InternalProblemI18n(c *gin.Context) *Problem {
	return NewProblemI18n(
		c,
		errors.ProblemTypeInternal,
		"error.internal.title",
		"error.internal.detail",
		500,
	)
}
