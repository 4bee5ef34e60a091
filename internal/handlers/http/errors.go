package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/folio-backend/internal/domain/errors"
	"github.com/rafabene/folio-backend/internal/domain/ports"
	"github.com/rafabene/folio-backend/internal/handlers/dto"
)

// respondError traduz um erro de domínio para o problem RFC 7807 e
// status HTTP correspondentes. Erros não mapeados viram 500 genérico
// (o detalhe fica apenas no log).
func respondError(c *gin.Context, logger ports.Logger, err error) {
	switch {
	case errs.Is(err, errors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundProblemI18n(c, "User"))

	case errs.Is(err, errors.ErrPostNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundProblemI18n(c, "Post"))

	case errs.Is(err, errors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.ConflictProblemI18n(c, "error.email_already_exists"))

	case errs.Is(err, errors.ErrUsernameAlreadyTaken):
		c.JSON(http.StatusConflict, dto.ConflictProblemI18n(c, "error.username_already_taken"))

	case errs.Is(err, errors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.UnauthenticatedProblemI18n(c, "error.invalid_credentials"))

	case errs.Is(err, errors.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, dto.UnauthenticatedProblemI18n(c, "error.unauthenticated.detail"))

	case errs.Is(err, errors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ForbiddenProblemI18n(c))

	case errs.Is(err, errors.ErrCannotFollowSelf):
		c.JSON(http.StatusBadRequest, dto.ValidationProblemI18n(c, "error.cannot_follow_self"))

	case errs.Is(err, errors.ErrInvalidEmail), errs.Is(err, errors.ErrValidation):
		// Preserva a mensagem específica construída pelo domínio,
		// quando houver
		var domainErr *errors.DomainError
		if errs.As(err, &domainErr) && domainErr.Message != "" {
			c.JSON(http.StatusBadRequest, dto.ValidationProblemDetail(c, domainErr.Message))
			return
		}
		c.JSON(http.StatusBadRequest, dto.ValidationProblemI18n(c, "error.validation.detail"))

	default:
		logger.Error("unhandled error", "error", err, "path", c.Request.URL.Path)
		c.JSON(http.StatusInternalServerError, dto.InternalProblemI18n(c))
	}
}
