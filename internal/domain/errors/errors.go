package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound         = errors.New("error.user_not_found")
	ErrPostNotFound         = errors.New("error.post_not_found")
	ErrEmailAlreadyExists   = errors.New("error.email_already_exists")
	ErrUsernameAlreadyTaken = errors.New("error.username_already_taken")
	ErrInvalidCredentials   = errors.New("error.invalid_credentials")
	ErrUnauthenticated      = errors.New("error.unauthenticated")
	ErrForbidden            = errors.New("error.forbidden")
	ErrCannotFollowSelf     = errors.New("error.cannot_follow_self")
)

// Domain errors
var (
	ErrInvalidEmail = errors.New("error.invalid_email")
	ErrValidation   = errors.New("error.validation")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation      = "/problems/validation-error"
	ProblemTypeNotFound        = "/problems/not-found"
	ProblemTypeConflict        = "/problems/conflict"
	ProblemTypeUnauthenticated = "/problems/unauthenticated"
	ProblemTypeForbidden       = "/problems/forbidden"
	ProblemTypeInternal        = "/problems/internal-error"
	ProblemTypeBadRequest      = "/problems/bad-request"
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
