package ports

import "github.com/google/uuid"

// TokenIssuer emite e verifica tokens de acesso opacos.
// O token carrega apenas o identificador do sujeito; a política de
// expiração é configuração externa.
type TokenIssuer interface {
	Issue(userID uuid.UUID) (string, error)
	Verify(token string) (uuid.UUID, error)
}
