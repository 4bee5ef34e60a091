package security

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/folio-backend/internal/domain/ports"
)

// BcryptHasher implementa ports.PasswordHasher usando bcrypt
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher cria um novo hasher com o custo padrão do bcrypt
func NewBcryptHasher() ports.PasswordHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (h *BcryptHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
