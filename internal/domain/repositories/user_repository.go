package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/rafabene/folio-backend/internal/domain/entities"
)

// ErrDuplicateUser é a violação de unicidade de email ou username
// traduzida pela camada de persistência. O chamador decide qual dos
// dois campos colidiu.
var ErrDuplicateUser = errors.New("email or username already exists")

// UserRepository define a interface para persistência de usuários
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
}
