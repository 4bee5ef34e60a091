package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/rafabene/folio-backend/internal/domain/valueobjects"
)

var (
	ErrInvalidUserData = errors.New("invalid user data")
)

// User representa um usuário do sistema
type User struct {
	ID           uuid.UUID
	Email        valueobjects.Email
	Username     string
	PasswordHash string
	DisplayName  *string
	Bio          *string
	AvatarURL    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProfileUpdate contém os campos mutáveis via atualização de perfil.
// Campos nil são ignorados (atualização parcial).
type ProfileUpdate struct {
	DisplayName *string
	Bio         *string
	AvatarURL   *string
}

// ApplyProfileUpdate aplica uma atualização parcial de perfil
func (u *User) ApplyProfileUpdate(update ProfileUpdate) {
	if update.DisplayName != nil {
		u.DisplayName = update.DisplayName
	}
	if update.Bio != nil {
		u.Bio = update.Bio
	}
	if update.AvatarURL != nil {
		u.AvatarURL = update.AvatarURL
	}
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if u.Username == "" {
		return errors.New("username is required")
	}

	if len(u.Username) < 3 {
		return errors.New("username must be at least 3 characters")
	}

	if u.PasswordHash == "" {
		return errors.New("password hash is required")
	}

	return nil
}
