package dto

import (
	"time"

	"github.com/rafabene/folio-backend/internal/domain/entities"
)

// UpdateProfileRequest representa a atualização parcial do próprio
// perfil (campos ausentes são mantidos)
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name" binding:"omitempty,max=200"`
	Bio         *string `json:"bio" binding:"omitempty,max=500"`
	AvatarURL   *string `json:"avatar_url" binding:"omitempty,max=500"`
}

// ToProfileUpdate converte a requisição para o tipo de domínio
func (r *UpdateProfileRequest) ToProfileUpdate() entities.ProfileUpdate {
	return entities.ProfileUpdate{
		DisplayName: r.DisplayName,
		Bio:         r.Bio,
		AvatarURL:   r.AvatarURL,
	}
}

// UserResponse representa a resposta de um usuário
type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	DisplayName *string   `json:"display_name,omitempty"`
	Bio         *string   `json:"bio,omitempty"`
	AvatarURL   *string   `json:"avatar_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:          user.ID.String(),
		Email:       user.Email.String(),
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Bio:         user.Bio,
		AvatarURL:   user.AvatarURL,
		CreatedAt:   user.CreatedAt,
	}
}

// ToUserResponses converte uma lista de entidades User para UserResponse
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}

// FollowingResponse representa a consulta "estou seguindo?"
type FollowingResponse struct {
	Following bool `json:"following"`
}
