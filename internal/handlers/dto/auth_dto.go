package dto

import (
	"github.com/rafabene/folio-backend/internal/domain/entities"
)

// RegisterRequest representa a requisição de registro
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=100"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse representa a resposta de autenticação
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

// ToTokenResponse converte usuário + token em TokenResponse
func ToTokenResponse(user *entities.User, token string) TokenResponse {
	return TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        ToUserResponse(user),
	}
}
