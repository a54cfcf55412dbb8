package dto

import (
	"github.com/skillswap/skillswap-backend/internal/models"
	"github.com/skillswap/skillswap-backend/internal/service"
)

// AuthResponse — пользователь и пара токенов после регистрации или входа.
type AuthResponse struct {
	User   *models.User       `json:"user"`
	Tokens *service.TokenPair `json:"tokens"`
}

// NewAuthResponse собирает ответ из результата сервиса.
func NewAuthResponse(result *service.AuthResult) *AuthResponse {
	return &AuthResponse{
		User:   result.User,
		Tokens: result.TokenPair,
	}
}

// ExportResponse — полная выгрузка с метаданными.
type ExportResponse struct {
	Metadata *service.ExportMetadata `json:"metadata"`
	Users    []models.ExportUserRow  `json:"users"`
	Swaps    []models.ExportSwapRow  `json:"swaps"`
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
