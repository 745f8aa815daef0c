package response

import (
	"toolshare/internal/usecase/commands"

	"github.com/google/uuid"
)

const TokenTypeBearer = "bearer"

type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int64     `json:"expires_in"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
}

func FromAuthResult(r *commands.AuthResult) *TokenResponse {
	return &TokenResponse{
		AccessToken: r.AccessToken,
		TokenType:   TokenTypeBearer,
		ExpiresIn:   int64(r.ExpiresIn.Seconds()),
		UserID:      r.User.ID(),
		Name:        r.User.Name().String(),
		Role:        r.User.Role().String(),
	}
}
