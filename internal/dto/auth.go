package dto

import (
	"github.com/fokanendapascal/internship-management-app/internal/domain"
)

// RegisterRequest represents a new account registration
type RegisterRequest struct {
	Email     string   `json:"email" binding:"required,email"`
	Password  string   `json:"password" binding:"required,min=8"`
	FirstName string   `json:"first_name" binding:"required"`
	LastName  string   `json:"last_name" binding:"required"`
	Telephone string   `json:"telephone,omitempty"`
	Roles     []string `json:"roles,omitempty"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries a freshly issued token pair
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

// AuthenticatedUserResponse describes the account behind the current token
type AuthenticatedUserResponse struct {
	ID        int64    `json:"id"`
	Email     string   `json:"email"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Roles     []string `json:"roles"`
}

// FromUser converts a domain User to an AuthenticatedUserResponse
func FromUser(u *domain.User) *AuthenticatedUserResponse {
	return &AuthenticatedUserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Roles:     domain.RoleNames(u.Roles),
	}
}
