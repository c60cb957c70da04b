package dto

import "time"

// RegisterRequest defines the data needed to create a new user account.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest defines the credentials for password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries a refresh token to exchange for a new token pair.
type RefreshRequest struct {
	UserID       string `json:"userId" binding:"required"`
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ExchangeCodeRequest carries the Google OAuth authorization code.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// AuthResponse is returned by login, register, refresh and OAuth exchange.
type AuthResponse struct {
	Token        string       `json:"token"`
	ExpiresAt    time.Time    `json:"expiresAt"`
	RefreshToken string       `json:"refreshToken,omitempty"`
	User         UserResponse `json:"user"`
}
