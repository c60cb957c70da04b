package dto

import (
	"time"

	"github.com/contafacil/contafacil-backend/internal/core/domain"
)

// UpdateUserRequest defines the data allowed for updating the current user's profile.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
}

// UpdateUserPreferencesRequest defines the data allowed for updating preferences.
type UpdateUserPreferencesRequest struct {
	Currency *string       `json:"currency"`
	Theme    *domain.Theme `json:"theme" binding:"omitempty,oneof=LIGHT DARK"`
	Language *string       `json:"language"`
}

// UserPreferencesResponse mirrors domain.UserPreferences.
type UserPreferencesResponse struct {
	Currency string       `json:"currency"`
	Theme    domain.Theme `json:"theme"`
	Language string       `json:"language"`
}

// UserResponse defines the data returned for a user profile.
type UserResponse struct {
	UserID      string                  `json:"id"`
	Name        string                  `json:"name"`
	Email       string                  `json:"email"`
	Preferences UserPreferencesResponse `json:"preferences"`
	CreatedAt   time.Time               `json:"createdAt"`
	UpdatedAt   time.Time               `json:"updatedAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID: user.UserID,
		Name:   user.Name,
		Email:  user.Email,
		Preferences: UserPreferencesResponse{
			Currency: user.Preferences.Currency,
			Theme:    user.Preferences.Theme,
			Language: user.Preferences.Language,
		},
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.LastUpdatedAt,
	}
}
