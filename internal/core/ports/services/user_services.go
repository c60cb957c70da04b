package services

import (
	"context"
	"time"

	"github.com/contafacil/contafacil-backend/internal/core/domain"
	"github.com/contafacil/contafacil-backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser creates a new user with a hashed password.
	CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// CreateOAuthUser creates a user from an external identity provider profile.
	// No password is stored for such users.
	CreateOAuthUser(ctx context.Context, name, email string) (*domain.User, error)

	// UpdateUser updates the user's profile fields.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// UpdateUserPreferences updates the user's display preferences.
	UpdateUserPreferences(ctx context.Context, userID string, req dto.UpdateUserPreferencesRequest) (*domain.User, error)

	// UpdateRefreshToken stores the hash and expiry of a newly issued refresh token.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error

	// ClearRefreshToken invalidates the user's refresh token.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser authenticates a user with email and password.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
