package repositories

import (
	"context"
	"time"

	"github.com/contafacil/contafacil-backend/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdateRefreshToken stores the hash and expiry of the latest refresh
	// token; empty hash and nil expiry clear it (logout).
	UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiryTime *time.Time, now time.Time) error
}
