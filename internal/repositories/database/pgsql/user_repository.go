package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/contafacil/contafacil-backend/internal/apperrors"
	"github.com/contafacil/contafacil-backend/internal/core/domain"
	portsrepo "github.com/contafacil/contafacil-backend/internal/core/ports/repositories"
	"github.com/contafacil/contafacil-backend/internal/models"
)

type PgxUserRepository struct {
	pool *pgxpool.Pool
}

// newPgxUserRepository creates a new repository for user data.
func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{pool: pool}
}

// Ensure PgxUserRepository implements portsrepo.UserRepository
var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

func toModelUser(d domain.User) models.User {
	return models.User{
		UserID:                 d.UserID,
		Name:                   d.Name,
		Email:                  d.Email,
		PasswordHash:           d.PasswordHash,
		Currency:               d.Preferences.Currency,
		Theme:                  string(d.Preferences.Theme),
		Language:               d.Preferences.Language,
		RefreshTokenHash:       d.RefreshTokenHash,
		RefreshTokenExpiryTime: d.RefreshTokenExpiryTime,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainUser(m models.User) domain.User {
	return domain.User{
		UserID: m.UserID,
		Name:   m.Name,
		Email:  m.Email,
		Preferences: domain.UserPreferences{
			Currency: m.Currency,
			Theme:    domain.Theme(m.Theme),
			Language: m.Language,
		},
		PasswordHash:           m.PasswordHash,
		RefreshTokenHash:       m.RefreshTokenHash,
		RefreshTokenExpiryTime: m.RefreshTokenExpiryTime,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

const userColumns = `user_id, name, email, password_hash, currency, theme, language, refresh_token_hash, refresh_token_expiry_time, created_at, updated_at`

func scanUser(row pgx.Row) (models.User, error) {
	var m models.User
	var passwordHash, refreshTokenHash sql.NullString
	var refreshExpiry sql.NullTime
	err := row.Scan(
		&m.UserID,
		&m.Name,
		&m.Email,
		&passwordHash,
		&m.Currency,
		&m.Theme,
		&m.Language,
		&refreshTokenHash,
		&refreshExpiry,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return m, err
	}
	m.PasswordHash = passwordHash.String
	m.RefreshTokenHash = refreshTokenHash.String
	if refreshExpiry.Valid {
		t := refreshExpiry.Time
		m.RefreshTokenExpiryTime = &t
	}
	return m, nil
}

// SaveUser inserts a new user row. A duplicate email maps to ErrDuplicate.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := toModelUser(user)

	query := `
		INSERT INTO users (user_id, name, email, password_hash, currency, theme, language, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		m.UserID,
		m.Name,
		m.Email,
		nullableID(m.PasswordHash),
		m.Currency,
		m.Theme,
		m.Language,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: user with email %s already exists", apperrors.ErrDuplicate, m.Email)
		}
		return fmt.Errorf("failed to save user %s: %w", m.UserID, err)
	}
	return nil
}

// FindUserByID retrieves a user by ID.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`

	m, err := scanUser(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}

	user := toDomainUser(m)
	return &user, nil
}

// FindUserByEmail retrieves a user by email, case-insensitively.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1);`

	m, err := scanUser(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	user := toDomainUser(m)
	return &user, nil
}

// UpdateUser updates the user's profile and preference columns.
func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := toModelUser(user)

	query := `
		UPDATE users
		SET name = $1, email = $2, currency = $3, theme = $4, language = $5, updated_at = $6
		WHERE user_id = $7;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.Name,
		m.Email,
		m.Currency,
		m.Theme,
		m.Language,
		m.LastUpdatedAt,
		m.UserID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: user with email %s already exists", apperrors.ErrDuplicate, m.Email)
		}
		return fmt.Errorf("failed to update user %s: %w", m.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateRefreshToken stores (or clears) the user's refresh token hash and expiry.
func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiryTime *time.Time, now time.Time) error {
	query := `
		UPDATE users
		SET refresh_token_hash = $1, refresh_token_expiry_time = $2, updated_at = $3
		WHERE user_id = $4;
	`
	tag, err := r.pool.Exec(ctx, query,
		nullableID(tokenHash),
		expiryTime,
		now,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update refresh token for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
