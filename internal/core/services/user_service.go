package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/contafacil/contafacil-backend/internal/apperrors"
	"github.com/contafacil/contafacil-backend/internal/core/domain"
	portsrepo "github.com/contafacil/contafacil-backend/internal/core/ports/repositories"
	portssvc "github.com/contafacil/contafacil-backend/internal/core/ports/services"
	"github.com/contafacil/contafacil-backend/internal/dto"
	"github.com/contafacil/contafacil-backend/internal/utils"
)

// Preferences applied to every new user until they change them.
var defaultPreferences = domain.UserPreferences{
	Currency: "BRL",
	Theme:    domain.ThemeLight,
	Language: "pt-BR",
}

// userService implements the UserSvcFacade interface
type userService struct {
	BaseService
	userRepo portsrepo.UserRepository
}

// NewUserService creates a new user service
func NewUserService(repo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{
		userRepo: repo,
	}
}

// Ensure userService implements the UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Preferences:  defaultPreferences,
		PasswordHash: passwordHash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("email already registered: %w", apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "Failed to save user",
			slog.String("user_id", user.UserID))
		return nil, err
	}

	s.LogInfo(ctx, "User created successfully",
		slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *userService) CreateOAuthUser(ctx context.Context, name, email string) (*domain.User, error) {
	now := time.Now()
	user := domain.User{
		UserID:      uuid.NewString(),
		Name:        name,
		Email:       email,
		Preferences: defaultPreferences,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save OAuth user",
			slog.String("user_id", user.UserID))
		return nil, err
	}

	s.LogInfo(ctx, "OAuth user created successfully",
		slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by ID",
				slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by email")
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		user.Name = *req.Name
		updated = true
	}
	if req.Email != nil {
		user.Email = *req.Email
		updated = true
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for user update",
			slog.String("user_id", userID))
		return user, nil
	}

	user.LastUpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("email already registered: %w", apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "Failed to update user",
			slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "User updated successfully",
		slog.String("user_id", userID))
	return user, nil
}

func (s *userService) UpdateUserPreferences(ctx context.Context, userID string, req dto.UpdateUserPreferencesRequest) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Currency != nil {
		user.Preferences.Currency = *req.Currency
	}
	if req.Theme != nil {
		user.Preferences.Theme = *req.Theme
	}
	if req.Language != nil {
		user.Preferences.Language = *req.Language
	}

	user.LastUpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user preferences",
			slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "User preferences updated",
		slog.String("user_id", userID))
	return user, nil
}

func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, refreshTokenHash, &refreshTokenExpiryTime, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to store refresh token",
			slog.String("user_id", userID))
		return err
	}
	return nil
}

func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, "", nil, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to clear refresh token",
			slog.String("user_id", userID))
		return err
	}
	s.LogInfo(ctx, "Refresh token cleared",
		slog.String("user_id", userID))
	return nil
}

func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same failure as a bad password so probing emails learns nothing
			return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to load user for authentication")
		return nil, err
	}

	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
	}

	s.LogInfo(ctx, "User authenticated successfully",
		slog.String("user_id", user.UserID))
	return user, nil
}
