package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/noor-saray-dubai/admin-panel-sub002/internal/domain"
	"github.com/noor-saray-dubai/admin-panel-sub002/pkg/ctxutil"
)

// CreateUser provisions a new back-office account. There is no self-service
// registration; only admins call this.
// Returns ErrAlreadyExists if the email is already taken.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.CreateUser hash password: %w", err)
	}

	now := time.Now()
	user, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
		Role:         input.Role,
		Collections:  input.Collections,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewValidationError("email", "a user with this email already exists")
		}
		return nil, fmt.Errorf("auth.CreateUser: %w", err)
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role.String()))

	return user, nil
}

// UpdateGrants changes a user's role and writable collections. Active
// refresh tokens are revoked so the next login reflects the new role.
func (s *Service) UpdateGrants(ctx context.Context, input UpdateGrantsInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(input.UserID)
	if err != nil {
		return nil, domain.NewValidationError("user_id", "must be a UUID")
	}

	user, err := s.users.UpdateGrants(ctx, userID, input.Role, input.Collections)
	if err != nil {
		return nil, fmt.Errorf("auth.UpdateGrants: %w", err)
	}

	if err := s.tokens.RevokeAllByUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("auth.UpdateGrants revoke tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user grants updated",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role.String()))

	return user, nil
}

// ChangePassword replaces the authenticated user's password after verifying
// the current one, then revokes all refresh tokens.
func (s *Service) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("auth.ChangePassword get user: %w", err)
	}

	if !s.passwords.Verify(user.PasswordHash, input.CurrentPassword) {
		return domain.NewValidationError("current_password", "current password is incorrect")
	}

	hash, err := s.passwords.Hash(input.NewPassword)
	if err != nil {
		return fmt.Errorf("auth.ChangePassword hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("auth.ChangePassword: %w", err)
	}

	if err := s.tokens.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("auth.ChangePassword revoke tokens: %w", err)
	}

	s.log.InfoContext(ctx, "password changed", slog.String("user_id", userID.String()))
	return nil
}

// ListUsers returns every back-office account.
func (s *Service) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("auth.ListUsers: %w", err)
	}
	return users, nil
}

// GetUser returns one account by ID.
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("auth.GetUser: %w", err)
	}
	return user, nil
}
