package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Role represents an admin panel user role.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleEditor Role = "EDITOR"
	RoleViewer Role = "VIEWER"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleViewer:
		return true
	}
	return false
}

// User represents an authenticated back-office user.
// Collections lists the catalog collections the user may write to; admins
// implicitly have access to every collection.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	Collections  []Collection
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanRead reports whether the user may read the given collection.
// Every authenticated user can read; the check exists so the permission
// model has a single place to tighten later.
func (u *User) CanRead(Collection) bool { return true }

// CanWrite reports whether the user may create or modify documents in the
// given collection.
func (u *User) CanWrite(c Collection) bool {
	switch u.Role {
	case RoleAdmin:
		return true
	case RoleEditor:
		return slices.Contains(u.Collections, c)
	}
	return false
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
