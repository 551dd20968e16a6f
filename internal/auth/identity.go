package auth

import (
	"github.com/google/uuid"

	"github.com/noor-saray-dubai/admin-panel-sub002/internal/domain"
)

// Identity is the principal carried by a validated access token: the user,
// their role, and the collection grants encoded at issue time. Grants in the
// token serve the client; every write path re-checks the stored user record,
// so a stale token never widens access.
type Identity struct {
	UserID      uuid.UUID
	Role        domain.Role
	Collections []domain.Collection
}

// IsAdmin reports whether the token was issued for an admin user.
func (i Identity) IsAdmin() bool { return i.Role == domain.RoleAdmin }

// CanWrite reports whether the token claims write access to the collection.
// Admins write everywhere; editors only where granted.
func (i Identity) CanWrite(c domain.Collection) bool {
	if i.Role == domain.RoleAdmin {
		return true
	}
	if i.Role != domain.RoleEditor {
		return false
	}
	for _, granted := range i.Collections {
		if granted == c {
			return true
		}
	}
	return false
}
