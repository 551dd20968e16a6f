package middleware

import (
	"context"

	"github.com/noor-saray-dubai/admin-panel-sub002/internal/domain"
	"github.com/noor-saray-dubai/admin-panel-sub002/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrForbidden unless the context carries the
// ADMIN role. Use inside handlers, not as HTTP middleware, so the error maps
// through the usual response path.
func RequireAdmin(ctx context.Context) error {
	role, ok := ctxutil.RoleFromCtx(ctx)
	if !ok || domain.Role(role) != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	return nil
}
