package middleware

import (
	"context"

	"github.com/annolab/annolab-backend/internal/domain"
	"github.com/annolab/annolab-backend/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrForbidden if the context user is not admin.
// Use inside REST handlers, not as HTTP middleware.
func RequireAdmin(ctx context.Context) error {
	role, ok := ctxutil.RoleFromCtx(ctx)
	if !ok || role != domain.UserRoleAdmin.String() {
		return domain.ErrForbidden
	}
	return nil
}
