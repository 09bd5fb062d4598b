package auth

import (
	"github.com/google/uuid"

	"github.com/annolab/annolab-backend/internal/domain"
)

// Identity is the authenticated principal carried by a validated token.
type Identity struct {
	UserID uuid.UUID
	Role   domain.UserRole
}

// IsAdmin reports whether the principal holds the admin role.
func (i Identity) IsAdmin() bool { return i.Role.IsAdmin() }
