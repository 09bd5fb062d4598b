package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/annolab/annolab-backend/internal/domain"
)

// ListForUser returns the projects visible to a user, most recently active
// first. Admins see every project; everyone else sees only projects they
// are a member of. Archived projects are hidden unless asked for.
func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]*domain.Project, error) {
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "is required")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	if user.Role.IsAdmin() {
		return s.projects.ListAll(ctx, includeArchived)
	}
	return s.projects.ListForUser(ctx, userID, includeArchived)
}
