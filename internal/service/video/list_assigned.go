package video

import (
	"context"

	"github.com/google/uuid"

	"github.com/annolab/annolab-backend/internal/domain"
)

// ListAssigned returns the videos assigned to a user in import order,
// optionally scoped to one project.
func (s *Service) ListAssigned(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID) ([]*domain.Video, error) {
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "is required")
	}
	return s.videos.ListAssigned(ctx, userID, projectID)
}
