package project

import (
	"context"
	"fmt"
)

// UpdateStatus moves a project to a new lifecycle status and refreshes its
// last-activity timestamp.
func (s *Service) UpdateStatus(ctx context.Context, input UpdateStatusInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.projects.UpdateStatus(ctx, input.ProjectID, input.Status, s.now().UTC()); err != nil {
		return fmt.Errorf("update project status: %w", err)
	}

	s.log.Info("project status updated",
		"project_id", input.ProjectID,
		"status", input.Status,
	)
	return nil
}
