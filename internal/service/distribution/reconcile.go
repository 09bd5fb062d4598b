package distribution

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/annolab/annolab-backend/internal/domain"
)

// ReconcileCounters recomputes every member's videos_assigned and
// videos_completed counters from the video store. The counters are a
// write-through cache and can drift under partial failures; the video store
// is authoritative. Idempotent: a second run with no store changes writes the
// same values again.
func (s *Service) ReconcileCounters(ctx context.Context, projectID uuid.UUID) error {
	if projectID == uuid.Nil {
		return domain.NewValidationErrors([]domain.FieldError{
			{Field: "project_id", Message: "required"},
		})
	}

	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.projects.GetByIDForUpdate(txCtx, projectID); err != nil {
			return fmt.Errorf("get project: %w", err)
		}

		members, err := s.projects.ListMembers(txCtx, projectID)
		if err != nil {
			return fmt.Errorf("list members: %w", err)
		}

		actual, err := s.videos.MemberCounts(txCtx, projectID)
		if err != nil {
			return fmt.Errorf("recount member videos: %w", err)
		}

		for _, m := range members {
			counts := actual[m.UserID]
			if counts.Assigned == m.VideosAssigned && counts.Completed == m.VideosCompleted {
				continue
			}
			s.log.Warn("membership counters drifted, reconciling",
				"project_id", projectID, "user_id", m.UserID,
				"cached_assigned", m.VideosAssigned, "actual_assigned", counts.Assigned,
				"cached_completed", m.VideosCompleted, "actual_completed", counts.Completed)
			if err := s.projects.SetCounters(txCtx, projectID, m.UserID, counts.Assigned, counts.Completed); err != nil {
				return fmt.Errorf("set counters for %s: %w", m.UserID, err)
			}
		}
		return nil
	})
}
