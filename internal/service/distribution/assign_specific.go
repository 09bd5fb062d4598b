package distribution

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/annolab/annolab-backend/internal/domain"
)

// AssignSpecific distributes an explicit set of videos across the given
// members with the same round-robin policy as AssignEqually. Videos that are
// already assigned, missing, or belong to a different project are skipped,
// not reassigned, so re-running the same request is idempotent.
func (s *Service) AssignSpecific(ctx context.Context, input AssignSpecificInput) (map[uuid.UUID]int, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if len(input.MemberIDs) == 0 {
		return nil, fmt.Errorf("no members specified: %w", domain.ErrPrecondition)
	}

	var assignments map[uuid.UUID]int

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.projects.GetByIDForUpdate(txCtx, input.ProjectID); err != nil {
			return fmt.Errorf("get project: %w", err)
		}

		videos, err := s.videos.ListByIDsForUpdate(txCtx, input.VideoIDs)
		if err != nil {
			return fmt.Errorf("list videos: %w", err)
		}

		eligible := make([]*domain.Video, 0, len(videos))
		for _, v := range videos {
			if v.IsAssigned() {
				continue
			}
			if v.ProjectID == nil || *v.ProjectID != input.ProjectID {
				continue
			}
			eligible = append(eligible, v)
		}
		if len(eligible) == 0 {
			return fmt.Errorf("no assignable videos in selection: %w", domain.ErrPrecondition)
		}

		assignments, err = s.roundRobin(txCtx, input.ProjectID, eligible, input.MemberIDs)
		if err != nil {
			return fmt.Errorf("assign videos: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	total := 0
	for _, n := range assignments {
		total += n
	}
	s.metrics.DistributionRun(total)
	s.log.Info("specific videos distributed",
		"project_id", input.ProjectID, "videos", total,
		"requested", len(input.VideoIDs), "members", len(input.MemberIDs))
	return assignments, nil
}
