package distribution

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/annolab/annolab-backend/internal/domain"
)

// AssignEqually distributes all unassigned videos of a project across the
// given members in deterministic round-robin order: video i goes to
// memberIDs[i mod len(memberIDs)], walking videos in creation order. The
// per-member difference is therefore at most one. The whole distribution is
// one transaction: it either applies fully or not at all.
//
// Fails with domain.ErrPrecondition when the member list is empty or the
// project has no unassigned videos.
func (s *Service) AssignEqually(ctx context.Context, input AssignEquallyInput) (map[uuid.UUID]int, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if len(input.MemberIDs) == 0 {
		return nil, fmt.Errorf("no members specified: %w", domain.ErrPrecondition)
	}

	var assignments map[uuid.UUID]int

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Project row lock serializes concurrent distribution runs.
		if _, err := s.projects.GetByIDForUpdate(txCtx, input.ProjectID); err != nil {
			return fmt.Errorf("get project: %w", err)
		}

		videos, err := s.videos.ListUnassignedForUpdate(txCtx, input.ProjectID)
		if err != nil {
			return fmt.Errorf("list unassigned videos: %w", err)
		}
		if len(videos) == 0 {
			return fmt.Errorf("no unassigned videos in project: %w", domain.ErrPrecondition)
		}

		assignments, err = s.roundRobin(txCtx, input.ProjectID, videos, input.MemberIDs)
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
	s.log.Info("videos distributed equally",
		"project_id", input.ProjectID, "videos", total, "members", len(input.MemberIDs))
	return assignments, nil
}
