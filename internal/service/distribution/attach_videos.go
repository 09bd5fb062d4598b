package distribution

import (
	"context"
	"fmt"
)

// AttachVideos attaches project-less videos to a project. Videos already
// belonging to a project are skipped; the returned count is the number
// actually attached, not the number requested. The project's total-video
// counter is recomputed from the store afterwards, an authoritative recount,
// not an increment, so repeated attachments cannot drift it.
func (s *Service) AttachVideos(ctx context.Context, input AttachVideosInput) (int, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}

	attached := 0

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.projects.GetByIDForUpdate(txCtx, input.ProjectID); err != nil {
			return fmt.Errorf("get project: %w", err)
		}

		for _, videoID := range input.VideoIDs {
			ok, err := s.videos.AttachToProject(txCtx, videoID, input.ProjectID)
			if err != nil {
				return fmt.Errorf("attach video %s: %w", videoID, err)
			}
			if ok {
				attached++
			}
		}

		total, err := s.videos.CountByProject(txCtx, input.ProjectID)
		if err != nil {
			return fmt.Errorf("recount project videos: %w", err)
		}
		if err := s.projects.SetTotalVideos(txCtx, input.ProjectID, total, s.now().UTC()); err != nil {
			return fmt.Errorf("update project total: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.Info("videos attached to project",
		"project_id", input.ProjectID, "attached", attached, "requested", len(input.VideoIDs))
	return attached, nil
}
