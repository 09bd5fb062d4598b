package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/annolab/annolab-backend/internal/domain"
)

// Submit places a video in the review queue. Submission is idempotent per
// (video, annotator): while a prior entry is PENDING or IN_REVIEW, the
// existing entry is returned unchanged and no new row is created. Annotation
// counts are snapshotted at submission time.
//
// With AutoAssign, the balancer picks a reviewer; finding none is not an
// error; the entry stays PENDING unassigned and the miss is counted.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.ReviewEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	priority := s.cfg.DefaultPriority
	if input.Priority != nil {
		priority = *input.Priority
	}

	var (
		entry   *domain.ReviewEntry
		created bool
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Lock the video row: concurrent submissions for the same video
		// serialize here, so the active-entry check below cannot race.
		video, err := s.videos.GetByIDForUpdate(txCtx, input.VideoID)
		if err != nil {
			return fmt.Errorf("get video: %w", err)
		}

		existing, err := s.entries.GetActive(txCtx, input.VideoID, input.AnnotatorID)
		if err == nil {
			s.log.Warn("video already in review queue",
				"video_id", input.VideoID, "entry_id", existing.ID)
			entry = existing
			return nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("check active entry: %w", err)
		}

		counts, err := s.annotations.CountsByVideo(txCtx, input.VideoID)
		if err != nil {
			return fmt.Errorf("count annotations: %w", err)
		}

		newEntry, err := s.entries.Create(txCtx, &domain.ReviewEntry{
			ID:              uuid.New(),
			VideoID:         video.ID,
			ProjectID:       video.ProjectID,
			AnnotatorID:     input.AnnotatorID,
			Status:          domain.ReviewStatusPending,
			Priority:        priority,
			AnnotationCount: counts.Temporal,
			BBoxCount:       counts.BBox,
			SubmittedAt:     s.now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("create entry: %w", err)
		}

		if input.AutoAssign {
			reviewer, err := s.selectReviewer(txCtx, input.AnnotatorID)
			if err != nil {
				return fmt.Errorf("select reviewer: %w", err)
			}
			if reviewer == nil {
				s.metrics.AutoAssignMiss()
				s.log.Warn("no reviewer available, entry left unassigned",
					"video_id", input.VideoID, "entry_id", newEntry.ID)
			} else {
				if err := s.entries.SetReviewer(txCtx, newEntry.ID, reviewer.ID); err != nil {
					return fmt.Errorf("assign reviewer: %w", err)
				}
				newEntry.ReviewerID = &reviewer.ID
				s.log.Info("auto-assigned reviewer",
					"entry_id", newEntry.ID, "reviewer_id", reviewer.ID)
			}
		}

		entry = newEntry
		created = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if created {
		s.metrics.ReviewSubmitted()
		s.log.Info("video submitted for review",
			"video_id", input.VideoID, "annotator_id", input.AnnotatorID, "entry_id", entry.ID)
	}
	return entry, nil
}
