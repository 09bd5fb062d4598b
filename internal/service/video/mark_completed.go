package video

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/annolab/annolab-backend/internal/domain"
)

// MarkCompletedInput identifies the video and the annotator completing it.
type MarkCompletedInput struct {
	VideoID uuid.UUID
	UserID  uuid.UUID
}

// Validate checks the input.
func (in MarkCompletedInput) Validate() error {
	var fieldErrors []domain.FieldError
	if in.VideoID == uuid.Nil {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field: "video_id", Message: "is required",
		})
	}
	if in.UserID == uuid.Nil {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field: "user_id", Message: "is required",
		})
	}
	if len(fieldErrors) > 0 {
		return domain.NewValidationErrors(fieldErrors)
	}
	return nil
}

// MarkCompleted marks an assigned video as completed and bumps the owning
// member's completed counter. Only the assigned annotator may complete a
// video; completing twice returns domain.ErrInvalidState.
func (s *Service) MarkCompleted(ctx context.Context, input MarkCompletedInput) (*domain.Video, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var video *domain.Video

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		video, err = s.videos.GetByIDForUpdate(ctx, input.VideoID)
		if err != nil {
			return fmt.Errorf("get video: %w", err)
		}

		if video.AssignedTo == nil || *video.AssignedTo != input.UserID {
			return fmt.Errorf("video %s is not assigned to user %s: %w",
				input.VideoID, input.UserID, domain.ErrForbidden)
		}

		now := s.now().UTC()
		if err := s.videos.MarkCompleted(ctx, input.VideoID, now); err != nil {
			return fmt.Errorf("mark completed: %w", err)
		}
		video.IsCompleted = true
		video.CompletedAt = &now

		if video.ProjectID != nil {
			if err := s.projects.BumpCompleted(ctx, *video.ProjectID, input.UserID, 1); err != nil {
				return fmt.Errorf("bump completed counter: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("video completed",
		"video_id", input.VideoID,
		"user_id", input.UserID,
	)
	return video, nil
}
