package review

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	reviewrepo "github.com/annolab/annolab-backend/internal/adapter/postgres/review"
	"github.com/annolab/annolab-backend/internal/domain"
)

// Queue returns review entries matching the filters, ordered by
// (priority DESC, submitted_at ASC). Higher priority surfaces first, ties
// break FIFO. A sorted scan, not a heap: the dataset is small and the
// ordering must be deterministic for tests.
func (s *Service) Queue(ctx context.Context, input QueueInput) ([]*domain.ReviewEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 || limit > s.cfg.MaxQueuePageSize {
		limit = s.cfg.MaxQueuePageSize
	}

	entries, err := s.entries.List(ctx, reviewrepo.Filter{
		ProjectID:   input.ProjectID,
		ReviewerID:  input.ReviewerID,
		AnnotatorID: input.AnnotatorID,
		Status:      input.Status,
		Limit:       limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list queue: %w", err)
	}
	return entries, nil
}

// Feedback returns the feedback items of a review entry in creation order.
func (s *Service) Feedback(ctx context.Context, entryID uuid.UUID) ([]*domain.ReviewFeedback, error) {
	if entryID == uuid.Nil {
		return nil, domain.NewValidationErrors([]domain.FieldError{
			{Field: "entry_id", Message: "required"},
		})
	}

	if _, err := s.entries.GetByID(ctx, entryID); err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}

	items, err := s.entries.ListFeedback(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return items, nil
}
