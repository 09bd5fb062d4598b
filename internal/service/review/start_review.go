package review

import (
	"context"
	"fmt"

	"github.com/annolab/annolab-backend/internal/domain"
)

// StartReview claims a PENDING entry for the reviewer and moves it to
// IN_REVIEW. The entry row is locked for the duration of the transaction, so
// of two racing claims exactly one observes PENDING; the loser gets
// domain.ErrInvalidState.
func (s *Service) StartReview(ctx context.Context, input StartReviewInput) (*domain.ReviewEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var entry *domain.ReviewEntry

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.entries.GetByIDForUpdate(txCtx, input.EntryID)
		if err != nil {
			return fmt.Errorf("get entry: %w", err)
		}

		if current.Status != domain.ReviewStatusPending {
			return fmt.Errorf("entry %s is %s: %w",
				current.ID, current.Status, domain.ErrInvalidState)
		}

		entry, err = s.entries.Start(txCtx, current.ID, input.ReviewerID, s.now().UTC())
		if err != nil {
			return fmt.Errorf("start entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("review started", "entry_id", entry.ID, "reviewer_id", input.ReviewerID)
	return entry, nil
}
