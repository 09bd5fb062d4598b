package review

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	reviewrepo "github.com/annolab/annolab-backend/internal/adapter/postgres/review"
	"github.com/annolab/annolab-backend/internal/domain"
)

// Complete finishes a review with a terminal outcome. Legal only from
// IN_REVIEW and only by the reviewer who started it. When feedback is
// present, the scorer derives accuracy and completeness and the feedback
// items are persisted in the same transaction. Scores are written exactly
// once; terminal entries are never mutated again.
func (s *Service) Complete(ctx context.Context, input CompleteInput) (*domain.ReviewEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if len(input.Feedback) > s.cfg.MaxFeedbackItems {
		return nil, domain.NewValidationErrors([]domain.FieldError{{
			Field:   "feedback",
			Message: fmt.Sprintf("at most %d items", s.cfg.MaxFeedbackItems),
		}})
	}

	var entry *domain.ReviewEntry

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.entries.GetByIDForUpdate(txCtx, input.EntryID)
		if err != nil {
			return fmt.Errorf("get entry: %w", err)
		}

		if current.ReviewerID == nil || *current.ReviewerID != input.ReviewerID {
			return fmt.Errorf("entry %s is not assigned to reviewer %s: %w",
				current.ID, input.ReviewerID, domain.ErrForbidden)
		}
		if current.Status != domain.ReviewStatusInReview {
			return fmt.Errorf("entry %s is %s: %w",
				current.ID, current.Status, domain.ErrInvalidState)
		}

		now := s.now().UTC()

		params := reviewrepo.CompleteParams{
			Outcome:      input.Outcome,
			QualityScore: input.QualityScore,
			Comments:     input.Comments,
			ReviewedAt:   now,
		}
		if current.ReviewStartedAt != nil {
			seconds := int(now.Sub(*current.ReviewStartedAt).Seconds())
			params.ReviewTimeSeconds = &seconds
		}
		if len(input.Feedback) > 0 {
			accuracy := accuracyScore(input.Feedback)
			completeness := completenessScore(current)
			params.AccuracyScore = &accuracy
			params.CompletenessScore = &completeness
		}

		entry, err = s.entries.Complete(txCtx, current.ID, params)
		if err != nil {
			return fmt.Errorf("complete entry: %w", err)
		}

		if len(input.Feedback) > 0 {
			items := make([]*domain.ReviewFeedback, len(input.Feedback))
			for i, fb := range input.Feedback {
				items[i] = &domain.ReviewFeedback{
					ID:             uuid.New(),
					ReviewID:       entry.ID,
					AnnotationType: fb.AnnotationType,
					AnnotationID:   fb.AnnotationID,
					IssueType:      fb.IssueType,
					Severity:       fb.Severity,
					Comment:        fb.Comment,
					Suggestion:     fb.Suggestion,
					CreatedAt:      now.Add(time.Duration(i) * time.Microsecond),
				}
			}
			if err := s.entries.AddFeedback(txCtx, items); err != nil {
				return fmt.Errorf("persist feedback: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.ReviewCompleted(input.Outcome)
	s.log.Info("review completed",
		"entry_id", entry.ID, "outcome", input.Outcome, "quality_score", input.QualityScore)
	return entry, nil
}
