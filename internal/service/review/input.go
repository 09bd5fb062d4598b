package review

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/annolab/annolab-backend/internal/domain"
)

// SubmitInput holds the parameters for submitting a video for review.
type SubmitInput struct {
	VideoID     uuid.UUID
	AnnotatorID uuid.UUID
	AutoAssign  bool
	Priority    *int
}

// Validate checks all fields and collects all errors.
func (i *SubmitInput) Validate() error {
	var errs []domain.FieldError

	if i.VideoID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "video_id", Message: "required"})
	}
	if i.AnnotatorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "annotator_id", Message: "required"})
	}
	if i.Priority != nil && (*i.Priority < 0 || *i.Priority > 100) {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// StartReviewInput holds the parameters for claiming a pending entry.
type StartReviewInput struct {
	EntryID    uuid.UUID
	ReviewerID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *StartReviewInput) Validate() error {
	var errs []domain.FieldError

	if i.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entry_id", Message: "required"})
	}
	if i.ReviewerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "reviewer_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// FeedbackInput is one itemized issue attached at completion.
type FeedbackInput struct {
	AnnotationType domain.AnnotationType
	AnnotationID   *uuid.UUID
	IssueType      domain.IssueType
	Severity       domain.Severity
	Comment        string
	Suggestion     *string
}

// CompleteInput holds the parameters for completing a review.
type CompleteInput struct {
	EntryID      uuid.UUID
	ReviewerID   uuid.UUID
	Outcome      domain.ReviewStatus
	QualityScore float64
	Comments     *string
	Feedback     []FeedbackInput
}

// Validate checks all fields and collects all errors.
func (i *CompleteInput) Validate() error {
	var errs []domain.FieldError

	if i.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entry_id", Message: "required"})
	}
	if i.ReviewerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "reviewer_id", Message: "required"})
	}
	if !i.Outcome.IsOutcome() {
		errs = append(errs, domain.FieldError{Field: "outcome", Message: "must be APPROVED, REJECTED, or NEEDS_REVISION"})
	}
	if i.QualityScore < 0 || i.QualityScore > 5 {
		errs = append(errs, domain.FieldError{Field: "quality_score", Message: "must be between 0.0 and 5.0"})
	}
	for idx, fb := range i.Feedback {
		prefix := fmt.Sprintf("feedback[%d].", idx)
		if !fb.AnnotationType.IsValid() {
			errs = append(errs, domain.FieldError{Field: prefix + "annotation_type", Message: "must be temporal or bbox"})
		}
		if !fb.IssueType.IsValid() {
			errs = append(errs, domain.FieldError{Field: prefix + "issue_type", Message: "unknown issue type"})
		}
		if !fb.Severity.IsValid() {
			errs = append(errs, domain.FieldError{Field: prefix + "severity", Message: "must be minor, major, or critical"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// QueueInput holds the review queue filters.
type QueueInput struct {
	ProjectID   *uuid.UUID
	ReviewerID  *uuid.UUID
	AnnotatorID *uuid.UUID
	Status      *domain.ReviewStatus
	Limit       int
}

// Validate checks all fields and collects all errors.
func (i *QueueInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown review status"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// StatisticsInput scopes review statistics to a project, annotator, or reviewer.
type StatisticsInput struct {
	ProjectID   *uuid.UUID
	AnnotatorID *uuid.UUID
	ReviewerID  *uuid.UUID
}
