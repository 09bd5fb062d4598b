package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewEntry is one review cycle for a submitted video.
//
// Invariant: at most one entry per (VideoID, AnnotatorID) may be in a
// non-terminal status at a time. Entries are never physically deleted;
// terminal entries remain as the audit trail.
type ReviewEntry struct {
	ID          uuid.UUID
	VideoID     uuid.UUID
	ProjectID   *uuid.UUID
	AnnotatorID uuid.UUID
	ReviewerID  *uuid.UUID
	Status      ReviewStatus
	Priority    int

	// Scores are written exactly once, at completion.
	QualityScore      *float64 // 0.0–5.0
	AccuracyScore     *float64 // 0.0–1.0
	CompletenessScore *float64 // 0.0–1.0
	Comments          *string

	// Annotation counts snapshotted at submission time.
	AnnotationCount int
	BBoxCount       int

	SubmittedAt       time.Time
	ReviewStartedAt   *time.Time
	ReviewedAt        *time.Time
	ReviewTimeSeconds *int
}

// HasAnnotations reports whether the submission contained any work when it
// entered the queue.
func (e *ReviewEntry) HasAnnotations() bool {
	return e.AnnotationCount > 0 || e.BBoxCount > 0
}

// ReviewFeedback is one itemized issue attached to a completed review.
// Feedback is created only at completion and is immutable afterward.
type ReviewFeedback struct {
	ID             uuid.UUID
	ReviewID       uuid.UUID
	AnnotationType AnnotationType
	AnnotationID   *uuid.UUID
	IssueType      IssueType
	Severity       Severity
	Comment        string
	Suggestion     *string
	CreatedAt      time.Time
}

// ReviewerLoad pairs a reviewer with their count of non-terminal entries.
type ReviewerLoad struct {
	User User
	Load int
}

// ReviewStatistics aggregates completed-review quality for a project or user.
type ReviewStatistics struct {
	StatusCounts         map[ReviewStatus]int
	TotalReviews         int
	CompletedReviews     int
	AverageQualityScore  float64
	AverageAccuracyScore float64
	AverageReviewSeconds int
}
