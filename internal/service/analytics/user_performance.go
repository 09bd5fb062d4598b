package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	reviewrepo "github.com/annolab/annolab-backend/internal/adapter/postgres/review"
	"github.com/annolab/annolab-backend/internal/domain"
)

// UserPerformanceInput identifies the user and scopes the report.
type UserPerformanceInput struct {
	UserID uuid.UUID

	// ProjectID limits all counts to one project. nil means all projects.
	ProjectID *uuid.UUID

	// WindowDays bounds the annotation activity window. 0 means the
	// configured default.
	WindowDays int
}

// Validate checks the input.
func (in UserPerformanceInput) Validate() error {
	var fieldErrors []domain.FieldError
	if in.UserID == uuid.Nil {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field: "user_id", Message: "is required",
		})
	}
	if in.WindowDays < 0 {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field: "window_days", Message: "must not be negative",
		})
	}
	if len(fieldErrors) > 0 {
		return domain.NewValidationErrors(fieldErrors)
	}
	return nil
}

// VideoStats is the assigned-work portion of a performance report.
type VideoStats struct {
	TotalAssigned  int
	Completed      int
	InProgress     int
	CompletionRate float64
}

// AnnotationStats totals both annotation kinds over the report window.
type AnnotationStats struct {
	Temporal     int
	BBox         int
	Total        int
	DailyAverage float64
}

// AnnotatorStats summarizes how a user's submissions fared in review.
// Present only for users holding the annotator role.
type AnnotatorStats struct {
	TotalReviews        int
	Approved            int
	Rejected            int
	Pending             int
	ApprovalRate        float64
	AverageQualityScore float64
}

// ReviewerStats summarizes a user's reviewing throughput. Present only for
// users holding the reviewer role.
type ReviewerStats struct {
	TotalReviewed        int
	InReview             int
	AverageReviewSeconds int
	ReviewsPerDay        float64
}

// UserPerformance is the full per-user report.
type UserPerformance struct {
	User            *domain.User
	VideoStats      VideoStats
	AnnotationStats AnnotationStats

	// Daily holds one element per calendar day from day(WindowStart)
	// through day(WindowEnd) inclusive, oldest first, so activity on the
	// report day is in the last bucket. Days with no activity are present
	// with zero counts.
	Daily []domain.DayAnnotationCount

	// Annotator and Reviewer are nil unless the user holds that role.
	Annotator *AnnotatorStats
	Reviewer  *ReviewerStats

	WindowStart time.Time
	WindowEnd   time.Time
	WindowDays  int
}

// UserPerformance builds the performance report for one user.
func (s *Service) UserPerformance(ctx context.Context, input UserPerformanceInput) (*UserPerformance, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	days := input.WindowDays
	if days == 0 {
		days = s.cfg.DefaultWindowDays
	}
	if s.cfg.MaxWindowDays > 0 && days > s.cfg.MaxWindowDays {
		days = s.cfg.MaxWindowDays
	}

	end := s.now().UTC()
	start := end.AddDate(0, 0, -days)

	assigned, completed, err := s.videos.UserCounts(ctx, input.UserID, input.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("video counts: %w", err)
	}

	counts, err := s.annotations.CountsByUserSince(ctx, input.UserID, input.ProjectID, start)
	if err != nil {
		return nil, fmt.Errorf("annotation counts: %w", err)
	}

	sparse, err := s.annotations.DailyCountsByUser(ctx, input.UserID, input.ProjectID, start, end)
	if err != nil {
		return nil, fmt.Errorf("daily annotation counts: %w", err)
	}

	report := &UserPerformance{
		User: user,
		VideoStats: VideoStats{
			TotalAssigned:  assigned,
			Completed:      completed,
			InProgress:     assigned - completed,
			CompletionRate: percentage(completed, assigned),
		},
		AnnotationStats: AnnotationStats{
			Temporal:     counts.Temporal,
			BBox:         counts.BBox,
			Total:        counts.Total(),
			DailyAverage: float64(counts.Total()) / float64(days),
		},
		Daily:       densifyDaily(sparse, start, end),
		WindowStart: start,
		WindowEnd:   end,
		WindowDays:  days,
	}

	switch user.Role {
	case domain.UserRoleAnnotator:
		report.Annotator, err = s.annotatorStats(ctx, input.UserID, input.ProjectID)
	case domain.UserRoleReviewer:
		report.Reviewer, err = s.reviewerStats(ctx, input.UserID, input.ProjectID, days)
	}
	if err != nil {
		return nil, err
	}

	return report, nil
}

func (s *Service) annotatorStats(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID) (*AnnotatorStats, error) {
	stats, err := s.entries.Statistics(ctx, reviewrepo.Filter{
		ProjectID:   projectID,
		AnnotatorID: &userID,
	})
	if err != nil {
		return nil, fmt.Errorf("annotator review statistics: %w", err)
	}

	approved := stats.StatusCounts[domain.ReviewStatusApproved]
	return &AnnotatorStats{
		TotalReviews:        stats.TotalReviews,
		Approved:            approved,
		Rejected:            stats.StatusCounts[domain.ReviewStatusRejected],
		Pending:             stats.StatusCounts[domain.ReviewStatusPending],
		ApprovalRate:        percentage(approved, stats.TotalReviews),
		AverageQualityScore: stats.AverageQualityScore,
	}, nil
}

func (s *Service) reviewerStats(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID, days int) (*ReviewerStats, error) {
	stats, err := s.entries.Statistics(ctx, reviewrepo.Filter{
		ProjectID:  projectID,
		ReviewerID: &userID,
	})
	if err != nil {
		return nil, fmt.Errorf("reviewer review statistics: %w", err)
	}

	return &ReviewerStats{
		TotalReviewed:        stats.CompletedReviews,
		InReview:             stats.StatusCounts[domain.ReviewStatusInReview],
		AverageReviewSeconds: stats.AverageReviewSeconds,
		ReviewsPerDay:        float64(stats.CompletedReviews) / float64(days),
	}, nil
}

// densifyDaily expands a sparse day/count series into one element per
// calendar day from day(start) through day(end) inclusive, oldest first.
// Covering day(end) keeps the series in sync with the window totals, which
// count activity up to end. Dates are compared at UTC day granularity.
func densifyDaily(sparse []domain.DayAnnotationCount, start, end time.Time) []domain.DayAnnotationCount {
	byDay := make(map[time.Time]domain.DayAnnotationCount, len(sparse))
	for _, d := range sparse {
		byDay[truncateDay(d.Date)] = d
	}

	last := truncateDay(end)
	var dense []domain.DayAnnotationCount
	for day := truncateDay(start); !day.After(last); day = day.AddDate(0, 0, 1) {
		if d, ok := byDay[day]; ok {
			d.Date = day
			dense = append(dense, d)
			continue
		}
		dense = append(dense, domain.DayAnnotationCount{Date: day})
	}
	return dense
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
