package analytics

import (
	"context"
	"fmt"

	"github.com/annolab/annolab-backend/internal/domain"
)

// SystemVideoStats is the system-wide video breakdown.
type SystemVideoStats struct {
	Total      int
	Completed  int
	Unassigned int
}

// SystemReviewStats is the system-wide review queue breakdown.
type SystemReviewStats struct {
	Total   int
	Pending int
}

// HealthMetrics holds the derived ratios operators watch. Coverage and rates
// are percentages; Backlog is the absolute pending review count.
type HealthMetrics struct {
	AssignmentCoverage float64
	CompletionRate     float64
	ReviewBacklog      int
	ActiveUserRate     float64
}

// SystemOverview is the system-wide report.
type SystemOverview struct {
	Users          domain.UserCounts
	TotalProjects  int
	ActiveProjects int
	Videos         SystemVideoStats
	Annotations    domain.AnnotationCounts
	Reviews        SystemReviewStats
	Health         HealthMetrics
}

// SystemOverview builds the system-wide report.
func (s *Service) SystemOverview(ctx context.Context) (*SystemOverview, error) {
	users, err := s.users.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("user counts: %w", err)
	}

	totalProjects, activeProjects, err := s.projects.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("project counts: %w", err)
	}

	totalVideos, completedVideos, unassignedVideos, err := s.videos.SystemCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("video counts: %w", err)
	}

	annotations, err := s.annotations.SystemCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("annotation counts: %w", err)
	}

	totalReviews, pendingReviews, err := s.entries.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("review counts: %w", err)
	}

	// An empty system counts as fully covered, not uncovered.
	coverage := 100.0
	if totalVideos > 0 {
		coverage = percentage(totalVideos-unassignedVideos, totalVideos)
	}

	return &SystemOverview{
		Users:          users,
		TotalProjects:  totalProjects,
		ActiveProjects: activeProjects,
		Videos: SystemVideoStats{
			Total:      totalVideos,
			Completed:  completedVideos,
			Unassigned: unassignedVideos,
		},
		Annotations: annotations,
		Reviews: SystemReviewStats{
			Total:   totalReviews,
			Pending: pendingReviews,
		},
		Health: HealthMetrics{
			AssignmentCoverage: coverage,
			CompletionRate:     percentage(completedVideos, totalVideos),
			ReviewBacklog:      pendingReviews,
			ActiveUserRate:     percentage(users.Active, users.Total),
		},
	}, nil
}
