package analytics

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	reviewrepo "github.com/annolab/annolab-backend/internal/adapter/postgres/review"
	"github.com/annolab/annolab-backend/internal/domain"
)

// ProjectVideoStats is the work-progress portion of a project report.
type ProjectVideoStats struct {
	Total          int
	Completed      int
	InProgress     int
	CompletionRate float64
}

// ProjectAnnotationStats totals annotations across the whole project.
type ProjectAnnotationStats struct {
	Temporal        int
	BBox            int
	Total           int
	AveragePerVideo float64
}

// QualityMetrics aggregates completed-review quality for a project.
// Distribution buckets integer scores 1..5; every bucket is present.
type QualityMetrics struct {
	AverageScore float64
	Distribution map[int]int
	TotalReviews int
}

// MemberStats is the per-member breakdown of a project report. The video
// counters come from the cached membership row, not a recount.
type MemberStats struct {
	UserID          uuid.UUID
	Role            domain.ProjectRole
	VideosAssigned  int
	VideosCompleted int
	Temporal        int
	BBox            int
	Total           int
	CompletionRate  float64
}

// ProjectAnalytics is the full per-project report.
type ProjectAnalytics struct {
	Project         *domain.Project
	VideoStats      ProjectVideoStats
	AnnotationStats ProjectAnnotationStats
	Quality         QualityMetrics
	Members         []MemberStats
}

// ProjectAnalytics builds the analytics report for one project.
func (s *Service) ProjectAnalytics(ctx context.Context, projectID uuid.UUID) (*ProjectAnalytics, error) {
	if projectID == uuid.Nil {
		return nil, domain.NewValidationError("project_id", "is required")
	}

	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}

	totalVideos, err := s.videos.CountByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("count videos: %w", err)
	}

	counts, err := s.annotations.CountsByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("annotation counts: %w", err)
	}

	stats, err := s.entries.Statistics(ctx, reviewrepo.Filter{ProjectID: &projectID})
	if err != nil {
		return nil, fmt.Errorf("review statistics: %w", err)
	}

	dist, err := s.entries.QualityDistribution(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("quality distribution: %w", err)
	}

	members, err := s.projects.ListMembers(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	memberStats := make([]MemberStats, 0, len(members))
	completedVideos := 0
	for _, m := range members {
		completedVideos += m.VideosCompleted

		mc, err := s.annotations.CountsByProjectMember(ctx, projectID, m.UserID)
		if err != nil {
			return nil, fmt.Errorf("member annotation counts: %w", err)
		}
		memberStats = append(memberStats, MemberStats{
			UserID:          m.UserID,
			Role:            m.Role,
			VideosAssigned:  m.VideosAssigned,
			VideosCompleted: m.VideosCompleted,
			Temporal:        mc.Temporal,
			BBox:            mc.BBox,
			Total:           mc.Total(),
			CompletionRate:  m.CompletionRate(),
		})
	}

	avgPerVideo := 0.0
	if totalVideos > 0 {
		avgPerVideo = float64(counts.Total()) / float64(totalVideos)
	}

	return &ProjectAnalytics{
		Project: project,
		VideoStats: ProjectVideoStats{
			Total:          totalVideos,
			Completed:      completedVideos,
			InProgress:     totalVideos - completedVideos,
			CompletionRate: percentage(completedVideos, totalVideos),
		},
		AnnotationStats: ProjectAnnotationStats{
			Temporal:        counts.Temporal,
			BBox:            counts.BBox,
			Total:           counts.Total(),
			AveragePerVideo: avgPerVideo,
		},
		Quality: QualityMetrics{
			AverageScore: stats.AverageQualityScore,
			Distribution: dist,
			TotalReviews: stats.CompletedReviews,
		},
		Members: memberStats,
	}, nil
}
