package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/annolab/annolab-backend/internal/domain"
)

// MemberProgress is one member's slice of a project statistics report. The
// counters come from the cached membership row.
type MemberProgress struct {
	UserID          uuid.UUID
	Role            domain.ProjectRole
	VideosAssigned  int
	VideosCompleted int
	CompletionRate  float64
}

// Statistics is a project progress snapshot.
type Statistics struct {
	Project            *domain.Project
	TotalVideos        int
	AssignedVideos     int
	CompletedVideos    int
	UnassignedVideos   int
	ProgressPercentage float64
	Members            []MemberProgress
}

// GetStatistics builds a progress snapshot for one project. Video counts are
// recounted from the video store, not read from the cached totals.
func (s *Service) GetStatistics(ctx context.Context, projectID uuid.UUID) (*Statistics, error) {
	if projectID == uuid.Nil {
		return nil, domain.NewValidationError("project_id", "is required")
	}

	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}

	total, assigned, completed, err := s.videos.ProjectCounts(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("count videos: %w", err)
	}

	members, err := s.projects.ListMembers(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	progress := make([]MemberProgress, 0, len(members))
	for _, m := range members {
		progress = append(progress, MemberProgress{
			UserID:          m.UserID,
			Role:            m.Role,
			VideosAssigned:  m.VideosAssigned,
			VideosCompleted: m.VideosCompleted,
			CompletionRate:  m.CompletionRate(),
		})
	}

	pct := 0.0
	if total > 0 {
		pct = float64(completed) / float64(total) * 100
	}

	return &Statistics{
		Project:            project,
		TotalVideos:        total,
		AssignedVideos:     assigned,
		CompletedVideos:    completed,
		UnassignedVideos:   total - assigned,
		ProgressPercentage: pct,
		Members:            progress,
	}, nil
}
