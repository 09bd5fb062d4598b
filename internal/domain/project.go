package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project groups videos and members under one annotation effort.
type Project struct {
	ID           uuid.UUID
	Name         string
	Description  *string
	Status       ProjectStatus
	CreatedBy    uuid.UUID
	Deadline     *time.Time
	TotalVideos  int
	CreatedAt    time.Time
	LastActivity time.Time
}

// ProjectMember links a user to a project with a role and running work
// counters. The counters are a write-through cache of Video state; they are
// not authoritative and can be recomputed from the video store at any time.
type ProjectMember struct {
	ProjectID       uuid.UUID
	UserID          uuid.UUID
	Role            ProjectRole
	VideosAssigned  int
	VideosCompleted int
	JoinedAt        time.Time
}

// MemberVideoCounts is the authoritative per-annotator tally recomputed from
// the video store, used to reconcile the cached membership counters.
type MemberVideoCounts struct {
	Assigned  int
	Completed int
}

// CompletionRate returns completed/assigned as a percentage, 0 when nothing
// is assigned.
func (m *ProjectMember) CompletionRate() float64 {
	if m.VideosAssigned == 0 {
		return 0
	}
	return float64(m.VideosCompleted) / float64(m.VideosAssigned) * 100
}
