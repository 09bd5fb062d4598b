// Package distribution implements the work-distribution engine: round-robin
// assignment of videos to project members, project attachment, and
// reconciliation of the cached membership counters.
package distribution

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/annolab/annolab-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type videoRepo interface {
	ListUnassignedForUpdate(ctx context.Context, projectID uuid.UUID) ([]*domain.Video, error)
	ListByIDsForUpdate(ctx context.Context, ids []uuid.UUID) ([]*domain.Video, error)
	Assign(ctx context.Context, videoID, userID uuid.UUID) error
	AttachToProject(ctx context.Context, videoID, projectID uuid.UUID) (bool, error)
	CountByProject(ctx context.Context, projectID uuid.UUID) (int, error)
	MemberCounts(ctx context.Context, projectID uuid.UUID) (map[uuid.UUID]domain.MemberVideoCounts, error)
}

type projectRepo interface {
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	ListMembers(ctx context.Context, projectID uuid.UUID) ([]*domain.ProjectMember, error)
	BumpAssigned(ctx context.Context, projectID, userID uuid.UUID, delta int) error
	SetCounters(ctx context.Context, projectID, userID uuid.UUID, assigned, completed int) error
	SetTotalVideos(ctx context.Context, id uuid.UUID, total int, at time.Time) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type recorder interface {
	DistributionRun(videos int)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the distribution engine.
type Service struct {
	videos   videoRepo
	projects projectRepo
	tx       txManager
	metrics  recorder
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new distribution service.
func NewService(
	log *slog.Logger,
	videos videoRepo,
	projects projectRepo,
	tx txManager,
	metrics recorder,
) *Service {
	return &Service{
		videos:   videos,
		projects: projects,
		tx:       tx,
		metrics:  metrics,
		log:      log.With("service", "distribution"),
		now:      time.Now,
	}
}

// roundRobin assigns videos[i] to members[i mod len(members)] and bumps the
// cached membership counter per assignment. Returns the per-member assignment
// counts. Runs inside the caller's transaction; the video rows are already
// locked.
func (s *Service) roundRobin(ctx context.Context, projectID uuid.UUID, videos []*domain.Video, memberIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	assignments := make(map[uuid.UUID]int, len(memberIDs))
	for _, id := range memberIDs {
		assignments[id] = 0
	}

	for i, v := range videos {
		memberID := memberIDs[i%len(memberIDs)]
		if err := s.videos.Assign(ctx, v.ID, memberID); err != nil {
			return nil, err
		}
		if err := s.projects.BumpAssigned(ctx, projectID, memberID, 1); err != nil {
			return nil, err
		}
		assignments[memberID]++
	}

	return assignments, nil
}
