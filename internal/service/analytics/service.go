// Package analytics builds read-only performance and progress reports for
// users, projects, and the system as a whole. Reports are recomputed from
// the stores on every call; nothing here mutates state.
package analytics

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	reviewrepo "github.com/annolab/annolab-backend/internal/adapter/postgres/review"
	"github.com/annolab/annolab-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Counts(ctx context.Context) (domain.UserCounts, error)
}

type projectRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	ListMembers(ctx context.Context, projectID uuid.UUID) ([]*domain.ProjectMember, error)
	Counts(ctx context.Context) (total, active int, err error)
}

type videoRepo interface {
	UserCounts(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID) (assigned, completed int, err error)
	CountByProject(ctx context.Context, projectID uuid.UUID) (int, error)
	SystemCounts(ctx context.Context) (total, completed, unassigned int, err error)
}

type annotationRepo interface {
	CountsByUserSince(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID, since time.Time) (domain.AnnotationCounts, error)
	DailyCountsByUser(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID, from, to time.Time) ([]domain.DayAnnotationCount, error)
	CountsByProject(ctx context.Context, projectID uuid.UUID) (domain.AnnotationCounts, error)
	CountsByProjectMember(ctx context.Context, projectID, userID uuid.UUID) (domain.AnnotationCounts, error)
	SystemCounts(ctx context.Context) (domain.AnnotationCounts, error)
}

type entryRepo interface {
	Statistics(ctx context.Context, f reviewrepo.Filter) (domain.ReviewStatistics, error)
	QualityDistribution(ctx context.Context, projectID uuid.UUID) (map[int]int, error)
	Counts(ctx context.Context) (total, pending int, err error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds the reporting tunables.
type Config struct {
	// DefaultWindowDays is used when a performance request does not name a
	// window. MaxWindowDays caps it.
	DefaultWindowDays int
	MaxWindowDays     int
}

// Service assembles analytics reports from the underlying stores.
type Service struct {
	users       userRepo
	projects    projectRepo
	videos      videoRepo
	annotations annotationRepo
	entries     entryRepo
	cfg         Config
	log         *slog.Logger
	now         func() time.Time
}

// NewService creates a new analytics service.
func NewService(
	log *slog.Logger,
	users userRepo,
	projects projectRepo,
	videos videoRepo,
	annotations annotationRepo,
	entries entryRepo,
	cfg Config,
) *Service {
	return &Service{
		users:       users,
		projects:    projects,
		videos:      videos,
		annotations: annotations,
		entries:     entries,
		cfg:         cfg,
		log:         log.With("service", "analytics"),
		now:         time.Now,
	}
}

// percentage returns part/total as a percentage, 0 when total is zero.
func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
