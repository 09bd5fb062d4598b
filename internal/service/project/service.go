// Package project manages project lifecycle and membership: creation,
// member administration, status transitions, and progress statistics.
package project

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

type projectRepo interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	ListForUser(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]*domain.Project, error)
	ListAll(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ProjectStatus, at time.Time) error
	AddMember(ctx context.Context, m *domain.ProjectMember) error
	ListMembers(ctx context.Context, projectID uuid.UUID) ([]*domain.ProjectMember, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type videoRepo interface {
	ProjectCounts(ctx context.Context, projectID uuid.UUID) (total, assigned, completed int, err error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements project management business logic.
type Service struct {
	projects projectRepo
	users    userRepo
	videos   videoRepo
	tx       txManager
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new project service.
func NewService(
	log *slog.Logger,
	projects projectRepo,
	users userRepo,
	videos videoRepo,
	tx txManager,
) *Service {
	return &Service{
		projects: projects,
		users:    users,
		videos:   videos,
		tx:       tx,
		log:      log.With("service", "project"),
		now:      time.Now,
	}
}
