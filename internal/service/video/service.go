// Package video implements annotator-facing work item operations: listing
// assigned work and marking it completed.
package video

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
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Video, error)
	ListAssigned(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID) ([]*domain.Video, error)
	MarkCompleted(ctx context.Context, videoID uuid.UUID, at time.Time) error
}

type projectRepo interface {
	BumpCompleted(ctx context.Context, projectID, userID uuid.UUID, delta int) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements video work item business logic.
type Service struct {
	videos   videoRepo
	projects projectRepo
	tx       txManager
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new video service.
func NewService(
	log *slog.Logger,
	videos videoRepo,
	projects projectRepo,
	tx txManager,
) *Service {
	return &Service{
		videos:   videos,
		projects: projects,
		tx:       tx,
		log:      log.With("service", "video"),
		now:      time.Now,
	}
}
