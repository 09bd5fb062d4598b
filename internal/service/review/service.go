// Package review implements the review queue workflow: submission, reviewer
// claim, completion with feedback scoring, and queue/statistics reads.
package review

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

type entryRepo interface {
	Create(ctx context.Context, e *domain.ReviewEntry) (*domain.ReviewEntry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ReviewEntry, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.ReviewEntry, error)
	GetActive(ctx context.Context, videoID, annotatorID uuid.UUID) (*domain.ReviewEntry, error)
	Start(ctx context.Context, id, reviewerID uuid.UUID, at time.Time) (*domain.ReviewEntry, error)
	Complete(ctx context.Context, id uuid.UUID, p reviewrepo.CompleteParams) (*domain.ReviewEntry, error)
	SetReviewer(ctx context.Context, id, reviewerID uuid.UUID) error
	List(ctx context.Context, f reviewrepo.Filter) ([]*domain.ReviewEntry, error)
	Loads(ctx context.Context, reviewerIDs []uuid.UUID) (map[uuid.UUID]int, error)
	AddFeedback(ctx context.Context, items []*domain.ReviewFeedback) error
	ListFeedback(ctx context.Context, reviewID uuid.UUID) ([]*domain.ReviewFeedback, error)
	Statistics(ctx context.Context, f reviewrepo.Filter) (domain.ReviewStatistics, error)
}

type videoRepo interface {
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Video, error)
}

type annotationRepo interface {
	CountsByVideo(ctx context.Context, videoID uuid.UUID) (domain.AnnotationCounts, error)
}

type userRepo interface {
	ListActiveByRole(ctx context.Context, role domain.UserRole) ([]*domain.User, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// recorder counts workflow events for the metrics endpoint.
type recorder interface {
	ReviewSubmitted()
	AutoAssignMiss()
	ReviewCompleted(outcome domain.ReviewStatus)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds the workflow tunables.
type Config struct {
	DefaultPriority  int
	MaxFeedbackItems int
	MaxQueuePageSize int
}

// Service implements the review workflow business logic.
type Service struct {
	entries     entryRepo
	videos      videoRepo
	annotations annotationRepo
	users       userRepo
	tx          txManager
	metrics     recorder
	cfg         Config
	log         *slog.Logger
	now         func() time.Time
}

// NewService creates a new review service.
func NewService(
	log *slog.Logger,
	entries entryRepo,
	videos videoRepo,
	annotations annotationRepo,
	users userRepo,
	tx txManager,
	metrics recorder,
	cfg Config,
) *Service {
	return &Service{
		entries:     entries,
		videos:      videos,
		annotations: annotations,
		users:       users,
		tx:          tx,
		metrics:     metrics,
		cfg:         cfg,
		log:         log.With("service", "review"),
		now:         time.Now,
	}
}
