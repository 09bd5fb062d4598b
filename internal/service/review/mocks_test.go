package review

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	reviewrepo "github.com/annolab/annolab-backend/internal/adapter/postgres/review"
	"github.com/annolab/annolab-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// entryRepoMock
// ---------------------------------------------------------------------------

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	CreateFunc           func(ctx context.Context, e *domain.ReviewEntry) (*domain.ReviewEntry, error)
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.ReviewEntry, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.ReviewEntry, error)
	GetActiveFunc        func(ctx context.Context, videoID, annotatorID uuid.UUID) (*domain.ReviewEntry, error)
	StartFunc            func(ctx context.Context, id, reviewerID uuid.UUID, at time.Time) (*domain.ReviewEntry, error)
	CompleteFunc         func(ctx context.Context, id uuid.UUID, p reviewrepo.CompleteParams) (*domain.ReviewEntry, error)
	SetReviewerFunc      func(ctx context.Context, id, reviewerID uuid.UUID) error
	ListFunc             func(ctx context.Context, f reviewrepo.Filter) ([]*domain.ReviewEntry, error)
	LoadsFunc            func(ctx context.Context, reviewerIDs []uuid.UUID) (map[uuid.UUID]int, error)
	AddFeedbackFunc      func(ctx context.Context, items []*domain.ReviewFeedback) error
	ListFeedbackFunc     func(ctx context.Context, reviewID uuid.UUID) ([]*domain.ReviewFeedback, error)
	StatisticsFunc       func(ctx context.Context, f reviewrepo.Filter) (domain.ReviewStatistics, error)

	mu    sync.Mutex
	calls struct {
		Create      []*domain.ReviewEntry
		Start       []uuid.UUID
		Complete    []reviewrepo.CompleteParams
		SetReviewer []uuid.UUID
		AddFeedback [][]*domain.ReviewFeedback
	}
}

func (m *entryRepoMock) Create(ctx context.Context, e *domain.ReviewEntry) (*domain.ReviewEntry, error) {
	if m.CreateFunc == nil {
		panic("entryRepoMock.CreateFunc: method is nil but entryRepo.Create was just called")
	}
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, e)
	m.mu.Unlock()
	return m.CreateFunc(ctx, e)
}

func (m *entryRepoMock) CreateCalls() []*domain.ReviewEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *entryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.ReviewEntry, error) {
	if m.GetByIDFunc == nil {
		panic("entryRepoMock.GetByIDFunc: method is nil but entryRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *entryRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.ReviewEntry, error) {
	if m.GetByIDForUpdateFunc == nil {
		panic("entryRepoMock.GetByIDForUpdateFunc: method is nil but entryRepo.GetByIDForUpdate was just called")
	}
	return m.GetByIDForUpdateFunc(ctx, id)
}

func (m *entryRepoMock) GetActive(ctx context.Context, videoID, annotatorID uuid.UUID) (*domain.ReviewEntry, error) {
	if m.GetActiveFunc == nil {
		panic("entryRepoMock.GetActiveFunc: method is nil but entryRepo.GetActive was just called")
	}
	return m.GetActiveFunc(ctx, videoID, annotatorID)
}

func (m *entryRepoMock) Start(ctx context.Context, id, reviewerID uuid.UUID, at time.Time) (*domain.ReviewEntry, error) {
	if m.StartFunc == nil {
		panic("entryRepoMock.StartFunc: method is nil but entryRepo.Start was just called")
	}
	m.mu.Lock()
	m.calls.Start = append(m.calls.Start, id)
	m.mu.Unlock()
	return m.StartFunc(ctx, id, reviewerID, at)
}

func (m *entryRepoMock) StartCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Start
}

func (m *entryRepoMock) Complete(ctx context.Context, id uuid.UUID, p reviewrepo.CompleteParams) (*domain.ReviewEntry, error) {
	if m.CompleteFunc == nil {
		panic("entryRepoMock.CompleteFunc: method is nil but entryRepo.Complete was just called")
	}
	m.mu.Lock()
	m.calls.Complete = append(m.calls.Complete, p)
	m.mu.Unlock()
	return m.CompleteFunc(ctx, id, p)
}

func (m *entryRepoMock) CompleteCalls() []reviewrepo.CompleteParams {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Complete
}

func (m *entryRepoMock) SetReviewer(ctx context.Context, id, reviewerID uuid.UUID) error {
	if m.SetReviewerFunc == nil {
		panic("entryRepoMock.SetReviewerFunc: method is nil but entryRepo.SetReviewer was just called")
	}
	m.mu.Lock()
	m.calls.SetReviewer = append(m.calls.SetReviewer, reviewerID)
	m.mu.Unlock()
	return m.SetReviewerFunc(ctx, id, reviewerID)
}

func (m *entryRepoMock) SetReviewerCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.SetReviewer
}

func (m *entryRepoMock) List(ctx context.Context, f reviewrepo.Filter) ([]*domain.ReviewEntry, error) {
	if m.ListFunc == nil {
		panic("entryRepoMock.ListFunc: method is nil but entryRepo.List was just called")
	}
	return m.ListFunc(ctx, f)
}

func (m *entryRepoMock) Loads(ctx context.Context, reviewerIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	if m.LoadsFunc == nil {
		panic("entryRepoMock.LoadsFunc: method is nil but entryRepo.Loads was just called")
	}
	return m.LoadsFunc(ctx, reviewerIDs)
}

func (m *entryRepoMock) AddFeedback(ctx context.Context, items []*domain.ReviewFeedback) error {
	if m.AddFeedbackFunc == nil {
		panic("entryRepoMock.AddFeedbackFunc: method is nil but entryRepo.AddFeedback was just called")
	}
	m.mu.Lock()
	m.calls.AddFeedback = append(m.calls.AddFeedback, items)
	m.mu.Unlock()
	return m.AddFeedbackFunc(ctx, items)
}

func (m *entryRepoMock) AddFeedbackCalls() [][]*domain.ReviewFeedback {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.AddFeedback
}

func (m *entryRepoMock) ListFeedback(ctx context.Context, reviewID uuid.UUID) ([]*domain.ReviewFeedback, error) {
	if m.ListFeedbackFunc == nil {
		panic("entryRepoMock.ListFeedbackFunc: method is nil but entryRepo.ListFeedback was just called")
	}
	return m.ListFeedbackFunc(ctx, reviewID)
}

func (m *entryRepoMock) Statistics(ctx context.Context, f reviewrepo.Filter) (domain.ReviewStatistics, error) {
	if m.StatisticsFunc == nil {
		panic("entryRepoMock.StatisticsFunc: method is nil but entryRepo.Statistics was just called")
	}
	return m.StatisticsFunc(ctx, f)
}

// ---------------------------------------------------------------------------
// videoRepoMock
// ---------------------------------------------------------------------------

var _ videoRepo = &videoRepoMock{}

type videoRepoMock struct {
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Video, error)
}

func (m *videoRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	if m.GetByIDForUpdateFunc == nil {
		panic("videoRepoMock.GetByIDForUpdateFunc: method is nil but videoRepo.GetByIDForUpdate was just called")
	}
	return m.GetByIDForUpdateFunc(ctx, id)
}

// ---------------------------------------------------------------------------
// annotationRepoMock
// ---------------------------------------------------------------------------

var _ annotationRepo = &annotationRepoMock{}

type annotationRepoMock struct {
	CountsByVideoFunc func(ctx context.Context, videoID uuid.UUID) (domain.AnnotationCounts, error)
}

func (m *annotationRepoMock) CountsByVideo(ctx context.Context, videoID uuid.UUID) (domain.AnnotationCounts, error) {
	if m.CountsByVideoFunc == nil {
		panic("annotationRepoMock.CountsByVideoFunc: method is nil but annotationRepo.CountsByVideo was just called")
	}
	return m.CountsByVideoFunc(ctx, videoID)
}

// ---------------------------------------------------------------------------
// userRepoMock
// ---------------------------------------------------------------------------

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	ListActiveByRoleFunc func(ctx context.Context, role domain.UserRole) ([]*domain.User, error)
}

func (m *userRepoMock) ListActiveByRole(ctx context.Context, role domain.UserRole) ([]*domain.User, error) {
	if m.ListActiveByRoleFunc == nil {
		panic("userRepoMock.ListActiveByRoleFunc: method is nil but userRepo.ListActiveByRole was just called")
	}
	return m.ListActiveByRoleFunc(ctx, role)
}

// ---------------------------------------------------------------------------
// txManagerMock runs the callback directly, without a real transaction.
// ---------------------------------------------------------------------------

var _ txManager = &txManagerMock{}

type txManagerMock struct{}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// ---------------------------------------------------------------------------
// recorderMock
// ---------------------------------------------------------------------------

var _ recorder = &recorderMock{}

type recorderMock struct {
	mu              sync.Mutex
	submitted       int
	autoAssignMiss  int
	completedByKind map[domain.ReviewStatus]int
}

func (m *recorderMock) ReviewSubmitted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submitted++
}

func (m *recorderMock) AutoAssignMiss() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.autoAssignMiss++
}

func (m *recorderMock) ReviewCompleted(outcome domain.ReviewStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.completedByKind == nil {
		m.completedByKind = map[domain.ReviewStatus]int{}
	}
	m.completedByKind[outcome]++
}

func (m *recorderMock) Submitted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.submitted
}

func (m *recorderMock) Misses() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.autoAssignMiss
}

func (m *recorderMock) Completed(outcome domain.ReviewStatus) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.completedByKind[outcome]
}
