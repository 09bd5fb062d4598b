package video

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/annolab/annolab-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// videoRepoMock
// ---------------------------------------------------------------------------

var _ videoRepo = &videoRepoMock{}

type videoRepoMock struct {
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Video, error)
	ListAssignedFunc     func(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID) ([]*domain.Video, error)
	MarkCompletedFunc    func(ctx context.Context, videoID uuid.UUID, at time.Time) error

	mu    sync.Mutex
	calls struct {
		MarkCompleted []uuid.UUID
	}
}

func (m *videoRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	if m.GetByIDForUpdateFunc == nil {
		panic("videoRepoMock.GetByIDForUpdateFunc: method is nil but videoRepo.GetByIDForUpdate was just called")
	}
	return m.GetByIDForUpdateFunc(ctx, id)
}

func (m *videoRepoMock) ListAssigned(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID) ([]*domain.Video, error) {
	if m.ListAssignedFunc == nil {
		panic("videoRepoMock.ListAssignedFunc: method is nil but videoRepo.ListAssigned was just called")
	}
	return m.ListAssignedFunc(ctx, userID, projectID)
}

func (m *videoRepoMock) MarkCompleted(ctx context.Context, videoID uuid.UUID, at time.Time) error {
	if m.MarkCompletedFunc == nil {
		panic("videoRepoMock.MarkCompletedFunc: method is nil but videoRepo.MarkCompleted was just called")
	}
	m.mu.Lock()
	m.calls.MarkCompleted = append(m.calls.MarkCompleted, videoID)
	m.mu.Unlock()
	return m.MarkCompletedFunc(ctx, videoID, at)
}

func (m *videoRepoMock) MarkCompletedCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.MarkCompleted
}

// ---------------------------------------------------------------------------
// projectRepoMock
// ---------------------------------------------------------------------------

var _ projectRepo = &projectRepoMock{}

type projectRepoMock struct {
	BumpCompletedFunc func(ctx context.Context, projectID, userID uuid.UUID, delta int) error

	mu    sync.Mutex
	calls struct {
		BumpCompleted []uuid.UUID
	}
}

func (m *projectRepoMock) BumpCompleted(ctx context.Context, projectID, userID uuid.UUID, delta int) error {
	if m.BumpCompletedFunc == nil {
		panic("projectRepoMock.BumpCompletedFunc: method is nil but projectRepo.BumpCompleted was just called")
	}
	m.mu.Lock()
	m.calls.BumpCompleted = append(m.calls.BumpCompleted, projectID)
	m.mu.Unlock()
	return m.BumpCompletedFunc(ctx, projectID, userID, delta)
}

func (m *projectRepoMock) BumpCompletedCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.BumpCompleted
}

// ---------------------------------------------------------------------------
// txManagerMock
// ---------------------------------------------------------------------------

var _ txManager = &txManagerMock{}

type txManagerMock struct{}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
