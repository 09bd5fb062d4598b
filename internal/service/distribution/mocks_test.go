package distribution

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
	ListUnassignedForUpdateFunc func(ctx context.Context, projectID uuid.UUID) ([]*domain.Video, error)
	ListByIDsForUpdateFunc      func(ctx context.Context, ids []uuid.UUID) ([]*domain.Video, error)
	AssignFunc                  func(ctx context.Context, videoID, userID uuid.UUID) error
	AttachToProjectFunc         func(ctx context.Context, videoID, projectID uuid.UUID) (bool, error)
	CountByProjectFunc          func(ctx context.Context, projectID uuid.UUID) (int, error)
	MemberCountsFunc            func(ctx context.Context, projectID uuid.UUID) (map[uuid.UUID]domain.MemberVideoCounts, error)

	mu    sync.Mutex
	calls struct {
		Assign []struct {
			VideoID uuid.UUID
			UserID  uuid.UUID
		}
		AttachToProject []uuid.UUID
	}
}

func (m *videoRepoMock) ListUnassignedForUpdate(ctx context.Context, projectID uuid.UUID) ([]*domain.Video, error) {
	if m.ListUnassignedForUpdateFunc == nil {
		panic("videoRepoMock.ListUnassignedForUpdateFunc: method is nil but videoRepo.ListUnassignedForUpdate was just called")
	}
	return m.ListUnassignedForUpdateFunc(ctx, projectID)
}

func (m *videoRepoMock) ListByIDsForUpdate(ctx context.Context, ids []uuid.UUID) ([]*domain.Video, error) {
	if m.ListByIDsForUpdateFunc == nil {
		panic("videoRepoMock.ListByIDsForUpdateFunc: method is nil but videoRepo.ListByIDsForUpdate was just called")
	}
	return m.ListByIDsForUpdateFunc(ctx, ids)
}

func (m *videoRepoMock) Assign(ctx context.Context, videoID, userID uuid.UUID) error {
	if m.AssignFunc == nil {
		panic("videoRepoMock.AssignFunc: method is nil but videoRepo.Assign was just called")
	}
	m.mu.Lock()
	m.calls.Assign = append(m.calls.Assign, struct {
		VideoID uuid.UUID
		UserID  uuid.UUID
	}{videoID, userID})
	m.mu.Unlock()
	return m.AssignFunc(ctx, videoID, userID)
}

func (m *videoRepoMock) AssignCalls() []struct {
	VideoID uuid.UUID
	UserID  uuid.UUID
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Assign
}

func (m *videoRepoMock) AttachToProject(ctx context.Context, videoID, projectID uuid.UUID) (bool, error) {
	if m.AttachToProjectFunc == nil {
		panic("videoRepoMock.AttachToProjectFunc: method is nil but videoRepo.AttachToProject was just called")
	}
	m.mu.Lock()
	m.calls.AttachToProject = append(m.calls.AttachToProject, videoID)
	m.mu.Unlock()
	return m.AttachToProjectFunc(ctx, videoID, projectID)
}

func (m *videoRepoMock) CountByProject(ctx context.Context, projectID uuid.UUID) (int, error) {
	if m.CountByProjectFunc == nil {
		panic("videoRepoMock.CountByProjectFunc: method is nil but videoRepo.CountByProject was just called")
	}
	return m.CountByProjectFunc(ctx, projectID)
}

func (m *videoRepoMock) MemberCounts(ctx context.Context, projectID uuid.UUID) (map[uuid.UUID]domain.MemberVideoCounts, error) {
	if m.MemberCountsFunc == nil {
		panic("videoRepoMock.MemberCountsFunc: method is nil but videoRepo.MemberCounts was just called")
	}
	return m.MemberCountsFunc(ctx, projectID)
}

// ---------------------------------------------------------------------------
// projectRepoMock
// ---------------------------------------------------------------------------

var _ projectRepo = &projectRepoMock{}

type projectRepoMock struct {
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	ListMembersFunc      func(ctx context.Context, projectID uuid.UUID) ([]*domain.ProjectMember, error)
	BumpAssignedFunc     func(ctx context.Context, projectID, userID uuid.UUID, delta int) error
	SetCountersFunc      func(ctx context.Context, projectID, userID uuid.UUID, assigned, completed int) error
	SetTotalVideosFunc   func(ctx context.Context, id uuid.UUID, total int, at time.Time) error

	mu    sync.Mutex
	calls struct {
		BumpAssigned []uuid.UUID
		SetCounters  []struct {
			UserID    uuid.UUID
			Assigned  int
			Completed int
		}
		SetTotalVideos []int
	}
}

func (m *projectRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	if m.GetByIDForUpdateFunc == nil {
		panic("projectRepoMock.GetByIDForUpdateFunc: method is nil but projectRepo.GetByIDForUpdate was just called")
	}
	return m.GetByIDForUpdateFunc(ctx, id)
}

func (m *projectRepoMock) ListMembers(ctx context.Context, projectID uuid.UUID) ([]*domain.ProjectMember, error) {
	if m.ListMembersFunc == nil {
		panic("projectRepoMock.ListMembersFunc: method is nil but projectRepo.ListMembers was just called")
	}
	return m.ListMembersFunc(ctx, projectID)
}

func (m *projectRepoMock) BumpAssigned(ctx context.Context, projectID, userID uuid.UUID, delta int) error {
	if m.BumpAssignedFunc == nil {
		panic("projectRepoMock.BumpAssignedFunc: method is nil but projectRepo.BumpAssigned was just called")
	}
	m.mu.Lock()
	m.calls.BumpAssigned = append(m.calls.BumpAssigned, userID)
	m.mu.Unlock()
	return m.BumpAssignedFunc(ctx, projectID, userID, delta)
}

func (m *projectRepoMock) BumpAssignedCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.BumpAssigned
}

func (m *projectRepoMock) SetCounters(ctx context.Context, projectID, userID uuid.UUID, assigned, completed int) error {
	if m.SetCountersFunc == nil {
		panic("projectRepoMock.SetCountersFunc: method is nil but projectRepo.SetCounters was just called")
	}
	m.mu.Lock()
	m.calls.SetCounters = append(m.calls.SetCounters, struct {
		UserID    uuid.UUID
		Assigned  int
		Completed int
	}{userID, assigned, completed})
	m.mu.Unlock()
	return m.SetCountersFunc(ctx, projectID, userID, assigned, completed)
}

func (m *projectRepoMock) SetCountersCalls() []struct {
	UserID    uuid.UUID
	Assigned  int
	Completed int
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.SetCounters
}

func (m *projectRepoMock) SetTotalVideos(ctx context.Context, id uuid.UUID, total int, at time.Time) error {
	if m.SetTotalVideosFunc == nil {
		panic("projectRepoMock.SetTotalVideosFunc: method is nil but projectRepo.SetTotalVideos was just called")
	}
	m.mu.Lock()
	m.calls.SetTotalVideos = append(m.calls.SetTotalVideos, total)
	m.mu.Unlock()
	return m.SetTotalVideosFunc(ctx, id, total, at)
}

func (m *projectRepoMock) SetTotalVideosCalls() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.SetTotalVideos
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
	mu   sync.Mutex
	runs []int
}

func (m *recorderMock) DistributionRun(videos int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = append(m.runs, videos)
}

func (m *recorderMock) Runs() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runs
}
