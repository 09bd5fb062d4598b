package project

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/annolab/annolab-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// projectRepoMock
// ---------------------------------------------------------------------------

var _ projectRepo = &projectRepoMock{}

type projectRepoMock struct {
	CreateFunc       func(ctx context.Context, p *domain.Project) (*domain.Project, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	ListForUserFunc  func(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]*domain.Project, error)
	ListAllFunc      func(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	UpdateStatusFunc func(ctx context.Context, id uuid.UUID, status domain.ProjectStatus, at time.Time) error
	AddMemberFunc    func(ctx context.Context, m *domain.ProjectMember) error
	ListMembersFunc  func(ctx context.Context, projectID uuid.UUID) ([]*domain.ProjectMember, error)

	mu    sync.Mutex
	calls struct {
		Create       []*domain.Project
		UpdateStatus []domain.ProjectStatus
		AddMember    []*domain.ProjectMember
	}
}

func (m *projectRepoMock) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	if m.CreateFunc == nil {
		panic("projectRepoMock.CreateFunc: method is nil but projectRepo.Create was just called")
	}
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, p)
	m.mu.Unlock()
	return m.CreateFunc(ctx, p)
}

func (m *projectRepoMock) CreateCalls() []*domain.Project {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *projectRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	if m.GetByIDFunc == nil {
		panic("projectRepoMock.GetByIDFunc: method is nil but projectRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *projectRepoMock) ListForUser(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]*domain.Project, error) {
	if m.ListForUserFunc == nil {
		panic("projectRepoMock.ListForUserFunc: method is nil but projectRepo.ListForUser was just called")
	}
	return m.ListForUserFunc(ctx, userID, includeArchived)
}

func (m *projectRepoMock) ListAll(ctx context.Context, includeArchived bool) ([]*domain.Project, error) {
	if m.ListAllFunc == nil {
		panic("projectRepoMock.ListAllFunc: method is nil but projectRepo.ListAll was just called")
	}
	return m.ListAllFunc(ctx, includeArchived)
}

func (m *projectRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ProjectStatus, at time.Time) error {
	if m.UpdateStatusFunc == nil {
		panic("projectRepoMock.UpdateStatusFunc: method is nil but projectRepo.UpdateStatus was just called")
	}
	m.mu.Lock()
	m.calls.UpdateStatus = append(m.calls.UpdateStatus, status)
	m.mu.Unlock()
	return m.UpdateStatusFunc(ctx, id, status, at)
}

func (m *projectRepoMock) UpdateStatusCalls() []domain.ProjectStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.UpdateStatus
}

func (m *projectRepoMock) AddMember(ctx context.Context, mem *domain.ProjectMember) error {
	if m.AddMemberFunc == nil {
		panic("projectRepoMock.AddMemberFunc: method is nil but projectRepo.AddMember was just called")
	}
	m.mu.Lock()
	m.calls.AddMember = append(m.calls.AddMember, mem)
	m.mu.Unlock()
	return m.AddMemberFunc(ctx, mem)
}

func (m *projectRepoMock) AddMemberCalls() []*domain.ProjectMember {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.AddMember
}

func (m *projectRepoMock) ListMembers(ctx context.Context, projectID uuid.UUID) ([]*domain.ProjectMember, error) {
	if m.ListMembersFunc == nil {
		panic("projectRepoMock.ListMembersFunc: method is nil but projectRepo.ListMembers was just called")
	}
	return m.ListMembersFunc(ctx, projectID)
}

// ---------------------------------------------------------------------------
// userRepoMock
// ---------------------------------------------------------------------------

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

// ---------------------------------------------------------------------------
// videoRepoMock
// ---------------------------------------------------------------------------

var _ videoRepo = &videoRepoMock{}

type videoRepoMock struct {
	ProjectCountsFunc func(ctx context.Context, projectID uuid.UUID) (total, assigned, completed int, err error)
}

func (m *videoRepoMock) ProjectCounts(ctx context.Context, projectID uuid.UUID) (int, int, int, error) {
	if m.ProjectCountsFunc == nil {
		panic("videoRepoMock.ProjectCountsFunc: method is nil but videoRepo.ProjectCounts was just called")
	}
	return m.ProjectCountsFunc(ctx, projectID)
}

// ---------------------------------------------------------------------------
// txManagerMock
// ---------------------------------------------------------------------------

var _ txManager = &txManagerMock{}

type txManagerMock struct{}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
