package user

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/annolab/annolab-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc           func(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsernameFunc    func(ctx context.Context, username string) (*domain.User, error)
	ListActiveByRoleFunc func(ctx context.Context, role domain.UserRole) ([]*domain.User, error)
	SetActiveFunc        func(ctx context.Context, id uuid.UUID, active bool) error

	mu    sync.Mutex
	calls struct {
		Create    []*domain.User
		SetActive []uuid.UUID
	}
}

func (m *userRepoMock) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if m.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, u)
	m.mu.Unlock()
	return m.CreateFunc(ctx, u)
}

func (m *userRepoMock) CreateCalls() []*domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *userRepoMock) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFunc == nil {
		panic("userRepoMock.GetByUsernameFunc: method is nil but userRepo.GetByUsername was just called")
	}
	return m.GetByUsernameFunc(ctx, username)
}

func (m *userRepoMock) ListActiveByRole(ctx context.Context, role domain.UserRole) ([]*domain.User, error) {
	if m.ListActiveByRoleFunc == nil {
		panic("userRepoMock.ListActiveByRoleFunc: method is nil but userRepo.ListActiveByRole was just called")
	}
	return m.ListActiveByRoleFunc(ctx, role)
}

func (m *userRepoMock) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	if m.SetActiveFunc == nil {
		panic("userRepoMock.SetActiveFunc: method is nil but userRepo.SetActive was just called")
	}
	m.mu.Lock()
	m.calls.SetActive = append(m.calls.SetActive, id)
	m.mu.Unlock()
	return m.SetActiveFunc(ctx, id, active)
}

func (m *userRepoMock) SetActiveCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.SetActive
}
