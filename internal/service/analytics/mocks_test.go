package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"

	reviewrepo "github.com/annolab/annolab-backend/internal/adapter/postgres/review"
	"github.com/annolab/annolab-backend/internal/domain"
)

// Read-only mocks: no call tracking needed, only canned responses.

// ---------------------------------------------------------------------------
// userRepoMock
// ---------------------------------------------------------------------------

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	CountsFunc  func(ctx context.Context) (domain.UserCounts, error)
}

func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *userRepoMock) Counts(ctx context.Context) (domain.UserCounts, error) {
	if m.CountsFunc == nil {
		panic("userRepoMock.CountsFunc: method is nil but userRepo.Counts was just called")
	}
	return m.CountsFunc(ctx)
}

// ---------------------------------------------------------------------------
// projectRepoMock
// ---------------------------------------------------------------------------

var _ projectRepo = &projectRepoMock{}

type projectRepoMock struct {
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	ListMembersFunc func(ctx context.Context, projectID uuid.UUID) ([]*domain.ProjectMember, error)
	CountsFunc      func(ctx context.Context) (total, active int, err error)
}

func (m *projectRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	if m.GetByIDFunc == nil {
		panic("projectRepoMock.GetByIDFunc: method is nil but projectRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *projectRepoMock) ListMembers(ctx context.Context, projectID uuid.UUID) ([]*domain.ProjectMember, error) {
	if m.ListMembersFunc == nil {
		panic("projectRepoMock.ListMembersFunc: method is nil but projectRepo.ListMembers was just called")
	}
	return m.ListMembersFunc(ctx, projectID)
}

func (m *projectRepoMock) Counts(ctx context.Context) (int, int, error) {
	if m.CountsFunc == nil {
		panic("projectRepoMock.CountsFunc: method is nil but projectRepo.Counts was just called")
	}
	return m.CountsFunc(ctx)
}

// ---------------------------------------------------------------------------
// videoRepoMock
// ---------------------------------------------------------------------------

var _ videoRepo = &videoRepoMock{}

type videoRepoMock struct {
	UserCountsFunc     func(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID) (assigned, completed int, err error)
	CountByProjectFunc func(ctx context.Context, projectID uuid.UUID) (int, error)
	SystemCountsFunc   func(ctx context.Context) (total, completed, unassigned int, err error)
}

func (m *videoRepoMock) UserCounts(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID) (int, int, error) {
	if m.UserCountsFunc == nil {
		panic("videoRepoMock.UserCountsFunc: method is nil but videoRepo.UserCounts was just called")
	}
	return m.UserCountsFunc(ctx, userID, projectID)
}

func (m *videoRepoMock) CountByProject(ctx context.Context, projectID uuid.UUID) (int, error) {
	if m.CountByProjectFunc == nil {
		panic("videoRepoMock.CountByProjectFunc: method is nil but videoRepo.CountByProject was just called")
	}
	return m.CountByProjectFunc(ctx, projectID)
}

func (m *videoRepoMock) SystemCounts(ctx context.Context) (int, int, int, error) {
	if m.SystemCountsFunc == nil {
		panic("videoRepoMock.SystemCountsFunc: method is nil but videoRepo.SystemCounts was just called")
	}
	return m.SystemCountsFunc(ctx)
}

// ---------------------------------------------------------------------------
// annotationRepoMock
// ---------------------------------------------------------------------------

var _ annotationRepo = &annotationRepoMock{}

type annotationRepoMock struct {
	CountsByUserSinceFunc     func(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID, since time.Time) (domain.AnnotationCounts, error)
	DailyCountsByUserFunc     func(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID, from, to time.Time) ([]domain.DayAnnotationCount, error)
	CountsByProjectFunc       func(ctx context.Context, projectID uuid.UUID) (domain.AnnotationCounts, error)
	CountsByProjectMemberFunc func(ctx context.Context, projectID, userID uuid.UUID) (domain.AnnotationCounts, error)
	SystemCountsFunc          func(ctx context.Context) (domain.AnnotationCounts, error)
}

func (m *annotationRepoMock) CountsByUserSince(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID, since time.Time) (domain.AnnotationCounts, error) {
	if m.CountsByUserSinceFunc == nil {
		panic("annotationRepoMock.CountsByUserSinceFunc: method is nil but annotationRepo.CountsByUserSince was just called")
	}
	return m.CountsByUserSinceFunc(ctx, userID, projectID, since)
}

func (m *annotationRepoMock) DailyCountsByUser(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID, from, to time.Time) ([]domain.DayAnnotationCount, error) {
	if m.DailyCountsByUserFunc == nil {
		panic("annotationRepoMock.DailyCountsByUserFunc: method is nil but annotationRepo.DailyCountsByUser was just called")
	}
	return m.DailyCountsByUserFunc(ctx, userID, projectID, from, to)
}

func (m *annotationRepoMock) CountsByProject(ctx context.Context, projectID uuid.UUID) (domain.AnnotationCounts, error) {
	if m.CountsByProjectFunc == nil {
		panic("annotationRepoMock.CountsByProjectFunc: method is nil but annotationRepo.CountsByProject was just called")
	}
	return m.CountsByProjectFunc(ctx, projectID)
}

func (m *annotationRepoMock) CountsByProjectMember(ctx context.Context, projectID, userID uuid.UUID) (domain.AnnotationCounts, error) {
	if m.CountsByProjectMemberFunc == nil {
		panic("annotationRepoMock.CountsByProjectMemberFunc: method is nil but annotationRepo.CountsByProjectMember was just called")
	}
	return m.CountsByProjectMemberFunc(ctx, projectID, userID)
}

func (m *annotationRepoMock) SystemCounts(ctx context.Context) (domain.AnnotationCounts, error) {
	if m.SystemCountsFunc == nil {
		panic("annotationRepoMock.SystemCountsFunc: method is nil but annotationRepo.SystemCounts was just called")
	}
	return m.SystemCountsFunc(ctx)
}

// ---------------------------------------------------------------------------
// entryRepoMock
// ---------------------------------------------------------------------------

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	StatisticsFunc          func(ctx context.Context, f reviewrepo.Filter) (domain.ReviewStatistics, error)
	QualityDistributionFunc func(ctx context.Context, projectID uuid.UUID) (map[int]int, error)
	CountsFunc              func(ctx context.Context) (total, pending int, err error)
}

func (m *entryRepoMock) Statistics(ctx context.Context, f reviewrepo.Filter) (domain.ReviewStatistics, error) {
	if m.StatisticsFunc == nil {
		panic("entryRepoMock.StatisticsFunc: method is nil but entryRepo.Statistics was just called")
	}
	return m.StatisticsFunc(ctx, f)
}

func (m *entryRepoMock) QualityDistribution(ctx context.Context, projectID uuid.UUID) (map[int]int, error) {
	if m.QualityDistributionFunc == nil {
		panic("entryRepoMock.QualityDistributionFunc: method is nil but entryRepo.QualityDistribution was just called")
	}
	return m.QualityDistributionFunc(ctx, projectID)
}

func (m *entryRepoMock) Counts(ctx context.Context) (int, int, error) {
	if m.CountsFunc == nil {
		panic("entryRepoMock.CountsFunc: method is nil but entryRepo.Counts was just called")
	}
	return m.CountsFunc(ctx)
}
