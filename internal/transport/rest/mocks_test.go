package rest

import (
	"context"

	"github.com/google/uuid"

	"github.com/annolab/annolab-backend/internal/domain"
	"github.com/annolab/annolab-backend/internal/service/analytics"
	"github.com/annolab/annolab-backend/internal/service/distribution"
	"github.com/annolab/annolab-backend/internal/service/project"
	"github.com/annolab/annolab-backend/internal/service/review"
	"github.com/annolab/annolab-backend/internal/service/user"
	"github.com/annolab/annolab-backend/internal/service/video"
)

type reviewServiceMock struct {
	SubmitFunc      func(ctx context.Context, input review.SubmitInput) (*domain.ReviewEntry, error)
	StartReviewFunc func(ctx context.Context, input review.StartReviewInput) (*domain.ReviewEntry, error)
	CompleteFunc    func(ctx context.Context, input review.CompleteInput) (*domain.ReviewEntry, error)
	QueueFunc       func(ctx context.Context, input review.QueueInput) ([]*domain.ReviewEntry, error)
	FeedbackFunc    func(ctx context.Context, entryID uuid.UUID) ([]*domain.ReviewFeedback, error)
	StatisticsFunc  func(ctx context.Context, input review.StatisticsInput) (domain.ReviewStatistics, error)
}

func (m *reviewServiceMock) Submit(ctx context.Context, input review.SubmitInput) (*domain.ReviewEntry, error) {
	if m.SubmitFunc == nil {
		panic("reviewServiceMock.SubmitFunc: method is nil but reviewService.Submit was just called")
	}
	return m.SubmitFunc(ctx, input)
}

func (m *reviewServiceMock) StartReview(ctx context.Context, input review.StartReviewInput) (*domain.ReviewEntry, error) {
	if m.StartReviewFunc == nil {
		panic("reviewServiceMock.StartReviewFunc: method is nil but reviewService.StartReview was just called")
	}
	return m.StartReviewFunc(ctx, input)
}

func (m *reviewServiceMock) Complete(ctx context.Context, input review.CompleteInput) (*domain.ReviewEntry, error) {
	if m.CompleteFunc == nil {
		panic("reviewServiceMock.CompleteFunc: method is nil but reviewService.Complete was just called")
	}
	return m.CompleteFunc(ctx, input)
}

func (m *reviewServiceMock) Queue(ctx context.Context, input review.QueueInput) ([]*domain.ReviewEntry, error) {
	if m.QueueFunc == nil {
		panic("reviewServiceMock.QueueFunc: method is nil but reviewService.Queue was just called")
	}
	return m.QueueFunc(ctx, input)
}

func (m *reviewServiceMock) Feedback(ctx context.Context, entryID uuid.UUID) ([]*domain.ReviewFeedback, error) {
	if m.FeedbackFunc == nil {
		panic("reviewServiceMock.FeedbackFunc: method is nil but reviewService.Feedback was just called")
	}
	return m.FeedbackFunc(ctx, entryID)
}

func (m *reviewServiceMock) Statistics(ctx context.Context, input review.StatisticsInput) (domain.ReviewStatistics, error) {
	if m.StatisticsFunc == nil {
		panic("reviewServiceMock.StatisticsFunc: method is nil but reviewService.Statistics was just called")
	}
	return m.StatisticsFunc(ctx, input)
}

type projectServiceMock struct {
	CreateFunc        func(ctx context.Context, input project.CreateInput) (*domain.Project, error)
	AddMemberFunc     func(ctx context.Context, input project.AddMemberInput) (*domain.ProjectMember, error)
	UpdateStatusFunc  func(ctx context.Context, input project.UpdateStatusInput) error
	ListForUserFunc   func(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]*domain.Project, error)
	GetStatisticsFunc func(ctx context.Context, projectID uuid.UUID) (*project.Statistics, error)
}

func (m *projectServiceMock) Create(ctx context.Context, input project.CreateInput) (*domain.Project, error) {
	if m.CreateFunc == nil {
		panic("projectServiceMock.CreateFunc: method is nil but projectService.Create was just called")
	}
	return m.CreateFunc(ctx, input)
}

func (m *projectServiceMock) AddMember(ctx context.Context, input project.AddMemberInput) (*domain.ProjectMember, error) {
	if m.AddMemberFunc == nil {
		panic("projectServiceMock.AddMemberFunc: method is nil but projectService.AddMember was just called")
	}
	return m.AddMemberFunc(ctx, input)
}

func (m *projectServiceMock) UpdateStatus(ctx context.Context, input project.UpdateStatusInput) error {
	if m.UpdateStatusFunc == nil {
		panic("projectServiceMock.UpdateStatusFunc: method is nil but projectService.UpdateStatus was just called")
	}
	return m.UpdateStatusFunc(ctx, input)
}

func (m *projectServiceMock) ListForUser(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]*domain.Project, error) {
	if m.ListForUserFunc == nil {
		panic("projectServiceMock.ListForUserFunc: method is nil but projectService.ListForUser was just called")
	}
	return m.ListForUserFunc(ctx, userID, includeArchived)
}

func (m *projectServiceMock) GetStatistics(ctx context.Context, projectID uuid.UUID) (*project.Statistics, error) {
	if m.GetStatisticsFunc == nil {
		panic("projectServiceMock.GetStatisticsFunc: method is nil but projectService.GetStatistics was just called")
	}
	return m.GetStatisticsFunc(ctx, projectID)
}

type distributionServiceMock struct {
	AssignEquallyFunc     func(ctx context.Context, input distribution.AssignEquallyInput) (map[uuid.UUID]int, error)
	AssignSpecificFunc    func(ctx context.Context, input distribution.AssignSpecificInput) (map[uuid.UUID]int, error)
	AttachVideosFunc      func(ctx context.Context, input distribution.AttachVideosInput) (int, error)
	ReconcileCountersFunc func(ctx context.Context, projectID uuid.UUID) error
}

func (m *distributionServiceMock) AssignEqually(ctx context.Context, input distribution.AssignEquallyInput) (map[uuid.UUID]int, error) {
	if m.AssignEquallyFunc == nil {
		panic("distributionServiceMock.AssignEquallyFunc: method is nil but distributionService.AssignEqually was just called")
	}
	return m.AssignEquallyFunc(ctx, input)
}

func (m *distributionServiceMock) AssignSpecific(ctx context.Context, input distribution.AssignSpecificInput) (map[uuid.UUID]int, error) {
	if m.AssignSpecificFunc == nil {
		panic("distributionServiceMock.AssignSpecificFunc: method is nil but distributionService.AssignSpecific was just called")
	}
	return m.AssignSpecificFunc(ctx, input)
}

func (m *distributionServiceMock) AttachVideos(ctx context.Context, input distribution.AttachVideosInput) (int, error) {
	if m.AttachVideosFunc == nil {
		panic("distributionServiceMock.AttachVideosFunc: method is nil but distributionService.AttachVideos was just called")
	}
	return m.AttachVideosFunc(ctx, input)
}

func (m *distributionServiceMock) ReconcileCounters(ctx context.Context, projectID uuid.UUID) error {
	if m.ReconcileCountersFunc == nil {
		panic("distributionServiceMock.ReconcileCountersFunc: method is nil but distributionService.ReconcileCounters was just called")
	}
	return m.ReconcileCountersFunc(ctx, projectID)
}

type videoServiceMock struct {
	MarkCompletedFunc func(ctx context.Context, input video.MarkCompletedInput) (*domain.Video, error)
	ListAssignedFunc  func(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID) ([]*domain.Video, error)
}

func (m *videoServiceMock) MarkCompleted(ctx context.Context, input video.MarkCompletedInput) (*domain.Video, error) {
	if m.MarkCompletedFunc == nil {
		panic("videoServiceMock.MarkCompletedFunc: method is nil but videoService.MarkCompleted was just called")
	}
	return m.MarkCompletedFunc(ctx, input)
}

func (m *videoServiceMock) ListAssigned(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID) ([]*domain.Video, error) {
	if m.ListAssignedFunc == nil {
		panic("videoServiceMock.ListAssignedFunc: method is nil but videoService.ListAssigned was just called")
	}
	return m.ListAssignedFunc(ctx, userID, projectID)
}

type analyticsServiceMock struct {
	UserPerformanceFunc  func(ctx context.Context, input analytics.UserPerformanceInput) (*analytics.UserPerformance, error)
	ProjectAnalyticsFunc func(ctx context.Context, projectID uuid.UUID) (*analytics.ProjectAnalytics, error)
	SystemOverviewFunc   func(ctx context.Context) (*analytics.SystemOverview, error)
}

func (m *analyticsServiceMock) UserPerformance(ctx context.Context, input analytics.UserPerformanceInput) (*analytics.UserPerformance, error) {
	if m.UserPerformanceFunc == nil {
		panic("analyticsServiceMock.UserPerformanceFunc: method is nil but analyticsService.UserPerformance was just called")
	}
	return m.UserPerformanceFunc(ctx, input)
}

func (m *analyticsServiceMock) ProjectAnalytics(ctx context.Context, projectID uuid.UUID) (*analytics.ProjectAnalytics, error) {
	if m.ProjectAnalyticsFunc == nil {
		panic("analyticsServiceMock.ProjectAnalyticsFunc: method is nil but analyticsService.ProjectAnalytics was just called")
	}
	return m.ProjectAnalyticsFunc(ctx, projectID)
}

func (m *analyticsServiceMock) SystemOverview(ctx context.Context) (*analytics.SystemOverview, error) {
	if m.SystemOverviewFunc == nil {
		panic("analyticsServiceMock.SystemOverviewFunc: method is nil but analyticsService.SystemOverview was just called")
	}
	return m.SystemOverviewFunc(ctx)
}

type userServiceMock struct {
	CreateFunc           func(ctx context.Context, input user.CreateInput) (*domain.User, error)
	GetFunc              func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListActiveByRoleFunc func(ctx context.Context, role domain.UserRole) ([]*domain.User, error)
	SetActiveFunc        func(ctx context.Context, id uuid.UUID, active bool) error
}

func (m *userServiceMock) Create(ctx context.Context, input user.CreateInput) (*domain.User, error) {
	if m.CreateFunc == nil {
		panic("userServiceMock.CreateFunc: method is nil but userService.Create was just called")
	}
	return m.CreateFunc(ctx, input)
}

func (m *userServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetFunc == nil {
		panic("userServiceMock.GetFunc: method is nil but userService.Get was just called")
	}
	return m.GetFunc(ctx, id)
}

func (m *userServiceMock) ListActiveByRole(ctx context.Context, role domain.UserRole) ([]*domain.User, error) {
	if m.ListActiveByRoleFunc == nil {
		panic("userServiceMock.ListActiveByRoleFunc: method is nil but userService.ListActiveByRole was just called")
	}
	return m.ListActiveByRoleFunc(ctx, role)
}

func (m *userServiceMock) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	if m.SetActiveFunc == nil {
		panic("userServiceMock.SetActiveFunc: method is nil but userService.SetActive was just called")
	}
	return m.SetActiveFunc(ctx, id, active)
}
