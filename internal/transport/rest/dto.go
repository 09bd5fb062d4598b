package rest

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/annolab/annolab-backend/internal/domain"
	"github.com/annolab/annolab-backend/internal/service/analytics"
	"github.com/annolab/annolab-backend/internal/service/project"
	"github.com/annolab/annolab-backend/pkg/taskregistry"
)

// Response DTOs. Field names follow the wire contract consumed by the
// annotation frontend, which predates this service.

type reviewEntryResponse struct {
	ID                uuid.UUID  `json:"id"`
	VideoID           uuid.UUID  `json:"video_id"`
	ProjectID         *uuid.UUID `json:"project_id,omitempty"`
	AnnotatorID       uuid.UUID  `json:"annotator_id"`
	ReviewerID        *uuid.UUID `json:"reviewer_id,omitempty"`
	Status            string     `json:"status"`
	Priority          int        `json:"priority"`
	QualityScore      *float64   `json:"quality_score,omitempty"`
	AccuracyScore     *float64   `json:"accuracy_score,omitempty"`
	CompletenessScore *float64   `json:"completeness_score,omitempty"`
	Comments          *string    `json:"comments,omitempty"`
	AnnotationCount   int        `json:"annotation_count"`
	BBoxCount         int        `json:"bbox_count"`
	SubmittedAt       time.Time  `json:"submitted_at"`
	ReviewStartedAt   *time.Time `json:"review_started_at,omitempty"`
	ReviewedAt        *time.Time `json:"reviewed_at,omitempty"`
	ReviewTimeSeconds *int       `json:"review_time_seconds,omitempty"`
}

func toReviewEntryResponse(e *domain.ReviewEntry) reviewEntryResponse {
	return reviewEntryResponse{
		ID:                e.ID,
		VideoID:           e.VideoID,
		ProjectID:         e.ProjectID,
		AnnotatorID:       e.AnnotatorID,
		ReviewerID:        e.ReviewerID,
		Status:            e.Status.String(),
		Priority:          e.Priority,
		QualityScore:      e.QualityScore,
		AccuracyScore:     e.AccuracyScore,
		CompletenessScore: e.CompletenessScore,
		Comments:          e.Comments,
		AnnotationCount:   e.AnnotationCount,
		BBoxCount:         e.BBoxCount,
		SubmittedAt:       e.SubmittedAt,
		ReviewStartedAt:   e.ReviewStartedAt,
		ReviewedAt:        e.ReviewedAt,
		ReviewTimeSeconds: e.ReviewTimeSeconds,
	}
}

func toReviewEntryResponses(entries []*domain.ReviewEntry) []reviewEntryResponse {
	out := make([]reviewEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toReviewEntryResponse(e))
	}
	return out
}

type reviewStatisticsResponse struct {
	StatusCounts         map[string]int `json:"status_counts"`
	TotalReviews         int            `json:"total_reviews"`
	CompletedReviews     int            `json:"completed_reviews"`
	AverageQualityScore  float64        `json:"average_quality_score"`
	AverageAccuracyScore float64        `json:"average_accuracy_score"`
	AverageReviewSeconds int            `json:"average_review_seconds"`
}

func toReviewStatisticsResponse(s domain.ReviewStatistics) reviewStatisticsResponse {
	counts := make(map[string]int, len(s.StatusCounts))
	for status, n := range s.StatusCounts {
		counts[status.String()] = n
	}
	return reviewStatisticsResponse{
		StatusCounts:         counts,
		TotalReviews:         s.TotalReviews,
		CompletedReviews:     s.CompletedReviews,
		AverageQualityScore:  s.AverageQualityScore,
		AverageAccuracyScore: s.AverageAccuracyScore,
		AverageReviewSeconds: s.AverageReviewSeconds,
	}
}

type videoResponse struct {
	ID              uuid.UUID  `json:"id"`
	Filename        string     `json:"filename"`
	Resolution      *string    `json:"resolution,omitempty"`
	Framerate       *float64   `json:"framerate,omitempty"`
	DurationSeconds *float64   `json:"duration_seconds,omitempty"`
	Status          string     `json:"status"`
	ProjectID       *uuid.UUID `json:"project_id,omitempty"`
	AssignedTo      *uuid.UUID `json:"assigned_to,omitempty"`
	IsCompleted     bool       `json:"is_completed"`
	ImportedAt      time.Time  `json:"imported_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

func toVideoResponse(v *domain.Video) videoResponse {
	return videoResponse{
		ID:              v.ID,
		Filename:        v.Filename,
		Resolution:      v.Resolution,
		Framerate:       v.Framerate,
		DurationSeconds: v.DurationSeconds,
		Status:          v.Status.String(),
		ProjectID:       v.ProjectID,
		AssignedTo:      v.AssignedTo,
		IsCompleted:     v.IsCompleted,
		ImportedAt:      v.ImportedAt,
		CompletedAt:     v.CompletedAt,
	}
}

func toVideoResponses(videos []*domain.Video) []videoResponse {
	out := make([]videoResponse, 0, len(videos))
	for _, v := range videos {
		out = append(out, toVideoResponse(v))
	}
	return out
}

type projectResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Description  *string    `json:"description,omitempty"`
	Status       string     `json:"status"`
	CreatedBy    uuid.UUID  `json:"created_by"`
	Deadline     *time.Time `json:"deadline,omitempty"`
	TotalVideos  int        `json:"total_videos"`
	CreatedAt    time.Time  `json:"created_at"`
	LastActivity time.Time  `json:"last_activity"`
}

func toProjectResponse(p *domain.Project) projectResponse {
	return projectResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Status:       p.Status.String(),
		CreatedBy:    p.CreatedBy,
		Deadline:     p.Deadline,
		TotalVideos:  p.TotalVideos,
		CreatedAt:    p.CreatedAt,
		LastActivity: p.LastActivity,
	}
}

type memberResponse struct {
	ProjectID       uuid.UUID `json:"project_id"`
	UserID          uuid.UUID `json:"user_id"`
	Role            string    `json:"role"`
	VideosAssigned  int       `json:"videos_assigned"`
	VideosCompleted int       `json:"videos_completed"`
	JoinedAt        time.Time `json:"joined_at"`
}

func toMemberResponse(m *domain.ProjectMember) memberResponse {
	return memberResponse{
		ProjectID:       m.ProjectID,
		UserID:          m.UserID,
		Role:            m.Role.String(),
		VideosAssigned:  m.VideosAssigned,
		VideosCompleted: m.VideosCompleted,
		JoinedAt:        m.JoinedAt,
	}
}

type projectStatisticsResponse struct {
	Project            projectResponse          `json:"project"`
	TotalVideos        int                      `json:"total_videos"`
	AssignedVideos     int                      `json:"assigned_videos"`
	CompletedVideos    int                      `json:"completed_videos"`
	UnassignedVideos   int                      `json:"unassigned_videos"`
	ProgressPercentage float64                  `json:"progress_percentage"`
	Members            []memberProgressResponse `json:"members"`
}

type memberProgressResponse struct {
	UserID          uuid.UUID `json:"user_id"`
	Role            string    `json:"role"`
	VideosAssigned  int       `json:"videos_assigned"`
	VideosCompleted int       `json:"videos_completed"`
	CompletionRate  float64   `json:"completion_rate"`
}

func toProjectStatisticsResponse(s *project.Statistics) projectStatisticsResponse {
	members := make([]memberProgressResponse, 0, len(s.Members))
	for _, m := range s.Members {
		members = append(members, memberProgressResponse{
			UserID:          m.UserID,
			Role:            m.Role.String(),
			VideosAssigned:  m.VideosAssigned,
			VideosCompleted: m.VideosCompleted,
			CompletionRate:  m.CompletionRate,
		})
	}
	return projectStatisticsResponse{
		Project:            toProjectResponse(s.Project),
		TotalVideos:        s.TotalVideos,
		AssignedVideos:     s.AssignedVideos,
		CompletedVideos:    s.CompletedVideos,
		UnassignedVideos:   s.UnassignedVideos,
		ProgressPercentage: s.ProgressPercentage,
		Members:            members,
	}
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Role:      u.Role.String(),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

type taskResponse struct {
	ID         uuid.UUID  `json:"id"`
	Kind       string     `json:"kind"`
	Status     string     `json:"status"`
	Progress   int        `json:"progress"`
	Message    string     `json:"message,omitempty"`
	Error      string     `json:"error,omitempty"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

func toTaskResponse(t taskregistry.Task) taskResponse {
	return taskResponse{
		ID:         t.ID,
		Kind:       t.Kind,
		Status:     string(t.Status),
		Progress:   t.Progress,
		Message:    t.Message,
		Error:      t.Error,
		StartedAt:  t.StartedAt,
		FinishedAt: t.FinishedAt,
	}
}

type dailyCountResponse struct {
	Date     string `json:"date"`
	Temporal int    `json:"temporal"`
	BBox     int    `json:"bbox"`
	Total    int    `json:"total"`
}

type userPerformanceResponse struct {
	User        userResponse         `json:"user"`
	VideoStats  videoStatsResponse   `json:"video_stats"`
	Annotations annotationStatsBody  `json:"annotation_stats"`
	Daily       []dailyCountResponse `json:"daily_activity"`
	Annotator   *annotatorStatsBody  `json:"annotator_stats,omitempty"`
	Reviewer    *reviewerStatsBody   `json:"reviewer_stats,omitempty"`
	WindowStart time.Time            `json:"window_start"`
	WindowEnd   time.Time            `json:"window_end"`
	WindowDays  int                  `json:"window_days"`
}

type videoStatsResponse struct {
	TotalAssigned  int     `json:"total_assigned"`
	Completed      int     `json:"completed"`
	InProgress     int     `json:"in_progress"`
	CompletionRate float64 `json:"completion_rate"`
}

type annotationStatsBody struct {
	Temporal     int     `json:"temporal"`
	BBox         int     `json:"bbox"`
	Total        int     `json:"total"`
	DailyAverage float64 `json:"daily_average"`
}

type annotatorStatsBody struct {
	TotalReviews        int     `json:"total_reviews"`
	Approved            int     `json:"approved"`
	Rejected            int     `json:"rejected"`
	Pending             int     `json:"pending"`
	ApprovalRate        float64 `json:"approval_rate"`
	AverageQualityScore float64 `json:"average_quality_score"`
}

type reviewerStatsBody struct {
	TotalReviewed        int     `json:"total_reviewed"`
	InReview             int     `json:"in_review"`
	AverageReviewSeconds int     `json:"average_review_seconds"`
	ReviewsPerDay        float64 `json:"reviews_per_day"`
}

func toUserPerformanceResponse(p *analytics.UserPerformance) userPerformanceResponse {
	daily := make([]dailyCountResponse, 0, len(p.Daily))
	for _, d := range p.Daily {
		daily = append(daily, dailyCountResponse{
			Date:     d.Date.Format("2006-01-02"),
			Temporal: d.Temporal,
			BBox:     d.BBox,
			Total:    d.Total(),
		})
	}

	resp := userPerformanceResponse{
		User: toUserResponse(p.User),
		VideoStats: videoStatsResponse{
			TotalAssigned:  p.VideoStats.TotalAssigned,
			Completed:      p.VideoStats.Completed,
			InProgress:     p.VideoStats.InProgress,
			CompletionRate: p.VideoStats.CompletionRate,
		},
		Annotations: annotationStatsBody{
			Temporal:     p.AnnotationStats.Temporal,
			BBox:         p.AnnotationStats.BBox,
			Total:        p.AnnotationStats.Total,
			DailyAverage: p.AnnotationStats.DailyAverage,
		},
		Daily:       daily,
		WindowStart: p.WindowStart,
		WindowEnd:   p.WindowEnd,
		WindowDays:  p.WindowDays,
	}
	if p.Annotator != nil {
		resp.Annotator = &annotatorStatsBody{
			TotalReviews:        p.Annotator.TotalReviews,
			Approved:            p.Annotator.Approved,
			Rejected:            p.Annotator.Rejected,
			Pending:             p.Annotator.Pending,
			ApprovalRate:        p.Annotator.ApprovalRate,
			AverageQualityScore: p.Annotator.AverageQualityScore,
		}
	}
	if p.Reviewer != nil {
		resp.Reviewer = &reviewerStatsBody{
			TotalReviewed:        p.Reviewer.TotalReviewed,
			InReview:             p.Reviewer.InReview,
			AverageReviewSeconds: p.Reviewer.AverageReviewSeconds,
			ReviewsPerDay:        p.Reviewer.ReviewsPerDay,
		}
	}
	return resp
}

type projectAnalyticsResponse struct {
	Project     projectResponse        `json:"project"`
	VideoStats  videoStatsResponse     `json:"video_stats"`
	Annotations projectAnnotationsBody `json:"annotation_stats"`
	Quality     qualityMetricsBody     `json:"quality"`
	Members     []memberAnalyticsBody  `json:"members"`
}

type projectAnnotationsBody struct {
	Temporal        int     `json:"temporal"`
	BBox            int     `json:"bbox"`
	Total           int     `json:"total"`
	AveragePerVideo float64 `json:"average_per_video"`
}

type qualityMetricsBody struct {
	AverageScore float64        `json:"average_score"`
	Distribution map[string]int `json:"distribution"`
	TotalReviews int            `json:"total_reviews"`
}

type memberAnalyticsBody struct {
	UserID          uuid.UUID `json:"user_id"`
	Role            string    `json:"role"`
	VideosAssigned  int       `json:"videos_assigned"`
	VideosCompleted int       `json:"videos_completed"`
	Temporal        int       `json:"temporal"`
	BBox            int       `json:"bbox"`
	Total           int       `json:"total"`
	CompletionRate  float64   `json:"completion_rate"`
}

func toProjectAnalyticsResponse(p *analytics.ProjectAnalytics) projectAnalyticsResponse {
	distribution := make(map[string]int, len(p.Quality.Distribution))
	for score, n := range p.Quality.Distribution {
		distribution[strconv.Itoa(score)] = n
	}
	members := make([]memberAnalyticsBody, 0, len(p.Members))
	for _, m := range p.Members {
		members = append(members, memberAnalyticsBody{
			UserID:          m.UserID,
			Role:            m.Role.String(),
			VideosAssigned:  m.VideosAssigned,
			VideosCompleted: m.VideosCompleted,
			Temporal:        m.Temporal,
			BBox:            m.BBox,
			Total:           m.Total,
			CompletionRate:  m.CompletionRate,
		})
	}
	return projectAnalyticsResponse{
		Project: toProjectResponse(p.Project),
		VideoStats: videoStatsResponse{
			TotalAssigned:  p.VideoStats.Total,
			Completed:      p.VideoStats.Completed,
			InProgress:     p.VideoStats.InProgress,
			CompletionRate: p.VideoStats.CompletionRate,
		},
		Annotations: projectAnnotationsBody{
			Temporal:        p.AnnotationStats.Temporal,
			BBox:            p.AnnotationStats.BBox,
			Total:           p.AnnotationStats.Total,
			AveragePerVideo: p.AnnotationStats.AveragePerVideo,
		},
		Quality: qualityMetricsBody{
			AverageScore: p.Quality.AverageScore,
			Distribution: distribution,
			TotalReviews: p.Quality.TotalReviews,
		},
		Members: members,
	}
}

type systemOverviewResponse struct {
	Users          userCountsBody    `json:"users"`
	TotalProjects  int               `json:"total_projects"`
	ActiveProjects int               `json:"active_projects"`
	Videos         systemVideosBody  `json:"videos"`
	Annotations    systemAnnotations `json:"annotations"`
	Reviews        systemReviewsBody `json:"reviews"`
	Health         healthMetricsBody `json:"health"`
}

type userCountsBody struct {
	Total      int `json:"total"`
	Active     int `json:"active"`
	Admins     int `json:"admins"`
	Annotators int `json:"annotators"`
	Reviewers  int `json:"reviewers"`
}

type systemVideosBody struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Unassigned int `json:"unassigned"`
}

type systemAnnotations struct {
	Temporal int `json:"temporal"`
	BBox     int `json:"bbox"`
	Total    int `json:"total"`
}

type systemReviewsBody struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
}

type healthMetricsBody struct {
	AssignmentCoverage float64 `json:"assignment_coverage"`
	CompletionRate     float64 `json:"completion_rate"`
	ReviewBacklog      int     `json:"review_backlog"`
	ActiveUserRate     float64 `json:"active_user_rate"`
}

func toSystemOverviewResponse(o *analytics.SystemOverview) systemOverviewResponse {
	return systemOverviewResponse{
		Users: userCountsBody{
			Total:      o.Users.Total,
			Active:     o.Users.Active,
			Admins:     o.Users.Admins,
			Annotators: o.Users.Annotators,
			Reviewers:  o.Users.Reviewers,
		},
		TotalProjects:  o.TotalProjects,
		ActiveProjects: o.ActiveProjects,
		Videos: systemVideosBody{
			Total:      o.Videos.Total,
			Completed:  o.Videos.Completed,
			Unassigned: o.Videos.Unassigned,
		},
		Annotations: systemAnnotations{
			Temporal: o.Annotations.Temporal,
			BBox:     o.Annotations.BBox,
			Total:    o.Annotations.Total(),
		},
		Reviews: systemReviewsBody{
			Total:   o.Reviews.Total,
			Pending: o.Reviews.Pending,
		},
		Health: healthMetricsBody{
			AssignmentCoverage: o.Health.AssignmentCoverage,
			CompletionRate:     o.Health.CompletionRate,
			ReviewBacklog:      o.Health.ReviewBacklog,
			ActiveUserRate:     o.Health.ActiveUserRate,
		},
	}
}

type feedbackResponse struct {
	ID             uuid.UUID  `json:"id"`
	ReviewID       uuid.UUID  `json:"review_id"`
	AnnotationType string     `json:"annotation_type"`
	AnnotationID   *uuid.UUID `json:"annotation_id,omitempty"`
	IssueType      string     `json:"issue_type"`
	Severity       string     `json:"severity"`
	Comment        string     `json:"comment"`
	Suggestion     *string    `json:"suggestion,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func toFeedbackResponses(items []*domain.ReviewFeedback) []feedbackResponse {
	out := make([]feedbackResponse, 0, len(items))
	for _, fb := range items {
		out = append(out, feedbackResponse{
			ID:             fb.ID,
			ReviewID:       fb.ReviewID,
			AnnotationType: fb.AnnotationType.String(),
			AnnotationID:   fb.AnnotationID,
			IssueType:      fb.IssueType.String(),
			Severity:       fb.Severity.String(),
			Comment:        fb.Comment,
			Suggestion:     fb.Suggestion,
			CreatedAt:      fb.CreatedAt,
		})
	}
	return out
}
