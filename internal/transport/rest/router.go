package rest

import (
	"net/http"
)

// Handlers bundles all route handlers mounted by the router.
type Handlers struct {
	Health    *HealthHandler
	Reviews   *ReviewHandler
	Projects  *ProjectHandler
	Videos    *VideoHandler
	Analytics *AnalyticsHandler
	Users     *UserHandler
	Tasks     *TaskHandler

	// Metrics serves the Prometheus scrape endpoint. Nil disables it.
	Metrics http.Handler
}

// NewRouter mounts all routes on a ServeMux. Middleware is composed by the
// caller around the returned handler; authentication is enforced per route
// inside the handlers, which reject anonymous requests where a principal is
// required.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}

	mux.HandleFunc("POST /api/reviews", h.Reviews.Submit)
	mux.HandleFunc("GET /api/reviews", h.Reviews.Queue)
	mux.HandleFunc("GET /api/reviews/statistics", h.Reviews.Statistics)
	mux.HandleFunc("POST /api/reviews/{id}/start", h.Reviews.Start)
	mux.HandleFunc("POST /api/reviews/{id}/complete", h.Reviews.Complete)
	mux.HandleFunc("GET /api/reviews/{id}/feedback", h.Reviews.Feedback)

	mux.HandleFunc("POST /api/projects", h.Projects.Create)
	mux.HandleFunc("GET /api/projects", h.Projects.List)
	mux.HandleFunc("POST /api/projects/{id}/members", h.Projects.AddMember)
	mux.HandleFunc("PATCH /api/projects/{id}/status", h.Projects.UpdateStatus)
	mux.HandleFunc("GET /api/projects/{id}/statistics", h.Projects.Statistics)
	mux.HandleFunc("POST /api/projects/{id}/distribute", h.Projects.Distribute)
	mux.HandleFunc("POST /api/projects/{id}/videos", h.Projects.AttachVideos)
	mux.HandleFunc("POST /api/projects/{id}/reconcile", h.Projects.Reconcile)

	mux.HandleFunc("POST /api/videos/{id}/complete", h.Videos.Complete)
	mux.HandleFunc("GET /api/videos/assigned", h.Videos.ListAssigned)

	mux.HandleFunc("GET /api/analytics/users/{id}", h.Analytics.UserPerformance)
	mux.HandleFunc("GET /api/analytics/projects/{id}", h.Analytics.ProjectAnalytics)
	mux.HandleFunc("GET /api/analytics/system", h.Analytics.SystemOverview)

	mux.HandleFunc("POST /api/users", h.Users.Create)
	mux.HandleFunc("GET /api/users", h.Users.ListByRole)
	mux.HandleFunc("GET /api/users/{id}", h.Users.Get)
	mux.HandleFunc("PATCH /api/users/{id}/active", h.Users.SetActive)

	mux.HandleFunc("GET /tasks/{id}", h.Tasks.Get)
	mux.HandleFunc("DELETE /tasks/{id}", h.Tasks.Delete)

	return mux
}
