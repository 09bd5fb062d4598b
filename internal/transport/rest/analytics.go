package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/annolab/annolab-backend/internal/service/analytics"
)

// analyticsService defines the minimal interface needed by AnalyticsHandler.
type analyticsService interface {
	UserPerformance(ctx context.Context, input analytics.UserPerformanceInput) (*analytics.UserPerformance, error)
	ProjectAnalytics(ctx context.Context, projectID uuid.UUID) (*analytics.ProjectAnalytics, error)
	SystemOverview(ctx context.Context) (*analytics.SystemOverview, error)
}

// AnalyticsHandler serves the read-only reporting endpoints.
type AnalyticsHandler struct {
	svc analyticsService
	log *slog.Logger
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(svc analyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, log: logger.With("handler", "analytics")}
}

// UserPerformance handles GET /api/analytics/users/{id} with optional
// project_id and days query parameters.
func (h *AnalyticsHandler) UserPerformance(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	projectID, err := queryUUID(r, "project_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project_id")
		return
	}

	days, err := queryInt(r, "days", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid days")
		return
	}

	report, err := h.svc.UserPerformance(r.Context(), analytics.UserPerformanceInput{
		UserID:     userID,
		ProjectID:  projectID,
		WindowDays: days,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserPerformanceResponse(report))
}

// ProjectAnalytics handles GET /api/analytics/projects/{id}.
func (h *AnalyticsHandler) ProjectAnalytics(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	report, err := h.svc.ProjectAnalytics(r.Context(), projectID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectAnalyticsResponse(report))
}

// SystemOverview handles GET /api/analytics/system.
func (h *AnalyticsHandler) SystemOverview(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.SystemOverview(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSystemOverviewResponse(report))
}
