package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/annolab/annolab-backend/internal/domain"
	"github.com/annolab/annolab-backend/internal/service/distribution"
	"github.com/annolab/annolab-backend/internal/service/project"
	"github.com/annolab/annolab-backend/pkg/ctxutil"
	"github.com/annolab/annolab-backend/pkg/taskregistry"
)

// projectService defines the project operations needed by ProjectHandler.
type projectService interface {
	Create(ctx context.Context, input project.CreateInput) (*domain.Project, error)
	AddMember(ctx context.Context, input project.AddMemberInput) (*domain.ProjectMember, error)
	UpdateStatus(ctx context.Context, input project.UpdateStatusInput) error
	ListForUser(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]*domain.Project, error)
	GetStatistics(ctx context.Context, projectID uuid.UUID) (*project.Statistics, error)
}

// distributionService defines the work-distribution operations needed by
// ProjectHandler.
type distributionService interface {
	AssignEqually(ctx context.Context, input distribution.AssignEquallyInput) (map[uuid.UUID]int, error)
	AssignSpecific(ctx context.Context, input distribution.AssignSpecificInput) (map[uuid.UUID]int, error)
	AttachVideos(ctx context.Context, input distribution.AttachVideosInput) (int, error)
	ReconcileCounters(ctx context.Context, projectID uuid.UUID) error
}

// ProjectHandler serves project management and distribution endpoints.
type ProjectHandler struct {
	projects     projectService
	distribution distributionService
	tasks        *taskregistry.Registry
	log          *slog.Logger
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(projects projectService, dist distributionService, tasks *taskregistry.Registry, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		projects:     projects,
		distribution: dist,
		tasks:        tasks,
		log:          logger.With("handler", "projects"),
	}
}

type createProjectRequest struct {
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

// Create handles POST /api/projects. The authenticated user becomes the
// project's lead member.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req createProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	proj, err := h.projects.Create(r.Context(), project.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   userID,
		Deadline:    req.Deadline,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProjectResponse(proj))
}

// List handles GET /api/projects. Admins see every project; everyone else
// sees their memberships.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	includeArchived := r.URL.Query().Get("include_archived") == "true"

	projects, err := h.projects.ListForUser(r.Context(), userID, includeArchived)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectResponse(p))
	}
	writeJSON(w, http.StatusOK, out)
}

type addMemberRequest struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role,omitempty"`
}

// AddMember handles POST /api/projects/{id}/members.
func (h *ProjectHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	var req addMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	member, err := h.projects.AddMember(r.Context(), project.AddMemberInput{
		ProjectID: projectID,
		UserID:    req.UserID,
		Role:      domain.ProjectRole(req.Role),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMemberResponse(member))
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/projects/{id}/status.
func (h *ProjectHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.projects.UpdateStatus(r.Context(), project.UpdateStatusInput{
		ProjectID: projectID,
		Status:    domain.ProjectStatus(req.Status),
	}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}

// Statistics handles GET /api/projects/{id}/statistics.
func (h *ProjectHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	stats, err := h.projects.GetStatistics(r.Context(), projectID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectStatisticsResponse(stats))
}

type distributeRequest struct {
	MemberIDs []uuid.UUID `json:"member_ids,omitempty"`

	// VideoIDs limits distribution to an explicit subset. Empty means all
	// unassigned videos in the project.
	VideoIDs []uuid.UUID `json:"video_ids,omitempty"`
}

type distributeResponse struct {
	Assignments map[string]int `json:"assignments"`
	Total       int            `json:"total"`
}

// Distribute handles POST /api/projects/{id}/distribute.
func (h *ProjectHandler) Distribute(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	var req distributeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var assigned map[uuid.UUID]int
	if len(req.VideoIDs) > 0 {
		assigned, err = h.distribution.AssignSpecific(r.Context(), distribution.AssignSpecificInput{
			ProjectID: projectID,
			VideoIDs:  req.VideoIDs,
			MemberIDs: req.MemberIDs,
		})
	} else {
		assigned, err = h.distribution.AssignEqually(r.Context(), distribution.AssignEquallyInput{
			ProjectID: projectID,
			MemberIDs: req.MemberIDs,
		})
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := distributeResponse{Assignments: make(map[string]int, len(assigned))}
	for userID, n := range assigned {
		resp.Assignments[userID.String()] = n
		resp.Total += n
	}
	writeJSON(w, http.StatusOK, resp)
}

type attachVideosRequest struct {
	VideoIDs []uuid.UUID `json:"video_ids"`
}

// AttachVideos handles POST /api/projects/{id}/videos.
func (h *ProjectHandler) AttachVideos(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	var req attachVideosRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	attached, err := h.distribution.AttachVideos(r.Context(), distribution.AttachVideosInput{
		ProjectID: projectID,
		VideoIDs:  req.VideoIDs,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"attached": attached})
}

// Reconcile handles POST /api/projects/{id}/reconcile. The recount runs in
// the background; the response carries a task id for progress polling.
func (h *ProjectHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	taskID := h.tasks.Create("reconcile_counters")

	// The request context dies with the response; the recount must not.
	ctx := context.WithoutCancel(r.Context())
	go func() {
		if err := h.distribution.ReconcileCounters(ctx, projectID); err != nil {
			h.log.ErrorContext(ctx, "reconcile counters",
				slog.String("project_id", projectID.String()),
				slog.String("error", err.Error()),
			)
			h.tasks.Fail(taskID, err) //nolint:errcheck
			return
		}
		h.tasks.Complete(taskID, "counters reconciled") //nolint:errcheck
	}()

	writeJSON(w, http.StatusAccepted, map[string]string{"task_id": taskID.String()})
}
