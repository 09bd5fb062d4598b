package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/annolab/annolab-backend/internal/domain"
	"github.com/annolab/annolab-backend/internal/service/video"
	"github.com/annolab/annolab-backend/pkg/ctxutil"
)

// videoService defines the minimal interface needed by VideoHandler.
type videoService interface {
	MarkCompleted(ctx context.Context, input video.MarkCompletedInput) (*domain.Video, error)
	ListAssigned(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID) ([]*domain.Video, error)
}

// VideoHandler serves annotator-facing video endpoints.
type VideoHandler struct {
	svc videoService
	log *slog.Logger
}

// NewVideoHandler creates a VideoHandler.
func NewVideoHandler(svc videoService, logger *slog.Logger) *VideoHandler {
	return &VideoHandler{svc: svc, log: logger.With("handler", "videos")}
}

// Complete handles POST /api/videos/{id}/complete. Only the assigned
// annotator may complete a video.
func (h *VideoHandler) Complete(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	videoID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid video id")
		return
	}

	v, err := h.svc.MarkCompleted(r.Context(), video.MarkCompletedInput{
		VideoID: videoID,
		UserID:  userID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toVideoResponse(v))
}

// ListAssigned handles GET /api/videos/assigned with an optional project_id
// filter. Returns the authenticated user's incomplete assignments.
func (h *VideoHandler) ListAssigned(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	projectID, err := queryUUID(r, "project_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project_id")
		return
	}

	videos, err := h.svc.ListAssigned(r.Context(), userID, projectID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toVideoResponses(videos))
}
