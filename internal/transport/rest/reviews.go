package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/annolab/annolab-backend/internal/domain"
	"github.com/annolab/annolab-backend/internal/service/review"
	"github.com/annolab/annolab-backend/pkg/ctxutil"
)

// reviewService defines the minimal interface needed by ReviewHandler.
type reviewService interface {
	Submit(ctx context.Context, input review.SubmitInput) (*domain.ReviewEntry, error)
	StartReview(ctx context.Context, input review.StartReviewInput) (*domain.ReviewEntry, error)
	Complete(ctx context.Context, input review.CompleteInput) (*domain.ReviewEntry, error)
	Queue(ctx context.Context, input review.QueueInput) ([]*domain.ReviewEntry, error)
	Feedback(ctx context.Context, entryID uuid.UUID) ([]*domain.ReviewFeedback, error)
	Statistics(ctx context.Context, input review.StatisticsInput) (domain.ReviewStatistics, error)
}

// ReviewHandler serves the review workflow endpoints.
type ReviewHandler struct {
	svc reviewService
	log *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc reviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, log: logger.With("handler", "reviews")}
}

type submitReviewRequest struct {
	VideoID    uuid.UUID `json:"video_id"`
	AutoAssign bool      `json:"auto_assign"`
	Priority   *int      `json:"priority,omitempty"`
}

// Submit handles POST /api/reviews. The authenticated user is the annotator.
func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	annotatorID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req submitReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.Submit(r.Context(), review.SubmitInput{
		VideoID:     req.VideoID,
		AnnotatorID: annotatorID,
		AutoAssign:  req.AutoAssign,
		Priority:    req.Priority,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReviewEntryResponse(entry))
}

// Start handles POST /api/reviews/{id}/start. The authenticated user claims
// the entry as its reviewer.
func (h *ReviewHandler) Start(w http.ResponseWriter, r *http.Request) {
	reviewerID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	entryID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid review id")
		return
	}

	entry, err := h.svc.StartReview(r.Context(), review.StartReviewInput{
		EntryID:    entryID,
		ReviewerID: reviewerID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReviewEntryResponse(entry))
}

type completeReviewRequest struct {
	Outcome      string            `json:"outcome"`
	QualityScore float64           `json:"quality_score"`
	Comments     *string           `json:"comments,omitempty"`
	Feedback     []feedbackRequest `json:"feedback,omitempty"`
}

type feedbackRequest struct {
	AnnotationType string     `json:"annotation_type"`
	AnnotationID   *uuid.UUID `json:"annotation_id,omitempty"`
	IssueType      string     `json:"issue_type"`
	Severity       string     `json:"severity"`
	Comment        string     `json:"comment"`
	Suggestion     *string    `json:"suggestion,omitempty"`
}

// Complete handles POST /api/reviews/{id}/complete.
func (h *ReviewHandler) Complete(w http.ResponseWriter, r *http.Request) {
	reviewerID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	entryID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid review id")
		return
	}

	var req completeReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	feedback := make([]review.FeedbackInput, 0, len(req.Feedback))
	for _, fb := range req.Feedback {
		feedback = append(feedback, review.FeedbackInput{
			AnnotationType: domain.AnnotationType(fb.AnnotationType),
			AnnotationID:   fb.AnnotationID,
			IssueType:      domain.IssueType(fb.IssueType),
			Severity:       domain.Severity(fb.Severity),
			Comment:        fb.Comment,
			Suggestion:     fb.Suggestion,
		})
	}

	entry, err := h.svc.Complete(r.Context(), review.CompleteInput{
		EntryID:      entryID,
		ReviewerID:   reviewerID,
		Outcome:      domain.ReviewStatus(req.Outcome),
		QualityScore: req.QualityScore,
		Comments:     req.Comments,
		Feedback:     feedback,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReviewEntryResponse(entry))
}

// Queue handles GET /api/reviews with optional project_id, reviewer_id,
// annotator_id, status, and limit query filters.
func (h *ReviewHandler) Queue(w http.ResponseWriter, r *http.Request) {
	input := review.QueueInput{}

	var err error
	if input.ProjectID, err = queryUUID(r, "project_id"); err != nil {
		writeError(w, http.StatusBadRequest, "invalid project_id")
		return
	}
	if input.ReviewerID, err = queryUUID(r, "reviewer_id"); err != nil {
		writeError(w, http.StatusBadRequest, "invalid reviewer_id")
		return
	}
	if input.AnnotatorID, err = queryUUID(r, "annotator_id"); err != nil {
		writeError(w, http.StatusBadRequest, "invalid annotator_id")
		return
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.ReviewStatus(raw)
		input.Status = &status
	}
	if input.Limit, err = queryInt(r, "limit", 0); err != nil {
		writeError(w, http.StatusBadRequest, "invalid limit")
		return
	}

	entries, err := h.svc.Queue(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReviewEntryResponses(entries))
}

// Statistics handles GET /api/reviews/statistics with optional project_id,
// annotator_id, and reviewer_id scoping.
func (h *ReviewHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	input := review.StatisticsInput{}

	var err error
	if input.ProjectID, err = queryUUID(r, "project_id"); err != nil {
		writeError(w, http.StatusBadRequest, "invalid project_id")
		return
	}
	if input.AnnotatorID, err = queryUUID(r, "annotator_id"); err != nil {
		writeError(w, http.StatusBadRequest, "invalid annotator_id")
		return
	}
	if input.ReviewerID, err = queryUUID(r, "reviewer_id"); err != nil {
		writeError(w, http.StatusBadRequest, "invalid reviewer_id")
		return
	}

	stats, err := h.svc.Statistics(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReviewStatisticsResponse(stats))
}

// Feedback handles GET /api/reviews/{id}/feedback.
func (h *ReviewHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	entryID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid review id")
		return
	}

	items, err := h.svc.Feedback(r.Context(), entryID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toFeedbackResponses(items))
}
