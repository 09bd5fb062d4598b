package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/annolab/annolab-backend/internal/domain"
	"github.com/annolab/annolab-backend/internal/service/user"
	"github.com/annolab/annolab-backend/internal/transport/middleware"
)

// userService defines the minimal interface needed by UserHandler.
type userService interface {
	Create(ctx context.Context, input user.CreateInput) (*domain.User, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListActiveByRole(ctx context.Context, role domain.UserRole) ([]*domain.User, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// UserHandler serves the account directory. All mutations are admin-only.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "users")}
}

type createUserRequest struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Create handles POST /api/users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.svc.Create(r.Context(), user.CreateInput{
		Username: req.Username,
		FullName: req.FullName,
		Password: req.Password,
		Role:     domain.UserRole(req.Role),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(u))
}

// Get handles GET /api/users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	u, err := h.svc.Get(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// ListByRole handles GET /api/users?role=REVIEWER. Returns active accounts
// holding the given role.
func (h *UserHandler) ListByRole(w http.ResponseWriter, r *http.Request) {
	role := domain.UserRole(r.URL.Query().Get("role"))

	users, err := h.svc.ListActiveByRole(r.Context(), role)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	writeJSON(w, http.StatusOK, out)
}

type setActiveRequest struct {
	Active bool `json:"active"`
}

// SetActive handles PATCH /api/users/{id}/active.
func (h *UserHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	userID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req setActiveRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.SetActive(r.Context(), userID, req.Active); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"active": req.Active})
}
