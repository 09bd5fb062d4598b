package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/annolab/annolab-backend/pkg/taskregistry"
)

// TaskHandler exposes background task progress and lets callers evict
// finished tasks.
type TaskHandler struct {
	tasks *taskregistry.Registry
	log   *slog.Logger
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(tasks *taskregistry.Registry, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{tasks: tasks, log: logger.With("handler", "tasks")}
}

// Get handles GET /tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	task, err := h.tasks.Get(taskID)
	if err != nil {
		if errors.Is(err, taskregistry.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(task))
}

// Delete handles DELETE /tasks/{id}. Only terminal tasks can be evicted; a
// task still running is reported as a conflict.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	if err := h.tasks.Evict(taskID); err != nil {
		if errors.Is(err, taskregistry.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		writeError(w, http.StatusConflict, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
