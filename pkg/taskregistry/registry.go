// Package taskregistry tracks long-running background tasks with an explicit
// lifecycle: create on start, update while running, mark terminal, evict when
// the caller is done with the result. It replaces ad-hoc process-wide
// progress maps with one owned object safe for concurrent use.
package taskregistry

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// IsTerminal reports whether the task has finished.
func (s Status) IsTerminal() bool { return s == StatusCompleted || s == StatusFailed }

// Task is a point-in-time snapshot of one tracked task. Snapshots are
// values; mutating one does not touch the registry.
type Task struct {
	ID         uuid.UUID
	Kind       string
	Status     Status
	Progress   int // 0..100
	Message    string
	Error      string
	StartedAt  time.Time
	FinishedAt *time.Time
}

// ErrNotFound is returned when a task ID is unknown or already evicted.
var ErrNotFound = fmt.Errorf("task not found")

// Registry holds tasks in memory. The zero value is not usable; call New.
type Registry struct {
	mu    sync.RWMutex
	tasks map[uuid.UUID]*Task
	now   func() time.Time
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		tasks: make(map[uuid.UUID]*Task),
		now:   time.Now,
	}
}

// Create registers a new running task of the given kind and returns its ID.
func (r *Registry) Create(kind string) uuid.UUID {
	id := uuid.New()

	r.mu.Lock()
	r.tasks[id] = &Task{
		ID:        id,
		Kind:      kind,
		Status:    StatusRunning,
		StartedAt: r.now().UTC(),
	}
	r.mu.Unlock()

	return id
}

// Update reports progress on a running task. Progress is clamped to 0..100.
// Updating a terminal task returns an error; the terminal state wins.
func (r *Registry) Update(id uuid.UUID, progress int, message string) error {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	if t.Status.IsTerminal() {
		return fmt.Errorf("task %s is already %s", id, t.Status)
	}

	t.Progress = progress
	t.Message = message
	return nil
}

// Complete marks a task finished successfully.
func (r *Registry) Complete(id uuid.UUID, message string) error {
	return r.finish(id, StatusCompleted, message, "")
}

// Fail marks a task finished with an error.
func (r *Registry) Fail(id uuid.UUID, taskErr error) error {
	msg := ""
	if taskErr != nil {
		msg = taskErr.Error()
	}
	return r.finish(id, StatusFailed, "", msg)
}

func (r *Registry) finish(id uuid.UUID, status Status, message, errMsg string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	if t.Status.IsTerminal() {
		return fmt.Errorf("task %s is already %s", id, t.Status)
	}

	now := r.now().UTC()
	t.Status = status
	t.FinishedAt = &now
	if status == StatusCompleted {
		t.Progress = 100
		t.Message = message
	}
	t.Error = errMsg
	return nil
}

// Get returns a snapshot of one task.
func (r *Registry) Get(id uuid.UUID) (Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok {
		return Task{}, fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return *t, nil
}

// Evict removes a terminal task. Evicting a running task fails: the owner
// must finish it first.
func (r *Registry) Evict(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	if !t.Status.IsTerminal() {
		return fmt.Errorf("task %s is still %s", id, t.Status)
	}

	delete(r.tasks, id)
	return nil
}

// Len returns the number of tracked tasks.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks)
}
