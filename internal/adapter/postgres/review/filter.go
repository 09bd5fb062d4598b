package review

import (
	"github.com/google/uuid"

	"github.com/annolab/annolab-backend/internal/domain"
)

// Filter defines parameters for listing review queue entries.
// Results are always ordered (priority DESC, submitted_at ASC): higher
// priority first, FIFO within a priority.
type Filter struct {
	// ProjectID limits entries to one project. nil means all projects.
	ProjectID *uuid.UUID

	// ReviewerID limits entries to one assigned reviewer.
	ReviewerID *uuid.UUID

	// AnnotatorID limits entries to one submitting annotator.
	AnnotatorID *uuid.UUID

	// Status limits entries to one review status.
	Status *domain.ReviewStatus

	// Limit is the maximum number of entries to return. 0 means the
	// configured default; the service clamps it.
	Limit int
}
