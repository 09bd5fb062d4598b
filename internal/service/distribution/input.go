package distribution

import (
	"github.com/google/uuid"

	"github.com/annolab/annolab-backend/internal/domain"
)

// AssignEquallyInput holds the parameters for round-robin distribution of all
// unassigned project videos.
type AssignEquallyInput struct {
	ProjectID uuid.UUID
	MemberIDs []uuid.UUID
}

// Validate checks all fields and collects all errors. An empty member list is
// a precondition failure, not a validation error, and is checked in the
// operation itself.
func (i *AssignEquallyInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	for _, id := range i.MemberIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "member_ids", Message: "must not contain nil ids"})
			break
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AssignSpecificInput holds the parameters for distributing an explicit video
// subset.
type AssignSpecificInput struct {
	ProjectID uuid.UUID
	VideoIDs  []uuid.UUID
	MemberIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *AssignSpecificInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if len(i.VideoIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "video_ids", Message: "required"})
	}
	for _, id := range i.MemberIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "member_ids", Message: "must not contain nil ids"})
			break
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AttachVideosInput holds the parameters for attaching loose videos to a
// project.
type AttachVideosInput struct {
	ProjectID uuid.UUID
	VideoIDs  []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *AttachVideosInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if len(i.VideoIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "video_ids", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
