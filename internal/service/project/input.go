package project

import (
	"time"

	"github.com/google/uuid"

	"github.com/annolab/annolab-backend/internal/domain"
)

const maxNameLength = 200

// CreateInput defines parameters for creating a project.
type CreateInput struct {
	Name        string
	Description *string
	CreatedBy   uuid.UUID
	Deadline    *time.Time
}

// Validate checks the input.
func (in CreateInput) Validate() error {
	var fieldErrors []domain.FieldError
	if in.Name == "" {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field: "name", Message: "is required",
		})
	}
	if len(in.Name) > maxNameLength {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field: "name", Message: "is too long",
		})
	}
	if in.CreatedBy == uuid.Nil {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field: "created_by", Message: "is required",
		})
	}
	if len(fieldErrors) > 0 {
		return domain.NewValidationErrors(fieldErrors)
	}
	return nil
}

// AddMemberInput defines parameters for adding a user to a project.
type AddMemberInput struct {
	ProjectID uuid.UUID
	UserID    uuid.UUID

	// Role defaults to MEMBER when empty.
	Role domain.ProjectRole
}

// Validate checks the input.
func (in AddMemberInput) Validate() error {
	var fieldErrors []domain.FieldError
	if in.ProjectID == uuid.Nil {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field: "project_id", Message: "is required",
		})
	}
	if in.UserID == uuid.Nil {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field: "user_id", Message: "is required",
		})
	}
	if in.Role != "" && !in.Role.IsValid() {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field: "role", Message: "is not a valid project role",
		})
	}
	if len(fieldErrors) > 0 {
		return domain.NewValidationErrors(fieldErrors)
	}
	return nil
}

// UpdateStatusInput defines parameters for a project status transition.
type UpdateStatusInput struct {
	ProjectID uuid.UUID
	Status    domain.ProjectStatus
}

// Validate checks the input.
func (in UpdateStatusInput) Validate() error {
	var fieldErrors []domain.FieldError
	if in.ProjectID == uuid.Nil {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field: "project_id", Message: "is required",
		})
	}
	if !in.Status.IsValid() {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field: "status", Message: "is not a valid project status",
		})
	}
	if len(fieldErrors) > 0 {
		return domain.NewValidationErrors(fieldErrors)
	}
	return nil
}
