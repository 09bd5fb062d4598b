package project

import (
	"context"
	"fmt"

	"github.com/annolab/annolab-backend/internal/domain"
)

// AddMember adds a user to a project. Adding an existing member returns
// domain.ErrAlreadyExists.
func (s *Service) AddMember(ctx context.Context, input AddMemberInput) (*domain.ProjectMember, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.projects.GetByID(ctx, input.ProjectID); err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	if _, err := s.users.GetByID(ctx, input.UserID); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	role := input.Role
	if role == "" {
		role = domain.ProjectRoleMember
	}

	member := &domain.ProjectMember{
		ProjectID: input.ProjectID,
		UserID:    input.UserID,
		Role:      role,
		JoinedAt:  s.now().UTC(),
	}
	// The membership primary key rejects duplicates as ErrAlreadyExists.
	if err := s.projects.AddMember(ctx, member); err != nil {
		return nil, fmt.Errorf("add member: %w", err)
	}

	s.log.Info("project member added",
		"project_id", input.ProjectID,
		"user_id", input.UserID,
		"role", role,
	)
	return member, nil
}
