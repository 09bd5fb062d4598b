package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/annolab/annolab-backend/internal/domain"
)

// Create creates a project in SETUP status. The creator becomes its LEAD
// member in the same transaction.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Project, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByID(ctx, input.CreatedBy); err != nil {
		return nil, fmt.Errorf("get creator: %w", err)
	}

	now := s.now().UTC()
	var created *domain.Project

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.projects.Create(ctx, &domain.Project{
			ID:           uuid.New(),
			Name:         input.Name,
			Description:  input.Description,
			Status:       domain.ProjectStatusSetup,
			CreatedBy:    input.CreatedBy,
			Deadline:     input.Deadline,
			CreatedAt:    now,
			LastActivity: now,
		})
		if err != nil {
			return fmt.Errorf("create project: %w", err)
		}

		err = s.projects.AddMember(ctx, &domain.ProjectMember{
			ProjectID: created.ID,
			UserID:    input.CreatedBy,
			Role:      domain.ProjectRoleLead,
			JoinedAt:  now,
		})
		if err != nil {
			return fmt.Errorf("add creator as lead: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("project created",
		"project_id", created.ID,
		"name", created.Name,
		"created_by", input.CreatedBy,
	)
	return created, nil
}
