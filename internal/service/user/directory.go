package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/annolab/annolab-backend/internal/domain"
)

// Get returns one account by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "is required")
	}
	return s.users.GetByID(ctx, id)
}

// GetByUsername returns one account by its unique username.
func (s *Service) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if username == "" {
		return nil, domain.NewValidationError("username", "is required")
	}
	return s.users.GetByUsername(ctx, username)
}

// ListActiveByRole returns active accounts holding a role, ordered by
// username. The reviewer balancer draws its candidate pool from here.
func (s *Service) ListActiveByRole(ctx context.Context, role domain.UserRole) ([]*domain.User, error) {
	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "is not a valid role")
	}
	return s.users.ListActiveByRole(ctx, role)
}

// SetActive toggles an account's active flag. Deactivated accounts keep
// their history but drop out of the balancer's candidate pool.
func (s *Service) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	if id == uuid.Nil {
		return domain.NewValidationError("user_id", "is required")
	}

	if err := s.users.SetActive(ctx, id, active); err != nil {
		return fmt.Errorf("set active: %w", err)
	}

	s.log.Info("user active flag updated", "user_id", id, "active", active)
	return nil
}
