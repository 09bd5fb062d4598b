// Package user administers the account directory: creation, activation, and
// role-scoped listings. Token issuance happens upstream; this service only
// stores credentials.
package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/annolab/annolab-backend/internal/domain"
)

type userRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	ListActiveByRole(ctx context.Context, role domain.UserRole) ([]*domain.User, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// Service implements account directory business logic.
type Service struct {
	users userRepo
	log   *slog.Logger
	now   func() time.Time
}

// NewService creates a new user service.
func NewService(log *slog.Logger, users userRepo) *Service {
	return &Service{
		users: users,
		log:   log.With("service", "user"),
		now:   time.Now,
	}
}
