package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/annolab/annolab-backend/internal/domain"
)

const (
	minPasswordLength = 8
	maxUsernameLength = 64
	maxFullNameLength = 200
)

// CreateInput defines parameters for creating an account.
type CreateInput struct {
	Username string
	FullName string
	Password string
	Role     domain.UserRole
}

// Validate checks the input.
func (in CreateInput) Validate() error {
	var fieldErrors []domain.FieldError
	if in.Username == "" {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field: "username", Message: "is required",
		})
	}
	if len(in.Username) > maxUsernameLength {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field: "username", Message: "is too long",
		})
	}
	if len(in.FullName) > maxFullNameLength {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field: "full_name", Message: "is too long",
		})
	}
	if len(in.Password) < minPasswordLength {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field: "password", Message: fmt.Sprintf("must be at least %d characters", minPasswordLength),
		})
	}
	if !in.Role.IsValid() {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field: "role", Message: "is not a valid role",
		})
	}
	if len(fieldErrors) > 0 {
		return domain.NewValidationErrors(fieldErrors)
	}
	return nil
}

// Create creates an active account. A taken username returns
// domain.ErrAlreadyExists.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Username:     input.Username,
		FullName:     input.FullName,
		Role:         input.Role,
		IsActive:     true,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user created",
		"user_id", created.ID,
		"username", created.Username,
		"role", created.Role,
	)
	return created, nil
}
