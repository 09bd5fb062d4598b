package user

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/annolab/annolab-backend/internal/domain"
)

func newTestService(t *testing.T, users *userRepoMock) *Service {
	t.Helper()

	if users == nil {
		users = &userRepoMock{}
	}
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), users)
}

func TestService_Create_HashesPassword(t *testing.T) {
	t.Parallel()

	users := &userRepoMock{
		CreateFunc: func(ctx context.Context, u *domain.User) (*domain.User, error) {
			return u, nil
		},
	}
	svc := newTestService(t, users)

	created, err := svc.Create(context.Background(), CreateInput{
		Username: "alice",
		FullName: "Alice A",
		Password: "correct horse battery",
		Role:     domain.UserRoleAnnotator,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if created.PasswordHash == "correct horse battery" {
		t.Fatal("password must not be stored in the clear")
	}
	err = bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("correct horse battery"))
	if err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
	if !created.IsActive {
		t.Error("new accounts must start active")
	}
	if created.ID == uuid.Nil {
		t.Error("ID must be generated")
	}
}

func TestService_Create_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input CreateInput
	}{
		{
			name:  "missing username",
			input: CreateInput{Password: "long-enough-pw", Role: domain.UserRoleAnnotator},
		},
		{
			name:  "short password",
			input: CreateInput{Username: "bob", Password: "short", Role: domain.UserRoleAnnotator},
		},
		{
			name:  "bogus role",
			input: CreateInput{Username: "bob", Password: "long-enough-pw", Role: domain.UserRole("WIZARD")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			users := &userRepoMock{}
			svc := newTestService(t, users)

			_, err := svc.Create(context.Background(), tt.input)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("Create() error = %v, want ErrValidation", err)
			}
			if len(users.CreateCalls()) != 0 {
				t.Error("invalid input must not reach the store")
			}
		})
	}
}

func TestService_Create_DuplicateUsername(t *testing.T) {
	t.Parallel()

	users := &userRepoMock{
		CreateFunc: func(ctx context.Context, u *domain.User) (*domain.User, error) {
			return nil, fmt.Errorf("user %s: %w", u.Username, domain.ErrAlreadyExists)
		},
	}
	svc := newTestService(t, users)

	_, err := svc.Create(context.Background(), CreateInput{
		Username: "alice",
		Password: "long-enough-pw",
		Role:     domain.UserRoleReviewer,
	})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("Create() error = %v, want ErrAlreadyExists", err)
	}
}

func TestService_SetActive(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	users := &userRepoMock{
		SetActiveFunc: func(ctx context.Context, id uuid.UUID, active bool) error {
			if active {
				t.Error("active = true, want false")
			}
			return nil
		},
	}
	svc := newTestService(t, users)

	if err := svc.SetActive(context.Background(), userID, false); err != nil {
		t.Fatalf("SetActive() error = %v", err)
	}
	if got := users.SetActiveCalls(); len(got) != 1 || got[0] != userID {
		t.Errorf("SetActive calls = %v, want [%v]", got, userID)
	}
}

func TestService_ListActiveByRole_RejectsBogusRole(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil)

	_, err := svc.ListActiveByRole(context.Background(), domain.UserRole("WIZARD"))
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("ListActiveByRole() error = %v, want ErrValidation", err)
	}
}
