// Package user implements the user directory using PostgreSQL.
// Role strings are normalized to the canonical uppercase form on read so the
// core never branches on string case.
package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/annolab/annolab-backend/internal/adapter/postgres"
	"github.com/annolab/annolab-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, username, full_name, role, is_active, password_hash, created_at`

const createSQL = `
INSERT INTO users (id, username, full_name, role, is_active, password_hash, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + userColumns

const getByIDSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

const getByUsernameSQL = `SELECT ` + userColumns + ` FROM users WHERE username = $1`

// listActiveByRoleSQL orders by id so the reviewer balancer's tie-break is
// deterministic regardless of physical row order.
const listActiveByRoleSQL = `
SELECT ` + userColumns + `
FROM users
WHERE upper(role) = $1 AND is_active
ORDER BY id`

const setActiveSQL = `UPDATE users SET is_active = $2 WHERE id = $1`

const countsSQL = `
SELECT count(*),
       count(*) FILTER (WHERE is_active),
       count(*) FILTER (WHERE upper(role) = 'ADMIN'),
       count(*) FILTER (WHERE upper(role) = 'ANNOTATOR'),
       count(*) FILTER (WHERE upper(role) = 'REVIEWER')
FROM users`

// Create inserts a new user. Returns domain.ErrAlreadyExists on a duplicate
// username.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		u.ID, u.Username, u.FullName, u.Role, u.IsActive, u.PasswordHash, u.CreatedAt)
	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return created, nil
}

// GetByID returns a user by ID. Returns domain.ErrNotFound if absent.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getByUsernameSQL, username))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return u, nil
}

// ListActiveByRole returns active users with the given role, ordered by ID.
func (r *Repo) ListActiveByRole(ctx context.Context, role domain.UserRole) ([]*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listActiveByRoleSQL, string(role))
	if err != nil {
		return nil, fmt.Errorf("list users by role: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		var u domain.User
		var role string
		err := rows.Scan(&u.ID, &u.Username, &u.FullName, &role, &u.IsActive, &u.PasswordHash, &u.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.Role = normalizeRole(role)
		users = append(users, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	if users == nil {
		users = []*domain.User{}
	}
	return users, nil
}

// SetActive flips the active flag.
func (r *Repo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, setActiveSQL, id, active)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Counts returns directory totals for the system overview.
func (r *Repo) Counts(ctx context.Context) (domain.UserCounts, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var c domain.UserCounts
	err := querier.QueryRow(ctx, countsSQL).Scan(&c.Total, &c.Active, &c.Admins, &c.Annotators, &c.Reviewers)
	if err != nil {
		return domain.UserCounts{}, fmt.Errorf("count users: %w", err)
	}
	return c, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var role string
	err := row.Scan(&u.ID, &u.Username, &u.FullName, &role, &u.IsActive, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	u.Role = normalizeRole(role)
	return &u, nil
}

// normalizeRole is the single case-normalization boundary for role strings.
func normalizeRole(raw string) domain.UserRole {
	return domain.UserRole(strings.ToUpper(strings.TrimSpace(raw)))
}
