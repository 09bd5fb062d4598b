// Package project implements project and membership persistence using
// PostgreSQL. Membership rows carry the cached videos_assigned /
// videos_completed counters the distribution engine maintains.
package project

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/annolab/annolab-backend/internal/adapter/postgres"
	"github.com/annolab/annolab-backend/internal/domain"
)

// Repo provides project persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new project repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const projectColumns = `id, name, description, status, created_by, deadline,
	total_videos, created_at, last_activity`

const createSQL = `
INSERT INTO projects (id, name, description, status, created_by, deadline, created_at, last_activity)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
RETURNING ` + projectColumns

const getByIDSQL = `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

const getByIDForUpdateSQL = getByIDSQL + ` FOR UPDATE`

const listForUserSQL = `
SELECT ` + projectColumns + `
FROM projects p
JOIN project_members m ON m.project_id = p.id
WHERE m.user_id = $1 AND ($2 OR p.status <> 'ARCHIVED')
ORDER BY p.last_activity DESC`

const listAllSQL = `
SELECT ` + projectColumns + `
FROM projects
WHERE $1 OR status <> 'ARCHIVED'
ORDER BY last_activity DESC`

const updateStatusSQL = `
UPDATE projects SET status = $2, last_activity = $3 WHERE id = $1`

const setTotalVideosSQL = `
UPDATE projects SET total_videos = $2, last_activity = $3 WHERE id = $1`

const addMemberSQL = `
INSERT INTO project_members (project_id, user_id, role, joined_at)
VALUES ($1, $2, $3, $4)`

const getMemberSQL = `
SELECT project_id, user_id, role, videos_assigned, videos_completed, joined_at
FROM project_members
WHERE project_id = $1 AND user_id = $2`

const listMembersSQL = `
SELECT project_id, user_id, role, videos_assigned, videos_completed, joined_at
FROM project_members
WHERE project_id = $1
ORDER BY joined_at, user_id`

const bumpAssignedSQL = `
UPDATE project_members SET videos_assigned = videos_assigned + $3
WHERE project_id = $1 AND user_id = $2`

const bumpCompletedSQL = `
UPDATE project_members SET videos_completed = videos_completed + $3
WHERE project_id = $1 AND user_id = $2`

const setCountersSQL = `
UPDATE project_members SET videos_assigned = $3, videos_completed = $4
WHERE project_id = $1 AND user_id = $2`

const countProjectsSQL = `
SELECT count(*), count(*) FILTER (WHERE status = 'ACTIVE') FROM projects`

// Create inserts a new project and returns the persisted row.
func (r *Repo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		p.ID, p.Name, p.Description, p.Status, p.CreatedBy, p.Deadline, p.CreatedAt)
	created, err := scanProject(row)
	if err != nil {
		return nil, postgres.MapError(err, "project", p.ID)
	}
	return created, nil
}

// GetByID returns a project by ID. Returns domain.ErrNotFound if absent.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProject(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "project", id)
	}
	return p, nil
}

// GetByIDForUpdate returns a project with a row lock. Distribution runs lock
// the project row first so concurrent runs over one project serialize.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProject(querier.QueryRow(ctx, getByIDForUpdateSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "project", id)
	}
	return p, nil
}

// ListForUser returns projects the user is a member of, most recently
// active first.
func (r *Repo) ListForUser(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]*domain.Project, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listForUserSQL, userID, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("list projects for user: %w", err)
	}
	defer rows.Close()

	return collectProjects(rows)
}

// ListAll returns every project (admin view).
func (r *Repo) ListAll(ctx context.Context, includeArchived bool) ([]*domain.Project, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listAllSQL, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	return collectProjects(rows)
}

// UpdateStatus sets the project status and touches last_activity.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ProjectStatus, at time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, updateStatusSQL, id, status, at)
	if err != nil {
		return postgres.MapError(err, "project", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// SetTotalVideos overwrites the cached total with an authoritative recount.
func (r *Repo) SetTotalVideos(ctx context.Context, id uuid.UUID, total int, at time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, setTotalVideosSQL, id, total, at)
	if err != nil {
		return postgres.MapError(err, "project", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// AddMember inserts a membership row. Returns domain.ErrAlreadyExists when
// the user is already a member.
func (r *Repo) AddMember(ctx context.Context, m *domain.ProjectMember) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, addMemberSQL, m.ProjectID, m.UserID, m.Role, m.JoinedAt)
	if err != nil {
		return postgres.MapError(err, "project_member", m.UserID)
	}
	return nil
}

// GetMember returns one membership row.
func (r *Repo) GetMember(ctx context.Context, projectID, userID uuid.UUID) (*domain.ProjectMember, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	m, err := scanMember(querier.QueryRow(ctx, getMemberSQL, projectID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "project_member", userID)
	}
	return m, nil
}

// ListMembers returns a project's memberships in join order.
func (r *Repo) ListMembers(ctx context.Context, projectID uuid.UUID) ([]*domain.ProjectMember, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listMembersSQL, projectID)
	if err != nil {
		return nil, fmt.Errorf("list project members: %w", err)
	}
	defer rows.Close()

	var members []*domain.ProjectMember
	for rows.Next() {
		var m domain.ProjectMember
		if err := rows.Scan(&m.ProjectID, &m.UserID, &m.Role, &m.VideosAssigned, &m.VideosCompleted, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("scan project member: %w", err)
		}
		members = append(members, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate project members: %w", err)
	}

	if members == nil {
		members = []*domain.ProjectMember{}
	}
	return members, nil
}

// BumpAssigned adjusts the cached videos_assigned counter.
func (r *Repo) BumpAssigned(ctx context.Context, projectID, userID uuid.UUID, delta int) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, bumpAssignedSQL, projectID, userID, delta); err != nil {
		return postgres.MapError(err, "project_member", userID)
	}
	return nil
}

// BumpCompleted adjusts the cached videos_completed counter.
func (r *Repo) BumpCompleted(ctx context.Context, projectID, userID uuid.UUID, delta int) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, bumpCompletedSQL, projectID, userID, delta); err != nil {
		return postgres.MapError(err, "project_member", userID)
	}
	return nil
}

// SetCounters overwrites both cached counters with reconciled values.
func (r *Repo) SetCounters(ctx context.Context, projectID, userID uuid.UUID, assigned, completed int) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, setCountersSQL, projectID, userID, assigned, completed); err != nil {
		return postgres.MapError(err, "project_member", userID)
	}
	return nil
}

// Counts returns (total, active) project counts.
func (r *Repo) Counts(ctx context.Context) (total, active int, err error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if err := querier.QueryRow(ctx, countProjectsSQL).Scan(&total, &active); err != nil {
		return 0, 0, fmt.Errorf("count projects: %w", err)
	}
	return total, active, nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Status, &p.CreatedBy, &p.Deadline,
		&p.TotalVideos, &p.CreatedAt, &p.LastActivity,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanMember(row pgx.Row) (*domain.ProjectMember, error) {
	var m domain.ProjectMember
	err := row.Scan(&m.ProjectID, &m.UserID, &m.Role, &m.VideosAssigned, &m.VideosCompleted, &m.JoinedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func collectProjects(rows pgx.Rows) ([]*domain.Project, error) {
	var projects []*domain.Project
	for rows.Next() {
		var p domain.Project
		err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Status, &p.CreatedBy, &p.Deadline,
			&p.TotalVideos, &p.CreatedAt, &p.LastActivity,
		)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	if projects == nil {
		projects = []*domain.Project{}
	}
	return projects, nil
}
