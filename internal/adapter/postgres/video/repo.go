// Package video implements the work-item store using PostgreSQL.
// Videos are the unit of annotation work; the distribution engine mutates
// assignment under row locks taken here.
package video

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

// Repo provides video persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new video repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const videoColumns = `id, filename, resolution, framerate, duration_seconds, status,
	project_id, assigned_to, is_completed, imported_at, completed_at`

const getByIDSQL = `SELECT ` + videoColumns + ` FROM videos WHERE id = $1`

const getByIDForUpdateSQL = getByIDSQL + ` FOR UPDATE`

// listUnassignedSQL orders by (imported_at, id) so round-robin distribution
// is deterministic. FOR UPDATE serializes concurrent distribution runs.
const listUnassignedSQL = `
SELECT ` + videoColumns + `
FROM videos
WHERE project_id = $1 AND assigned_to IS NULL
ORDER BY imported_at, id
FOR UPDATE`

const listByIDsForUpdateSQL = `
SELECT ` + videoColumns + `
FROM videos
WHERE id = ANY($1::uuid[])
ORDER BY imported_at, id
FOR UPDATE`

const listAssignedSQL = `
SELECT ` + videoColumns + `
FROM videos
WHERE assigned_to = $1 AND ($2::uuid IS NULL OR project_id = $2)
ORDER BY imported_at, id`

const listByProjectSQL = `
SELECT ` + videoColumns + `
FROM videos
WHERE project_id = $1
ORDER BY imported_at, id`

const assignSQL = `UPDATE videos SET assigned_to = $2 WHERE id = $1`

const attachSQL = `
UPDATE videos SET project_id = $2
WHERE id = $1 AND project_id IS NULL`

const markCompletedSQL = `
UPDATE videos SET is_completed = true, completed_at = $2
WHERE id = $1 AND is_completed = false`

const countByProjectSQL = `SELECT count(*) FROM videos WHERE project_id = $1`

const userCountsSQL = `
SELECT count(*),
       count(*) FILTER (WHERE is_completed)
FROM videos
WHERE assigned_to = $1 AND ($2::uuid IS NULL OR project_id = $2)`

const memberCountsSQL = `
SELECT assigned_to,
       count(*),
       count(*) FILTER (WHERE is_completed)
FROM videos
WHERE project_id = $1 AND assigned_to IS NOT NULL
GROUP BY assigned_to`

const projectCountsSQL = `
SELECT count(*),
       count(*) FILTER (WHERE assigned_to IS NOT NULL),
       count(*) FILTER (WHERE is_completed)
FROM videos
WHERE project_id = $1`

const systemCountsSQL = `
SELECT count(*),
       count(*) FILTER (WHERE is_completed),
       count(*) FILTER (WHERE assigned_to IS NULL)
FROM videos`

// GetByID returns a video by ID. Returns domain.ErrNotFound if absent.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	v, err := scanVideo(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "video", id)
	}
	return v, nil
}

// GetByIDForUpdate returns a video by ID with a row lock. Must be called
// inside a transaction; the lock serializes concurrent mutations of the row.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	v, err := scanVideo(querier.QueryRow(ctx, getByIDForUpdateSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "video", id)
	}
	return v, nil
}

// ListUnassignedForUpdate returns a project's unassigned videos in stable
// creation order, locking the rows for the duration of the transaction.
func (r *Repo) ListUnassignedForUpdate(ctx context.Context, projectID uuid.UUID) ([]*domain.Video, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listUnassignedSQL, projectID)
	if err != nil {
		return nil, fmt.Errorf("list unassigned videos: %w", err)
	}
	defer rows.Close()

	return collectVideos(rows)
}

// ListByIDsForUpdate returns the given videos in stable creation order with
// row locks. Unknown IDs are silently absent from the result.
func (r *Repo) ListByIDsForUpdate(ctx context.Context, ids []uuid.UUID) ([]*domain.Video, error) {
	if len(ids) == 0 {
		return []*domain.Video{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByIDsForUpdateSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("list videos by ids: %w", err)
	}
	defer rows.Close()

	return collectVideos(rows)
}

// ListAssigned returns videos owned by a user, optionally scoped to a project.
func (r *Repo) ListAssigned(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID) ([]*domain.Video, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listAssignedSQL, userID, projectID)
	if err != nil {
		return nil, fmt.Errorf("list assigned videos: %w", err)
	}
	defer rows.Close()

	return collectVideos(rows)
}

// ListByProject returns all of a project's videos in creation order.
func (r *Repo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.Video, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByProjectSQL, projectID)
	if err != nil {
		return nil, fmt.Errorf("list project videos: %w", err)
	}
	defer rows.Close()

	return collectVideos(rows)
}

// Assign sets the owning annotator of a video.
func (r *Repo) Assign(ctx context.Context, videoID, userID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, assignSQL, videoID, userID)
	if err != nil {
		return postgres.MapError(err, "video", videoID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("video %s: %w", videoID, domain.ErrNotFound)
	}
	return nil
}

// AttachToProject attaches a video to a project if it has none yet.
// Returns true when the row was attached, false when it already belonged
// to a project or does not exist.
func (r *Repo) AttachToProject(ctx context.Context, videoID, projectID uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, attachSQL, videoID, projectID)
	if err != nil {
		return false, postgres.MapError(err, "video", videoID)
	}
	return tag.RowsAffected() == 1, nil
}

// MarkCompleted flips the completion flag once. Returns domain.ErrInvalidState
// when the video was already completed, domain.ErrNotFound when absent.
func (r *Repo) MarkCompleted(ctx context.Context, videoID uuid.UUID, at time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, markCompletedSQL, videoID, at)
	if err != nil {
		return postgres.MapError(err, "video", videoID)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM videos WHERE id = $1)`, videoID).Scan(&exists); err != nil {
			return postgres.MapError(err, "video", videoID)
		}
		if !exists {
			return fmt.Errorf("video %s: %w", videoID, domain.ErrNotFound)
		}
		return fmt.Errorf("video %s already completed: %w", videoID, domain.ErrInvalidState)
	}
	return nil
}

// CountByProject returns the authoritative video count for a project.
func (r *Repo) CountByProject(ctx context.Context, projectID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countByProjectSQL, projectID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count project videos: %w", err)
	}
	return count, nil
}

// UserCounts returns (assigned, completed) video counts for a user,
// optionally scoped to a project.
func (r *Repo) UserCounts(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID) (assigned, completed int, err error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if err := querier.QueryRow(ctx, userCountsSQL, userID, projectID).Scan(&assigned, &completed); err != nil {
		return 0, 0, fmt.Errorf("count user videos: %w", err)
	}
	return assigned, completed, nil
}

// MemberCounts groups a project's (assigned, completed) counts by annotator.
// This is the authoritative source the membership counters reconcile against.
func (r *Repo) MemberCounts(ctx context.Context, projectID uuid.UUID) (map[uuid.UUID]domain.MemberVideoCounts, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, memberCountsSQL, projectID)
	if err != nil {
		return nil, fmt.Errorf("count member videos: %w", err)
	}
	defer rows.Close()

	counts := make(map[uuid.UUID]domain.MemberVideoCounts)
	for rows.Next() {
		var userID uuid.UUID
		var c domain.MemberVideoCounts
		if err := rows.Scan(&userID, &c.Assigned, &c.Completed); err != nil {
			return nil, fmt.Errorf("scan member counts: %w", err)
		}
		counts[userID] = c
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate member counts: %w", err)
	}

	return counts, nil
}

// ProjectCounts returns (total, assigned, completed) video counts for a
// project.
func (r *Repo) ProjectCounts(ctx context.Context, projectID uuid.UUID) (total, assigned, completed int, err error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if err := querier.QueryRow(ctx, projectCountsSQL, projectID).Scan(&total, &assigned, &completed); err != nil {
		return 0, 0, 0, fmt.Errorf("count project videos: %w", err)
	}
	return total, assigned, completed, nil
}

// SystemCounts returns system-wide (total, completed, unassigned) video counts.
func (r *Repo) SystemCounts(ctx context.Context) (total, completed, unassigned int, err error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if err := querier.QueryRow(ctx, systemCountsSQL).Scan(&total, &completed, &unassigned); err != nil {
		return 0, 0, 0, fmt.Errorf("count videos: %w", err)
	}
	return total, completed, unassigned, nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanVideo(row pgx.Row) (*domain.Video, error) {
	var v domain.Video
	err := row.Scan(
		&v.ID, &v.Filename, &v.Resolution, &v.Framerate, &v.DurationSeconds,
		&v.Status, &v.ProjectID, &v.AssignedTo, &v.IsCompleted,
		&v.ImportedAt, &v.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func collectVideos(rows pgx.Rows) ([]*domain.Video, error) {
	var videos []*domain.Video
	for rows.Next() {
		var v domain.Video
		err := rows.Scan(
			&v.ID, &v.Filename, &v.Resolution, &v.Framerate, &v.DurationSeconds,
			&v.Status, &v.ProjectID, &v.AssignedTo, &v.IsCompleted,
			&v.ImportedAt, &v.CompletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan video: %w", err)
		}
		videos = append(videos, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate videos: %w", err)
	}

	if videos == nil {
		videos = []*domain.Video{}
	}
	return videos, nil
}
