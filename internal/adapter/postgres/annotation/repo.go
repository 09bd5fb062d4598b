// Package annotation implements read access to temporal and bounding-box
// annotations. The workflow core only counts and aggregates annotations;
// annotation CRUD lives in the annotator-facing API.
package annotation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/annolab/annolab-backend/internal/adapter/postgres"
	"github.com/annolab/annolab-backend/internal/domain"
)

// Repo provides annotation aggregation backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new annotation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const countsByVideoSQL = `
SELECT
    (SELECT count(*) FROM temporal_annotations WHERE video_id = $1),
    (SELECT count(*) FROM bbox_annotations WHERE video_id = $1)`

const countsByUserSinceSQL = `
SELECT
    (SELECT count(*) FROM temporal_annotations t
     JOIN videos v ON t.video_id = v.id
     WHERE t.created_by = $1 AND t.created_at >= $2
       AND ($3::uuid IS NULL OR v.project_id = $3)),
    (SELECT count(*) FROM bbox_annotations b
     JOIN videos v ON b.video_id = v.id
     WHERE b.created_by = $1 AND b.created_at >= $2
       AND ($3::uuid IS NULL OR v.project_id = $3))`

// dailyCountsSQL returns only days with activity; the analytics service
// densifies the series so zero days are present in reports.
const dailyCountsSQL = `
SELECT day, sum(temporal)::int, sum(bbox)::int FROM (
    SELECT date_trunc('day', t.created_at) AS day, count(*) AS temporal, 0 AS bbox
    FROM temporal_annotations t
    JOIN videos v ON t.video_id = v.id
    WHERE t.created_by = $1 AND t.created_at >= $2 AND t.created_at < $3
      AND ($4::uuid IS NULL OR v.project_id = $4)
    GROUP BY day
    UNION ALL
    SELECT date_trunc('day', b.created_at) AS day, 0 AS temporal, count(*) AS bbox
    FROM bbox_annotations b
    JOIN videos v ON b.video_id = v.id
    WHERE b.created_by = $1 AND b.created_at >= $2 AND b.created_at < $3
      AND ($4::uuid IS NULL OR v.project_id = $4)
    GROUP BY day
) daily
GROUP BY day
ORDER BY day`

const countsByProjectSQL = `
SELECT
    (SELECT count(*) FROM temporal_annotations t
     JOIN videos v ON t.video_id = v.id WHERE v.project_id = $1),
    (SELECT count(*) FROM bbox_annotations b
     JOIN videos v ON b.video_id = v.id WHERE v.project_id = $1)`

const countsByProjectMemberSQL = `
SELECT
    (SELECT count(*) FROM temporal_annotations t
     JOIN videos v ON t.video_id = v.id
     WHERE v.project_id = $1 AND t.created_by = $2),
    (SELECT count(*) FROM bbox_annotations b
     JOIN videos v ON b.video_id = v.id
     WHERE v.project_id = $1 AND b.created_by = $2)`

const systemCountsSQL = `
SELECT
    (SELECT count(*) FROM temporal_annotations),
    (SELECT count(*) FROM bbox_annotations)`

// CountsByVideo returns the current annotation tally of a video. The review
// service snapshots these counts at submission time.
func (r *Repo) CountsByVideo(ctx context.Context, videoID uuid.UUID) (domain.AnnotationCounts, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var c domain.AnnotationCounts
	if err := querier.QueryRow(ctx, countsByVideoSQL, videoID).Scan(&c.Temporal, &c.BBox); err != nil {
		return domain.AnnotationCounts{}, fmt.Errorf("count annotations by video: %w", err)
	}
	return c, nil
}

// CountsByUserSince returns a user's annotation tally since the given time,
// optionally scoped to a project.
func (r *Repo) CountsByUserSince(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID, since time.Time) (domain.AnnotationCounts, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var c domain.AnnotationCounts
	if err := querier.QueryRow(ctx, countsByUserSinceSQL, userID, since, projectID).Scan(&c.Temporal, &c.BBox); err != nil {
		return domain.AnnotationCounts{}, fmt.Errorf("count annotations by user: %w", err)
	}
	return c, nil
}

// DailyCountsByUser returns per-day annotation counts in [from, to).
// Days without activity are omitted; callers densify.
func (r *Repo) DailyCountsByUser(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID, from, to time.Time) ([]domain.DayAnnotationCount, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, dailyCountsSQL, userID, from, to, projectID)
	if err != nil {
		return nil, fmt.Errorf("daily annotation counts: %w", err)
	}
	defer rows.Close()

	var counts []domain.DayAnnotationCount
	for rows.Next() {
		var dc domain.DayAnnotationCount
		if err := rows.Scan(&dc.Date, &dc.Temporal, &dc.BBox); err != nil {
			return nil, fmt.Errorf("scan daily count: %w", err)
		}
		counts = append(counts, dc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily counts: %w", err)
	}

	if counts == nil {
		counts = []domain.DayAnnotationCount{}
	}
	return counts, nil
}

// CountsByProject returns the annotation tally across a project's videos.
func (r *Repo) CountsByProject(ctx context.Context, projectID uuid.UUID) (domain.AnnotationCounts, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var c domain.AnnotationCounts
	if err := querier.QueryRow(ctx, countsByProjectSQL, projectID).Scan(&c.Temporal, &c.BBox); err != nil {
		return domain.AnnotationCounts{}, fmt.Errorf("count annotations by project: %w", err)
	}
	return c, nil
}

// CountsByProjectMember returns one member's annotation tally within a project.
func (r *Repo) CountsByProjectMember(ctx context.Context, projectID, userID uuid.UUID) (domain.AnnotationCounts, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var c domain.AnnotationCounts
	if err := querier.QueryRow(ctx, countsByProjectMemberSQL, projectID, userID).Scan(&c.Temporal, &c.BBox); err != nil {
		return domain.AnnotationCounts{}, fmt.Errorf("count annotations by member: %w", err)
	}
	return c, nil
}

// SystemCounts returns the system-wide annotation tally.
func (r *Repo) SystemCounts(ctx context.Context) (domain.AnnotationCounts, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var c domain.AnnotationCounts
	if err := querier.QueryRow(ctx, systemCountsSQL).Scan(&c.Temporal, &c.BBox); err != nil {
		return domain.AnnotationCounts{}, fmt.Errorf("count annotations: %w", err)
	}
	return c, nil
}
