// Package review implements the review queue store using PostgreSQL.
// Fixed-shape queries use raw SQL constants; the queue listing is built
// dynamically with squirrel. State transitions rely on FOR UPDATE row locks
// taken inside the caller's transaction.
package review

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/annolab/annolab-backend/internal/adapter/postgres"
	"github.com/annolab/annolab-backend/internal/domain"
)

// Repo provides review queue persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new review repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const entryColumns = `id, video_id, project_id, annotator_id, reviewer_id, status, priority,
	quality_score, accuracy_score, completeness_score, comments,
	annotation_count, bbox_count,
	submitted_at, review_started_at, reviewed_at, review_time_seconds`

const createSQL = `
INSERT INTO review_entries (id, video_id, project_id, annotator_id, reviewer_id, status,
	priority, annotation_count, bbox_count, submitted_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + entryColumns

const getByIDSQL = `SELECT ` + entryColumns + ` FROM review_entries WHERE id = $1`

const getByIDForUpdateSQL = getByIDSQL + ` FOR UPDATE`

// getActiveSQL backs the one-active-entry invariant check. Runs under the
// video row lock taken by the submit transaction.
const getActiveSQL = `
SELECT ` + entryColumns + `
FROM review_entries
WHERE video_id = $1 AND annotator_id = $2 AND status IN ('PENDING', 'IN_REVIEW')`

const startSQL = `
UPDATE review_entries
SET reviewer_id = $2, status = 'IN_REVIEW', review_started_at = $3
WHERE id = $1
RETURNING ` + entryColumns

const completeSQL = `
UPDATE review_entries
SET status = $2, quality_score = $3, accuracy_score = $4, completeness_score = $5,
    comments = $6, reviewed_at = $7, review_time_seconds = $8
WHERE id = $1
RETURNING ` + entryColumns

const setReviewerSQL = `UPDATE review_entries SET reviewer_id = $2 WHERE id = $1`

// loadsSQL counts non-terminal entries per reviewer. Candidates with no
// entries are absent from the result; callers treat that as zero load.
const loadsSQL = `
SELECT reviewer_id, count(*)
FROM review_entries
WHERE reviewer_id = ANY($1::uuid[]) AND status IN ('PENDING', 'IN_REVIEW')
GROUP BY reviewer_id`

const insertFeedbackSQL = `
INSERT INTO review_feedback (id, review_id, annotation_type, annotation_id,
	issue_type, severity, comment, suggestion, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

const listFeedbackSQL = `
SELECT id, review_id, annotation_type, annotation_id, issue_type, severity,
       comment, suggestion, created_at
FROM review_feedback
WHERE review_id = $1
ORDER BY created_at, id`

const countPendingSQL = `
SELECT count(*),
       count(*) FILTER (WHERE status = 'PENDING')
FROM review_entries`

// Create inserts a new review entry in PENDING status and returns the
// persisted row. The partial unique index on (video_id, annotator_id)
// surfaces races as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, e *domain.ReviewEntry) (*domain.ReviewEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		e.ID, e.VideoID, e.ProjectID, e.AnnotatorID, e.ReviewerID, e.Status,
		e.Priority, e.AnnotationCount, e.BBoxCount, e.SubmittedAt)
	created, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, "review_entry", e.ID)
	}
	return created, nil
}

// GetByID returns a review entry by ID. Returns domain.ErrNotFound if absent.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ReviewEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEntry(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "review_entry", id)
	}
	return e, nil
}

// GetByIDForUpdate returns a review entry with a row lock. This is the
// serialization point for StartReview: of two racing claims, exactly one
// observes PENDING.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.ReviewEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEntry(querier.QueryRow(ctx, getByIDForUpdateSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "review_entry", id)
	}
	return e, nil
}

// GetActive returns the non-terminal entry for (videoID, annotatorID), or
// domain.ErrNotFound when none exists.
func (r *Repo) GetActive(ctx context.Context, videoID, annotatorID uuid.UUID) (*domain.ReviewEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEntry(querier.QueryRow(ctx, getActiveSQL, videoID, annotatorID))
	if err != nil {
		return nil, postgres.MapError(err, "review_entry", videoID)
	}
	return e, nil
}

// Start moves an entry to IN_REVIEW and records the claiming reviewer.
// Status legality is checked by the service under the row lock.
func (r *Repo) Start(ctx context.Context, id, reviewerID uuid.UUID, at time.Time) (*domain.ReviewEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEntry(querier.QueryRow(ctx, startSQL, id, reviewerID, at))
	if err != nil {
		return nil, postgres.MapError(err, "review_entry", id)
	}
	return e, nil
}

// CompleteParams carries the terminal-state fields written at completion.
type CompleteParams struct {
	Outcome           domain.ReviewStatus
	QualityScore      float64
	AccuracyScore     *float64
	CompletenessScore *float64
	Comments          *string
	ReviewedAt        time.Time
	ReviewTimeSeconds *int
}

// Complete writes the terminal outcome and scores. Scores are never mutated
// after this call.
func (r *Repo) Complete(ctx context.Context, id uuid.UUID, p CompleteParams) (*domain.ReviewEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, completeSQL,
		id, p.Outcome, p.QualityScore, p.AccuracyScore, p.CompletenessScore,
		p.Comments, p.ReviewedAt, p.ReviewTimeSeconds)
	e, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, "review_entry", id)
	}
	return e, nil
}

// SetReviewer records an auto-assigned reviewer on a PENDING entry.
func (r *Repo) SetReviewer(ctx context.Context, id, reviewerID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, setReviewerSQL, id, reviewerID); err != nil {
		return postgres.MapError(err, "review_entry", id)
	}
	return nil
}

// List returns queue entries matching the filter, ordered
// (priority DESC, submitted_at ASC).
func (r *Repo) List(ctx context.Context, f Filter) ([]*domain.ReviewEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	q := builder.
		Select("id", "video_id", "project_id", "annotator_id", "reviewer_id", "status", "priority",
			"quality_score", "accuracy_score", "completeness_score", "comments",
			"annotation_count", "bbox_count",
			"submitted_at", "review_started_at", "reviewed_at", "review_time_seconds").
		From("review_entries").
		OrderBy("priority DESC", "submitted_at ASC", "id ASC")

	if f.ProjectID != nil {
		q = q.Where(sq.Eq{"project_id": *f.ProjectID})
	}
	if f.ReviewerID != nil {
		q = q.Where(sq.Eq{"reviewer_id": *f.ReviewerID})
	}
	if f.AnnotatorID != nil {
		q = q.Where(sq.Eq{"annotator_id": *f.AnnotatorID})
	}
	if f.Status != nil {
		q = q.Where(sq.Eq{"status": *f.Status})
	}
	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit))
	}

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build queue query: %w", err)
	}

	rows, err := querier.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list review entries: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

// Loads returns the non-terminal entry count per reviewer. Reviewers without
// entries are absent from the map.
func (r *Repo) Loads(ctx context.Context, reviewerIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	if len(reviewerIDs) == 0 {
		return map[uuid.UUID]int{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, loadsSQL, reviewerIDs)
	if err != nil {
		return nil, fmt.Errorf("count reviewer loads: %w", err)
	}
	defer rows.Close()

	loads := make(map[uuid.UUID]int, len(reviewerIDs))
	for rows.Next() {
		var id uuid.UUID
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("scan reviewer load: %w", err)
		}
		loads[id] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviewer loads: %w", err)
	}

	return loads, nil
}

// AddFeedback persists feedback items for a completed review. Items are
// immutable once written.
func (r *Repo) AddFeedback(ctx context.Context, items []*domain.ReviewFeedback) error {
	if len(items) == 0 {
		return nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, fb := range items {
		batch.Queue(insertFeedbackSQL,
			fb.ID, fb.ReviewID, fb.AnnotationType, fb.AnnotationID,
			fb.IssueType, fb.Severity, fb.Comment, fb.Suggestion, fb.CreatedAt)
	}

	results := querier.SendBatch(ctx, batch)
	defer results.Close()

	for range items {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "review_feedback", uuid.Nil)
		}
	}
	return nil
}

// ListFeedback returns a review's feedback items in creation order.
func (r *Repo) ListFeedback(ctx context.Context, reviewID uuid.UUID) ([]*domain.ReviewFeedback, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listFeedbackSQL, reviewID)
	if err != nil {
		return nil, fmt.Errorf("list review feedback: %w", err)
	}
	defer rows.Close()

	var items []*domain.ReviewFeedback
	for rows.Next() {
		var fb domain.ReviewFeedback
		err := rows.Scan(&fb.ID, &fb.ReviewID, &fb.AnnotationType, &fb.AnnotationID,
			&fb.IssueType, &fb.Severity, &fb.Comment, &fb.Suggestion, &fb.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan review feedback: %w", err)
		}
		items = append(items, &fb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review feedback: %w", err)
	}

	if items == nil {
		items = []*domain.ReviewFeedback{}
	}
	return items, nil
}

// Statistics aggregates review stats for the filter scope, computed
// entirely in SQL.
func (r *Repo) Statistics(ctx context.Context, f Filter) (domain.ReviewStatistics, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	q := builder.
		Select(
			"count(*)",
			"count(*) FILTER (WHERE status = 'PENDING')",
			"count(*) FILTER (WHERE status = 'IN_REVIEW')",
			"count(*) FILTER (WHERE status = 'APPROVED')",
			"count(*) FILTER (WHERE status = 'REJECTED')",
			"count(*) FILTER (WHERE status = 'NEEDS_REVISION')",
			"count(*) FILTER (WHERE status IN ('APPROVED', 'REJECTED', 'NEEDS_REVISION'))",
			"avg(quality_score) FILTER (WHERE quality_score IS NOT NULL)",
			"avg(accuracy_score) FILTER (WHERE accuracy_score IS NOT NULL)",
			"avg(review_time_seconds) FILTER (WHERE review_time_seconds IS NOT NULL)",
		).
		From("review_entries")

	if f.ProjectID != nil {
		q = q.Where(sq.Eq{"project_id": *f.ProjectID})
	}
	if f.ReviewerID != nil {
		q = q.Where(sq.Eq{"reviewer_id": *f.ReviewerID})
	}
	if f.AnnotatorID != nil {
		q = q.Where(sq.Eq{"annotator_id": *f.AnnotatorID})
	}

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return domain.ReviewStatistics{}, fmt.Errorf("build statistics query: %w", err)
	}

	var (
		stats                                              domain.ReviewStatistics
		pending, inReview, approved, rejected, needsRev    int
		avgQuality, avgAccuracy, avgSeconds                *float64
	)
	err = querier.QueryRow(ctx, sqlStr, args...).Scan(
		&stats.TotalReviews, &pending, &inReview, &approved, &rejected, &needsRev,
		&stats.CompletedReviews, &avgQuality, &avgAccuracy, &avgSeconds,
	)
	if err != nil {
		return domain.ReviewStatistics{}, fmt.Errorf("review statistics: %w", err)
	}

	stats.StatusCounts = map[domain.ReviewStatus]int{
		domain.ReviewStatusPending:       pending,
		domain.ReviewStatusInReview:      inReview,
		domain.ReviewStatusApproved:      approved,
		domain.ReviewStatusRejected:      rejected,
		domain.ReviewStatusNeedsRevision: needsRev,
	}
	if avgQuality != nil {
		stats.AverageQualityScore = *avgQuality
	}
	if avgAccuracy != nil {
		stats.AverageAccuracyScore = *avgAccuracy
	}
	if avgSeconds != nil {
		stats.AverageReviewSeconds = int(*avgSeconds)
	}
	return stats, nil
}

// QualityDistribution buckets completed-review quality scores 1..5 for a
// project (scores below 1 land in bucket 1).
func (r *Repo) QualityDistribution(ctx context.Context, projectID uuid.UUID) (map[int]int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	const distSQL = `
SELECT greatest(1, least(5, floor(quality_score)::int)), count(*)
FROM review_entries
WHERE project_id = $1 AND quality_score IS NOT NULL
GROUP BY 1`

	rows, err := querier.Query(ctx, distSQL, projectID)
	if err != nil {
		return nil, fmt.Errorf("quality distribution: %w", err)
	}
	defer rows.Close()

	dist := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for rows.Next() {
		var bucket, n int
		if err := rows.Scan(&bucket, &n); err != nil {
			return nil, fmt.Errorf("scan quality bucket: %w", err)
		}
		dist[bucket] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quality buckets: %w", err)
	}

	return dist, nil
}

// Counts returns (total, pending) entry counts for the system overview.
func (r *Repo) Counts(ctx context.Context) (total, pending int, err error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if err := querier.QueryRow(ctx, countPendingSQL).Scan(&total, &pending); err != nil {
		return 0, 0, fmt.Errorf("count review entries: %w", err)
	}
	return total, pending, nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanEntry(row pgx.Row) (*domain.ReviewEntry, error) {
	var e domain.ReviewEntry
	err := row.Scan(
		&e.ID, &e.VideoID, &e.ProjectID, &e.AnnotatorID, &e.ReviewerID, &e.Status, &e.Priority,
		&e.QualityScore, &e.AccuracyScore, &e.CompletenessScore, &e.Comments,
		&e.AnnotationCount, &e.BBoxCount,
		&e.SubmittedAt, &e.ReviewStartedAt, &e.ReviewedAt, &e.ReviewTimeSeconds,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func collectEntries(rows pgx.Rows) ([]*domain.ReviewEntry, error) {
	var entries []*domain.ReviewEntry
	for rows.Next() {
		var e domain.ReviewEntry
		err := rows.Scan(
			&e.ID, &e.VideoID, &e.ProjectID, &e.AnnotatorID, &e.ReviewerID, &e.Status, &e.Priority,
			&e.QualityScore, &e.AccuracyScore, &e.CompletenessScore, &e.Comments,
			&e.AnnotationCount, &e.BBoxCount,
			&e.SubmittedAt, &e.ReviewStartedAt, &e.ReviewedAt, &e.ReviewTimeSeconds,
		)
		if err != nil {
			return nil, fmt.Errorf("scan review entry: %w", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review entries: %w", err)
	}

	if entries == nil {
		entries = []*domain.ReviewEntry{}
	}
	return entries, nil
}
