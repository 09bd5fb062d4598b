package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/annolab/annolab-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an active user with the given role. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Username:     "user-" + suffix,
		FullName:     "Test User " + suffix,
		Role:         role,
		IsActive:     true,
		PasswordHash: "$2a$10$testhashtesthashtesthashtesthashtesthashtesthashtesth",
		CreatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, username, full_name, role, is_active, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Username, user.FullName, string(user.Role), user.IsActive, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedProject creates an ACTIVE project owned by createdBy. Returns a filled domain.Project.
func SeedProject(t *testing.T, pool *pgxpool.Pool, createdBy uuid.UUID) domain.Project {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	project := domain.Project{
		ID:           uuid.New(),
		Name:         "Project " + suffix,
		Status:       domain.ProjectStatusActive,
		CreatedBy:    createdBy,
		CreatedAt:    now,
		LastActivity: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO projects (id, name, status, created_by, total_videos, created_at, last_activity)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		project.ID, project.Name, string(project.Status), project.CreatedBy, project.TotalVideos,
		project.CreatedAt, project.LastActivity,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProject insert project: %v", err)
	}

	return project
}

// SeedMember adds a user to a project as MEMBER. Returns a filled domain.ProjectMember.
func SeedMember(t *testing.T, pool *pgxpool.Pool, projectID, userID uuid.UUID) domain.ProjectMember {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	member := domain.ProjectMember{
		ProjectID: projectID,
		UserID:    userID,
		Role:      domain.ProjectRoleMember,
		JoinedAt:  now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO project_members (project_id, user_id, role, videos_assigned, videos_completed, joined_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		member.ProjectID, member.UserID, string(member.Role), member.VideosAssigned,
		member.VideosCompleted, member.JoinedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMember insert project_member: %v", err)
	}

	return member
}

// SeedVideo creates an unassigned video attached to projectID (pass uuid.Nil
// for a detached video). The importedAt timestamp controls distribution order.
func SeedVideo(t *testing.T, pool *pgxpool.Pool, projectID uuid.UUID, importedAt time.Time) domain.Video {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	video := domain.Video{
		ID:         uuid.New(),
		Filename:   "video-" + suffix + ".mp4",
		Status:     domain.VideoStatusNormalized,
		ImportedAt: importedAt.UTC().Truncate(time.Microsecond),
	}
	if projectID != uuid.Nil {
		video.ProjectID = &projectID
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO videos (id, filename, status, project_id, is_completed, imported_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		video.ID, video.Filename, string(video.Status), video.ProjectID, video.IsCompleted, video.ImportedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVideo insert video: %v", err)
	}

	return video
}

// AssignVideo sets the video's owner directly, bypassing the distribution
// engine. Used to arrange preconditions.
func AssignVideo(t *testing.T, pool *pgxpool.Pool, videoID, userID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`UPDATE videos SET assigned_to = $2 WHERE id = $1`, videoID, userID)
	if err != nil {
		t.Fatalf("testhelper: AssignVideo: %v", err)
	}
}

// SeedTemporalAnnotations inserts n temporal annotations on the video
// authored by createdBy at the given time.
func SeedTemporalAnnotations(t *testing.T, pool *pgxpool.Pool, videoID, createdBy uuid.UUID, n int, at time.Time) {
	t.Helper()
	ctx := context.Background()

	for i := 0; i < n; i++ {
		_, err := pool.Exec(ctx,
			`INSERT INTO temporal_annotations (id, video_id, start_time, end_time, start_frame, end_frame, label, created_by, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			uuid.New(), videoID, float64(i), float64(i)+1.5, i*30, i*30+45, "event", createdBy, at.UTC(),
		)
		if err != nil {
			t.Fatalf("testhelper: SeedTemporalAnnotations insert [%d]: %v", i, err)
		}
	}
}

// SeedBBoxAnnotations inserts n bounding-box annotations on the video
// authored by createdBy at the given time.
func SeedBBoxAnnotations(t *testing.T, pool *pgxpool.Pool, videoID, createdBy uuid.UUID, n int, at time.Time) {
	t.Helper()
	ctx := context.Background()

	for i := 0; i < n; i++ {
		_, err := pool.Exec(ctx,
			`INSERT INTO bbox_annotations (id, video_id, frame_index, x, y, width, height, part_label, created_by, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			uuid.New(), videoID, i, 10.0, 20.0, 100.0, 50.0, "part", createdBy, at.UTC(),
		)
		if err != nil {
			t.Fatalf("testhelper: SeedBBoxAnnotations insert [%d]: %v", i, err)
		}
	}
}

// SeedReviewEntry creates a review entry in the given status. Returns the
// filled domain.ReviewEntry.
func SeedReviewEntry(t *testing.T, pool *pgxpool.Pool, videoID, annotatorID uuid.UUID, status domain.ReviewStatus, priority int) domain.ReviewEntry {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	entry := domain.ReviewEntry{
		ID:          uuid.New(),
		VideoID:     videoID,
		AnnotatorID: annotatorID,
		Status:      status,
		Priority:    priority,
		SubmittedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO review_entries (id, video_id, annotator_id, status, priority, submitted_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.ID, entry.VideoID, entry.AnnotatorID, string(entry.Status), entry.Priority, entry.SubmittedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReviewEntry insert review_entry: %v", err)
	}

	return entry
}
