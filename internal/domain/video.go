package domain

import (
	"time"

	"github.com/google/uuid"
)

// Video is the unit of annotation work: one video, optionally attached to a
// project and owned by one annotator. Created at ingestion, mutated by the
// distribution engine (assignment) and the annotator (completion flag),
// never deleted by the workflow core.
type Video struct {
	ID              uuid.UUID
	Filename        string
	Resolution      *string
	Framerate       *float64
	DurationSeconds *float64
	Status          VideoStatus
	ProjectID       *uuid.UUID
	AssignedTo      *uuid.UUID
	IsCompleted     bool
	ImportedAt      time.Time
	CompletedAt     *time.Time
}

// IsAssigned reports whether the video has an owning annotator.
func (v *Video) IsAssigned() bool { return v.AssignedTo != nil }

// TemporalAnnotation marks a labeled time span in a video.
type TemporalAnnotation struct {
	ID         uuid.UUID
	VideoID    uuid.UUID
	StartTime  float64
	EndTime    float64
	StartFrame int
	EndFrame   int
	Label      string
	CreatedBy  uuid.UUID
	CreatedAt  time.Time
}

// BoundingBoxAnnotation marks a labeled box on a single frame.
type BoundingBoxAnnotation struct {
	ID         uuid.UUID
	VideoID    uuid.UUID
	FrameIndex int
	X          float64
	Y          float64
	Width      float64
	Height     float64
	PartLabel  string
	CreatedBy  uuid.UUID
	CreatedAt  time.Time
}

// AnnotationCounts is the per-video tally of both annotation kinds.
type AnnotationCounts struct {
	Temporal int
	BBox     int
}

// Total returns the combined annotation count.
func (c AnnotationCounts) Total() int { return c.Temporal + c.BBox }

// DayAnnotationCount is one day of a dense daily activity series.
type DayAnnotationCount struct {
	Date     time.Time
	Temporal int
	BBox     int
}

// Total returns the combined count for the day.
func (d DayAnnotationCount) Total() int { return d.Temporal + d.BBox }
