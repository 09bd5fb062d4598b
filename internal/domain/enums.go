package domain

// ReviewStatus is the state of a review queue entry.
//
// Lifecycle: PENDING → IN_REVIEW → {APPROVED | REJECTED | NEEDS_REVISION}.
// The three outcome states are terminal; an entry never leaves them.
// Re-submission after a terminal outcome creates a new entry.
type ReviewStatus string

const (
	ReviewStatusPending       ReviewStatus = "PENDING"
	ReviewStatusInReview      ReviewStatus = "IN_REVIEW"
	ReviewStatusApproved      ReviewStatus = "APPROVED"
	ReviewStatusRejected      ReviewStatus = "REJECTED"
	ReviewStatusNeedsRevision ReviewStatus = "NEEDS_REVISION"
)

func (s ReviewStatus) String() string { return string(s) }

func (s ReviewStatus) IsValid() bool {
	switch s {
	case ReviewStatusPending, ReviewStatusInReview, ReviewStatusApproved,
		ReviewStatusRejected, ReviewStatusNeedsRevision:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed.
func (s ReviewStatus) IsTerminal() bool {
	switch s {
	case ReviewStatusApproved, ReviewStatusRejected, ReviewStatusNeedsRevision:
		return true
	}
	return false
}

// IsOutcome reports whether s is a legal argument to CompleteReview.
// Outcomes are exactly the terminal statuses.
func (s ReviewStatus) IsOutcome() bool { return s.IsTerminal() }

// NonTerminalStatuses are the statuses counted as reviewer load and covered
// by the one-active-entry-per-(video, annotator) invariant.
var NonTerminalStatuses = []ReviewStatus{ReviewStatusPending, ReviewStatusInReview}

// IssueType classifies a feedback item.
type IssueType string

const (
	IssueTypeMissedEvent     IssueType = "missed_event"
	IssueTypeIncorrectTiming IssueType = "incorrect_timing"
	IssueTypeWrongLabel      IssueType = "wrong_label"
	IssueTypeInaccurateBBox  IssueType = "inaccurate_bbox"
	IssueTypeMissingBBox     IssueType = "missing_bbox"
	IssueTypeExtraAnnotation IssueType = "extra_annotation"
	IssueTypeUnclearEvent    IssueType = "unclear_event"
	IssueTypeTechnicalIssue  IssueType = "technical_issue"
)

func (t IssueType) String() string { return string(t) }

func (t IssueType) IsValid() bool {
	switch t {
	case IssueTypeMissedEvent, IssueTypeIncorrectTiming, IssueTypeWrongLabel,
		IssueTypeInaccurateBBox, IssueTypeMissingBBox, IssueTypeExtraAnnotation,
		IssueTypeUnclearEvent, IssueTypeTechnicalIssue:
		return true
	}
	return false
}

// Severity grades how serious a feedback item is.
type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityMajor    Severity = "major"
	SeverityCritical Severity = "critical"
)

func (s Severity) String() string { return string(s) }

func (s Severity) IsValid() bool {
	switch s {
	case SeverityMinor, SeverityMajor, SeverityCritical:
		return true
	}
	return false
}

// AnnotationType identifies which kind of annotation a feedback item targets.
type AnnotationType string

const (
	AnnotationTypeTemporal AnnotationType = "temporal"
	AnnotationTypeBBox     AnnotationType = "bbox"
)

func (t AnnotationType) String() string { return string(t) }

func (t AnnotationType) IsValid() bool {
	switch t {
	case AnnotationTypeTemporal, AnnotationTypeBBox:
		return true
	}
	return false
}

// UserRole represents the system-wide role of a user.
type UserRole string

const (
	UserRoleAdmin     UserRole = "ADMIN"
	UserRoleAnnotator UserRole = "ANNOTATOR"
	UserRoleReviewer  UserRole = "REVIEWER"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleAnnotator, UserRoleReviewer:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool { return r == UserRoleAdmin }

// ProjectRole is a user's role within a single project.
type ProjectRole string

const (
	ProjectRoleLead   ProjectRole = "LEAD"
	ProjectRoleMember ProjectRole = "MEMBER"
)

func (r ProjectRole) String() string { return string(r) }

func (r ProjectRole) IsValid() bool {
	switch r {
	case ProjectRoleLead, ProjectRoleMember:
		return true
	}
	return false
}

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectStatusSetup     ProjectStatus = "SETUP"
	ProjectStatusActive    ProjectStatus = "ACTIVE"
	ProjectStatusReview    ProjectStatus = "REVIEW"
	ProjectStatusCompleted ProjectStatus = "COMPLETED"
	ProjectStatusArchived  ProjectStatus = "ARCHIVED"
)

func (s ProjectStatus) String() string { return string(s) }

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusSetup, ProjectStatusActive, ProjectStatusReview,
		ProjectStatusCompleted, ProjectStatusArchived:
		return true
	}
	return false
}

// VideoStatus tracks ingestion state. Normalization itself happens outside
// this system; only the resulting state is stored.
type VideoStatus string

const (
	VideoStatusPending    VideoStatus = "pending"
	VideoStatusNormalized VideoStatus = "normalized"
	VideoStatusFailed     VideoStatus = "failed"
)

func (s VideoStatus) String() string { return string(s) }

func (s VideoStatus) IsValid() bool {
	switch s {
	case VideoStatusPending, VideoStatusNormalized, VideoStatusFailed:
		return true
	}
	return false
}
