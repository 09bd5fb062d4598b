package domain

import "testing"

func TestReviewStatus_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status ReviewStatus
		want   bool
	}{
		{ReviewStatusPending, true},
		{ReviewStatusInReview, true},
		{ReviewStatusApproved, true},
		{ReviewStatusRejected, true},
		{ReviewStatusNeedsRevision, true},
		{ReviewStatus("pending"), false},
		{ReviewStatus(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			t.Parallel()
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("ReviewStatus(%q).IsValid() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestReviewStatus_IsTerminal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status ReviewStatus
		want   bool
	}{
		{ReviewStatusPending, false},
		{ReviewStatusInReview, false},
		{ReviewStatusApproved, true},
		{ReviewStatusRejected, true},
		{ReviewStatusNeedsRevision, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			t.Parallel()
			if got := tt.status.IsTerminal(); got != tt.want {
				t.Errorf("ReviewStatus(%q).IsTerminal() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestIssueType_IsValid(t *testing.T) {
	t.Parallel()

	valid := []IssueType{
		IssueTypeMissedEvent, IssueTypeIncorrectTiming, IssueTypeWrongLabel,
		IssueTypeInaccurateBBox, IssueTypeMissingBBox, IssueTypeExtraAnnotation,
		IssueTypeUnclearEvent, IssueTypeTechnicalIssue,
	}
	for _, it := range valid {
		if !it.IsValid() {
			t.Errorf("IssueType(%q).IsValid() = false, want true", it)
		}
	}
	if IssueType("MISSED_EVENT").IsValid() {
		t.Error("uppercase issue type should be invalid; normalization happens at the store boundary")
	}
}

func TestSeverity_IsValid(t *testing.T) {
	t.Parallel()

	if !SeverityMinor.IsValid() || !SeverityMajor.IsValid() || !SeverityCritical.IsValid() {
		t.Error("canonical severities must be valid")
	}
	if Severity("CRITICAL").IsValid() {
		t.Error("uppercase severity should be invalid")
	}
}

func TestUserRole_IsAdmin(t *testing.T) {
	t.Parallel()

	if !UserRoleAdmin.IsAdmin() {
		t.Error("ADMIN should be admin")
	}
	if UserRoleReviewer.IsAdmin() || UserRoleAnnotator.IsAdmin() {
		t.Error("non-admin roles must not be admin")
	}
}

func TestProjectMember_CompletionRate(t *testing.T) {
	t.Parallel()

	m := ProjectMember{VideosAssigned: 4, VideosCompleted: 1}
	if got := m.CompletionRate(); got != 25 {
		t.Errorf("CompletionRate() = %v, want 25", got)
	}

	empty := ProjectMember{}
	if got := empty.CompletionRate(); got != 0 {
		t.Errorf("CompletionRate() with no assignments = %v, want 0", got)
	}
}
