package review

import (
	"math"
	"testing"

	"github.com/annolab/annolab-backend/internal/domain"
)

func fb(severity domain.Severity) FeedbackInput {
	return FeedbackInput{
		AnnotationType: domain.AnnotationTypeTemporal,
		IssueType:      domain.IssueTypeWrongLabel,
		Severity:       severity,
		Comment:        "issue",
	}
}

func TestAccuracyScore_Formula(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		feedback []FeedbackInput
		want     float64
	}{
		{"no issues", nil, 1.0},
		{"one minor", []FeedbackInput{fb(domain.SeverityMinor)}, 0.97},
		{"one major", []FeedbackInput{fb(domain.SeverityMajor)}, 0.90},
		{"one critical", []FeedbackInput{fb(domain.SeverityCritical)}, 0.70},
		{
			"one critical one minor",
			[]FeedbackInput{fb(domain.SeverityCritical), fb(domain.SeverityMinor)},
			0.67,
		},
		{
			"clamped at zero",
			[]FeedbackInput{
				fb(domain.SeverityCritical), fb(domain.SeverityCritical),
				fb(domain.SeverityCritical), fb(domain.SeverityCritical),
			},
			0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := accuracyScore(tt.feedback)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("accuracyScore = %v, want %v", got, tt.want)
			}
		})
	}
}

// Adding one more issue of any severity never increases the score.
func TestAccuracyScore_Monotonic(t *testing.T) {
	t.Parallel()

	base := []FeedbackInput{fb(domain.SeverityMajor), fb(domain.SeverityMinor)}
	baseScore := accuracyScore(base)

	for _, severity := range []domain.Severity{
		domain.SeverityMinor, domain.SeverityMajor, domain.SeverityCritical,
	} {
		extended := append(append([]FeedbackInput{}, base...), fb(severity))
		if got := accuracyScore(extended); got > baseScore {
			t.Errorf("adding %s issue increased score: %v > %v", severity, got, baseScore)
		}
	}
}

func TestCompletenessScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry domain.ReviewEntry
		want  float64
	}{
		{"temporal only", domain.ReviewEntry{AnnotationCount: 4}, 1.0},
		{"bbox only", domain.ReviewEntry{BBoxCount: 2}, 1.0},
		{"both", domain.ReviewEntry{AnnotationCount: 1, BBoxCount: 1}, 1.0},
		{"empty submission", domain.ReviewEntry{}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := completenessScore(&tt.entry); got != tt.want {
				t.Errorf("completenessScore = %v, want %v", got, tt.want)
			}
		})
	}
}
