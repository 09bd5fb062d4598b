package review

import "github.com/annolab/annolab-backend/internal/domain"

// Severity penalties for the accuracy score. The penalty is linear: the contract
// is "monotonically non-increasing in issue count and severity", not a
// calibrated model.
const (
	penaltyCritical = 0.30
	penaltyMajor    = 0.10
	penaltyMinor    = 0.03
)

// accuracyScore converts itemized feedback into a score in [0, 1].
// Each issue subtracts its severity penalty; the result is clamped at 0.
func accuracyScore(feedback []FeedbackInput) float64 {
	score := 1.0
	for _, fb := range feedback {
		switch fb.Severity {
		case domain.SeverityCritical:
			score -= penaltyCritical
		case domain.SeverityMajor:
			score -= penaltyMajor
		case domain.SeverityMinor:
			score -= penaltyMinor
		}
	}
	if score < 0 {
		return 0
	}
	return score
}

// completenessScore is 1.0 when the submission contained any annotations at
// submission time, else 0.0. A placeholder policy: presence of work is not
// the same as completeness of work.
func completenessScore(entry *domain.ReviewEntry) float64 {
	if entry.HasAnnotations() {
		return 1.0
	}
	return 0.0
}
