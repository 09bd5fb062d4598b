package review

import (
	"context"
	"fmt"

	reviewrepo "github.com/annolab/annolab-backend/internal/adapter/postgres/review"
	"github.com/annolab/annolab-backend/internal/domain"
)

// Statistics aggregates review counts and quality averages for the given
// scope. Recomputed from store state on every call.
func (s *Service) Statistics(ctx context.Context, input StatisticsInput) (domain.ReviewStatistics, error) {
	stats, err := s.entries.Statistics(ctx, reviewrepo.Filter{
		ProjectID:   input.ProjectID,
		AnnotatorID: input.AnnotatorID,
		ReviewerID:  input.ReviewerID,
	})
	if err != nil {
		return domain.ReviewStatistics{}, fmt.Errorf("review statistics: %w", err)
	}
	return stats, nil
}
