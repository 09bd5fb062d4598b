package review

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/annolab/annolab-backend/internal/domain"
)

// selectReviewer picks the least-loaded active reviewer, excluding the
// submitting annotator. Load is the count of non-terminal entries a reviewer
// currently holds. Ties go to the lowest user ID, so selection is
// deterministic regardless of directory iteration order. Returns nil when no
// candidate exists; the caller leaves the entry unassigned.
//
// The policy is intentionally load-only: it is not weighted by historical
// review speed or quality. Candidates come from the whole reviewer
// directory, not the video's project; any active reviewer may pick up work
// from any project.
func (s *Service) selectReviewer(ctx context.Context, excludeUserID uuid.UUID) (*domain.User, error) {
	reviewers, err := s.users.ListActiveByRole(ctx, domain.UserRoleReviewer)
	if err != nil {
		return nil, fmt.Errorf("list reviewers: %w", err)
	}

	candidates := make([]*domain.User, 0, len(reviewers))
	ids := make([]uuid.UUID, 0, len(reviewers))
	for _, u := range reviewers {
		if u.ID == excludeUserID {
			continue
		}
		candidates = append(candidates, u)
		ids = append(ids, u.ID)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	loads, err := s.entries.Loads(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("reviewer loads: %w", err)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		li, lj := loads[candidates[i].ID], loads[candidates[j].ID]
		if li != lj {
			return li < lj
		}
		return bytes.Compare(candidates[i].ID[:], candidates[j].ID[:]) < 0
	})

	return candidates[0], nil
}
