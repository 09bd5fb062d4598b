// Package metrics provides Prometheus metrics for the annotation workflow.
// The services consume them through small recorder interfaces; this package
// is the single implementation behind the /metrics endpoint.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/annolab/annolab-backend/internal/domain"
)

// Metrics holds the workflow counters.
type Metrics struct {
	reviewsSubmitted  prometheus.Counter
	autoAssignMisses  prometheus.Counter
	reviewsCompleted  *prometheus.CounterVec
	distributionRuns  prometheus.Counter
	distributedVideos prometheus.Counter
}

// New creates the workflow metrics and registers them on the registry.
func New(registry *prometheus.Registry) (*Metrics, error) {
	m := &Metrics{
		reviewsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "review_submissions_total",
			Help: "Total number of videos submitted for review.",
		}),
		autoAssignMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "review_auto_assign_misses_total",
			Help: "Submissions with auto-assign requested but no reviewer available.",
		}),
		reviewsCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reviews_completed_total",
			Help: "Completed reviews by terminal outcome.",
		}, []string{"outcome"}),
		distributionRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "distribution_runs_total",
			Help: "Total number of work distribution runs.",
		}),
		distributedVideos: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "distribution_videos_total",
			Help: "Total number of videos handed out by distribution runs.",
		}),
	}

	collectors := []prometheus.Collector{
		m.reviewsSubmitted,
		m.autoAssignMisses,
		m.reviewsCompleted,
		m.distributionRuns,
		m.distributedVideos,
	}
	for _, c := range collectors {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("register workflow metrics: %w", err)
		}
	}
	return m, nil
}

// ReviewSubmitted counts one new review queue entry.
func (m *Metrics) ReviewSubmitted() { m.reviewsSubmitted.Inc() }

// AutoAssignMiss counts a submission left without a reviewer.
func (m *Metrics) AutoAssignMiss() { m.autoAssignMisses.Inc() }

// ReviewCompleted counts one completed review by outcome.
func (m *Metrics) ReviewCompleted(outcome domain.ReviewStatus) {
	m.reviewsCompleted.WithLabelValues(outcome.String()).Inc()
}

// DistributionRun counts one distribution run and the videos it handed out.
func (m *Metrics) DistributionRun(videos int) {
	m.distributionRuns.Inc()
	m.distributedVideos.Add(float64(videos))
}
