// Package metrics holds the service's Prometheus collectors. They are
// registered in the default registry served by pkg/metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AssessmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "neetup_assessments_total",
			Help: "Total number of submitted assessments by result source",
		},
		[]string{"source"},
	)

	CareerRecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "neetup_career_recommendations_total",
			Help: "Total number of times a career area was recommended",
		},
		[]string{"area"},
	)

	ScoringFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "neetup_scoring_fallbacks_total",
			Help: "Total number of remote scoring failures answered with the local calculator",
		},
		[]string{"reason"},
	)

	ScoringDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "neetup_scoring_request_duration_seconds",
			Help:    "Duration of remote scoring requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "neetup_notifications_total",
			Help: "Total number of processed notification tasks by outcome",
		},
		[]string{"task_type", "outcome"},
	)
)
