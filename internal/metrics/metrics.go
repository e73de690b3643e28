package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Verdicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plantsight_verdicts_total",
			Help: "Verdicts produced by the prediction gate, by outcome and rejection reason",
		},
		[]string{"outcome", "reason"},
	)

	InferenceDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "plantsight_inference_duration_seconds",
			Help: "Duration of model inference per upload",
		},
	)

	ArchiveFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "plantsight_archive_failures_total",
			Help: "Rejected uploads that could not be written to the review directory",
		},
	)
)
