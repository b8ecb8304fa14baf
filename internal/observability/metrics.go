package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	runsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "reengage",
		Subsystem: "reconciler",
		Name:      "runs_total",
		Help:      "Reconciliation passes executed, by outcome.",
	}, []string{"outcome"})
	transitionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "reengage",
		Subsystem: "reconciler",
		Name:      "transitions_total",
		Help:      "Tracking record transitions, by kind.",
	}, []string{"kind"})
	emailsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "reengage",
		Subsystem: "reconciler",
		Name:      "emails_total",
		Help:      "Re-engagement emails dispatched, by trigger.",
	}, []string{"trigger"})
	lastRunGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "reengage",
		Subsystem: "reconciler",
		Name:      "last_run_timestamp_seconds",
		Help:      "Unix timestamp of the most recent completed reconciliation pass.",
	})
)

func init() {
	prometheus.MustRegister(runsTotal, transitionsTotal, emailsTotal, lastRunGauge)
}

// RecordRun counts one reconciliation pass and updates the run watermark.
func RecordRun(outcome string, finished time.Time) {
	runsTotal.WithLabelValues(outcome).Inc()
	if !finished.IsZero() {
		lastRunGauge.Set(float64(finished.Unix()))
	}
}

// RecordTransition counts one tracking record transition
// (onboarded, completed, reminded, pruned, deleted).
func RecordTransition(kind string) {
	transitionsTotal.WithLabelValues(kind).Inc()
}

// RecordEmail counts one dispatched email by trigger (completion, reminder).
func RecordEmail(trigger string) {
	emailsTotal.WithLabelValues(trigger).Inc()
}
