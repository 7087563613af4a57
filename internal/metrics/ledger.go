// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerAppendTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "powledger",
		Subsystem: "ledger",
		Name:      "append_total",
		Help:      "Count of block append attempts by outcome.",
	}, []string{"reason"})

	ledgerAppendDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "powledger",
		Subsystem: "ledger",
		Name:      "append_duration_seconds",
		Help:      "Duration of validating and adopting a single block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"reason"})

	ledgerReplaceTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "powledger",
		Subsystem: "ledger",
		Name:      "replace_total",
		Help:      "Count of chain replacement attempts by outcome.",
	}, []string{"reason"})

	ledgerReplaceDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "powledger",
		Subsystem: "ledger",
		Name:      "replace_duration_seconds",
		Help:      "Duration of validating a received chain.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"reason"})

	ledgerHeight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "powledger",
		Subsystem: "ledger",
		Name:      "height",
		Help:      "Index of the latest adopted block.",
	})

	ledgerCumulativeDifficulty = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "powledger",
		Subsystem: "ledger",
		Name:      "cumulative_difficulty",
		Help:      "Accumulated work of the adopted chain.",
	})
)

// Ledger tracks block adoption and fork resolution.
type Ledger struct{}

// NewLedger constructs a Ledger collector.
func NewLedger() *Ledger {
	return &Ledger{}
}

// ObserveAppend records a block append outcome. reason is "ok" for adopted blocks.
func (m Ledger) ObserveAppend(reason string, started time.Time) {
	reason = orUnknown(reason)
	ledgerAppendTotal.WithLabelValues(reason).Inc()
	ledgerAppendDuration.WithLabelValues(reason).Observe(time.Since(started).Seconds())
}

// ObserveReplace records a chain replacement outcome.
func (m Ledger) ObserveReplace(reason string, started time.Time) {
	reason = orUnknown(reason)
	ledgerReplaceTotal.WithLabelValues(reason).Inc()
	ledgerReplaceDuration.WithLabelValues(reason).Observe(time.Since(started).Seconds())
}

// SetTip publishes the adopted chain tip.
func (m Ledger) SetTip(height uint64, cumulativeDifficulty float64) {
	ledgerHeight.Set(float64(height))
	ledgerCumulativeDifficulty.Set(cumulativeDifficulty)
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
