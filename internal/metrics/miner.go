package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	minerSearchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "powledger",
		Subsystem: "miner",
		Name:      "search_total",
		Help:      "Count of nonce searches.",
	}, []string{"difficulty", "status"})

	minerAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "powledger",
		Subsystem: "miner",
		Name:      "attempts_total",
		Help:      "Count of hashed nonces.",
	}, []string{"status"})

	minerSearchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "powledger",
		Subsystem: "miner",
		Name:      "search_duration_seconds",
		Help:      "Duration of a nonce search.",
		Buckets:   []float64{.001, .01, .1, .5, 1, 2.5, 5, 10, 20, 40, 80},
	}, []string{"status"})
)

// Miner tracks the proof-of-work search.
type Miner struct{}

// NewMiner constructs a Miner collector.
func NewMiner() *Miner {
	return &Miner{}
}

// ObserveSearch records one nonce search. A canceled search reports its error.
func (m Miner) ObserveSearch(err error, difficulty uint32, attempts uint64, started time.Time) {
	status := "success"
	if err != nil {
		status = "canceled"
	}
	minerSearchTotal.WithLabelValues(strconv.FormatUint(uint64(difficulty), 10), status).Inc()
	minerAttemptsTotal.WithLabelValues(status).Add(float64(attempts))
	minerSearchDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}
