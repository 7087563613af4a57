package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mempoolAddTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "powledger",
		Subsystem: "mempool",
		Name:      "add_total",
		Help:      "Count of transactions offered to the pool.",
	}, []string{"status"})

	mempoolSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "powledger",
		Subsystem: "mempool",
		Name:      "size",
		Help:      "Number of pooled transactions.",
	})
)

// Mempool tracks the transaction pool.
type Mempool struct{}

// NewMempool constructs a Mempool collector.
func NewMempool() *Mempool {
	return &Mempool{}
}

// ObserveAdd records whether a transaction was accepted.
func (m Mempool) ObserveAdd(err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	mempoolAddTotal.WithLabelValues(status).Inc()
}

// SetSize publishes the pool size.
func (m Mempool) SetSize(size int) {
	mempoolSize.Set(float64(size))
}
