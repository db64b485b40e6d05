package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the shop collectors. Each instance owns its registerer so
// tests can build isolated copies.
type Metrics struct {
	CartMutations      *prometheus.CounterVec
	OrderFetchFailures prometheus.Counter
	SummaryRecentSales prometheus.Histogram
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		CartMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "petshop",
			Subsystem: "cart",
			Name:      "mutations_total",
			Help:      "Cart mutations by operation.",
		}, []string{"op"}),
		OrderFetchFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "petshop",
			Subsystem: "dashboard",
			Name:      "order_fetch_failures_total",
			Help:      "Order list fetches that failed and were summarized as empty.",
		}),
		SummaryRecentSales: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "petshop",
			Subsystem: "dashboard",
			Name:      "recent_sales",
			Help:      "Number of recent sales returned per summary.",
			Buckets:   prometheus.LinearBuckets(0, 1, 6),
		}),
	}

	if reg != nil {
		reg.MustRegister(m.CartMutations, m.OrderFetchFailures, m.SummaryRecentSales)
	}

	return m
}
