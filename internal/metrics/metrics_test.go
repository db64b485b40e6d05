package metrics_test

import (
	"testing"

	"github.com/nikolayk812/petshop/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.CartMutations.WithLabelValues("add").Inc()
	m.CartMutations.WithLabelValues("add").Inc()
	m.OrderFetchFailures.Inc()
	m.SummaryRecentSales.Observe(3)

	assert.InDelta(t, 2, testutil.ToFloat64(m.CartMutations.WithLabelValues("add")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.OrderFetchFailures), 0)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 3)
}

func TestNewWithoutRegisterer(t *testing.T) {
	m := metrics.New(nil)
	m.OrderFetchFailures.Inc()
	assert.InDelta(t, 1, testutil.ToFloat64(m.OrderFetchFailures), 0)
}
