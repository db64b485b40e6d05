package service

import (
	"context"
	"fmt"

	"github.com/nikolayk812/petshop/internal/domain"
	"github.com/nikolayk812/petshop/internal/logger"
	"github.com/nikolayk812/petshop/internal/metrics"
	"github.com/nikolayk812/petshop/internal/port"
	"golang.org/x/text/currency"
)

type DashboardView struct {
	domain.DashboardSummary
	Currency currency.Unit
}

type DashboardService struct {
	orders   port.OrderSource
	currency currency.Unit
	log      *logger.Logger
	metrics  *metrics.Metrics
}

func NewDashboardService(orders port.OrderSource, shopCurrency currency.Unit, log *logger.Logger, m *metrics.Metrics) (*DashboardService, error) {
	if orders == nil {
		return nil, fmt.Errorf("order source is nil")
	}
	if log == nil {
		log = logger.Nop()
	}
	if m == nil {
		m = metrics.New(nil)
	}

	return &DashboardService{
		orders:   orders,
		currency: shopCurrency,
		log:      log,
		metrics:  m,
	}, nil
}

// Summary never fails: when the order list cannot be fetched the failure is
// logged and an empty snapshot is summarized instead.
func (s *DashboardService) Summary(ctx context.Context) DashboardView {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		s.metrics.OrderFetchFailures.Inc()
		s.log.Error(ctx, "dashboard.orders.fetch_failed", err)
		orders = nil
	}

	summary := domain.Summarize(orders)
	s.metrics.SummaryRecentSales.Observe(float64(len(summary.RecentSales)))

	return DashboardView{
		DashboardSummary: summary,
		Currency:         s.currency,
	}
}
