package domain

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

const (
	RecentSalesLimit = 5

	GuestDisplayName = "Guest User"
	NoContact        = "No contact"
)

type DashboardSummary struct {
	ActiveOrderCount int
	TotalRevenue     decimal.Decimal
	RecentSales      []RecentSale
}

type RecentSale struct {
	ID          string
	DisplayName string
	Contact     string
	Amount      decimal.Decimal
	CreatedAt   time.Time
}

// Summarize derives the dashboard view from a snapshot of orders.
// Revenue and recent sales count Delivered orders only, while every
// non-terminal order is active. Orders sharing CreatedAt are ordered by ID.
func Summarize(orders []OrderRecord) DashboardSummary {
	summary := DashboardSummary{
		TotalRevenue: decimal.Zero,
		RecentSales:  []RecentSale{},
	}

	var delivered []OrderRecord
	for _, o := range orders {
		if !o.Status.IsTerminal() {
			summary.ActiveOrderCount++
		}
		if o.Status == OrderStatusDelivered {
			summary.TotalRevenue = summary.TotalRevenue.Add(o.TotalAmount)
			delivered = append(delivered, o)
		}
	}

	slices.SortStableFunc(delivered, func(a, b OrderRecord) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	for _, o := range delivered[:min(len(delivered), RecentSalesLimit)] {
		summary.RecentSales = append(summary.RecentSales, RecentSale{
			ID:          o.ID,
			DisplayName: o.Customer.DisplayName(),
			Contact:     o.Customer.Contact(),
			Amount:      o.TotalAmount,
			CreatedAt:   o.CreatedAt,
		})
	}

	return summary
}

func (c Customer) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return GuestDisplayName
}

func (c Customer) Contact() string {
	switch {
	case c.Email != "":
		return c.Email
	case c.Phone != "":
		return c.Phone
	default:
		return NoContact
	}
}
