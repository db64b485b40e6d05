package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

var knownStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// ParseOrderStatus maps s onto a known status ignoring case and surrounding
// whitespace. Unknown values are kept as given.
func ParseOrderStatus(s string) OrderStatus {
	s = strings.TrimSpace(s)
	for _, known := range knownStatuses {
		if strings.EqualFold(s, string(known)) {
			return known
		}
	}
	// "Canceled" is spelled both ways by the backend.
	if strings.EqualFold(s, "canceled") {
		return OrderStatusCancelled
	}
	return OrderStatus(s)
}

// IsTerminal reports whether the order left the fulfilment pipeline.
// Anything not explicitly terminal, including unknown statuses, is active.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

type Customer struct {
	Name  string
	Email string
	Phone string
}

type OrderRecord struct {
	ID          string
	Status      OrderStatus
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
	Customer    Customer
}
