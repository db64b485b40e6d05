package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/petshop/internal/db"
	"github.com/nikolayk812/petshop/internal/domain"
	"github.com/nikolayk812/petshop/internal/port"
)

type orderRepository struct {
	q *db.Queries
}

func NewOrder(pool *pgxpool.Pool) (port.OrderSource, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &orderRepository{q: db.New(pool)}, nil
}

func (r *orderRepository) ListOrders(ctx context.Context) ([]domain.OrderRecord, error) {
	rows, err := r.q.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListOrders: %w", err)
	}

	orders := make([]domain.OrderRecord, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, mapOrderToDomain(row))
	}

	return orders, nil
}

func mapOrderToDomain(row db.Order) domain.OrderRecord {
	return domain.OrderRecord{
		ID:          row.ID,
		Status:      domain.ParseOrderStatus(row.Status),
		TotalAmount: row.TotalAmount,
		CreatedAt:   row.CreatedAt,
		Customer: domain.Customer{
			Name:  textOrEmpty(row.CustomerName),
			Email: textOrEmpty(row.CustomerEmail),
			Phone: textOrEmpty(row.CustomerPhone),
		},
	}
}

func textOrEmpty(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return strings.TrimSpace(t.String)
}
