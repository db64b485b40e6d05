package repository

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/petshop/internal/db"
	"github.com/nikolayk812/petshop/internal/domain"
	"github.com/nikolayk812/petshop/internal/port"
	"golang.org/x/text/currency"
)

type cartRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewCart(pool *pgxpool.Pool) (port.CartRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &cartRepository{
		q:    db.New(pool),
		pool: pool,
	}, nil
}

func NewCartWithTx(tx pgx.Tx) port.CartRepository {
	return &cartRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *cartRepository) GetCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, fmt.Errorf("ownerID is empty")
	}

	dbCartItems, err := r.q.GetCart(ctx, ownerID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("q.GetCart: %w", err)
	}

	lines, err := mapGetCartRowsToDomain(dbCartItems)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("mapGetCartRowsToDomain: %w", err)
	}

	return domain.Cart{
		OwnerID: ownerID,
		Lines:   lines,
	}, nil
}

// SaveCart replaces the stored lines of cart.OwnerID with cart.Lines.
func (r *cartRepository) SaveCart(ctx context.Context, cart domain.Cart) error {
	if cart.OwnerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	_, err := withTx(ctx, r.pool, r.q, func(q *db.Queries) (struct{}, error) {
		if _, err := q.DeleteCart(ctx, cart.OwnerID); err != nil {
			return struct{}{}, fmt.Errorf("q.DeleteCart: %w", err)
		}

		now := time.Now().UTC()
		for i, line := range cart.Lines {
			params, err := mapCartLineToAddItemParams(cart.OwnerID, i, line, now)
			if err != nil {
				return struct{}{}, fmt.Errorf("mapCartLineToAddItemParams: %w", err)
			}
			if err := q.AddItem(ctx, params); err != nil {
				return struct{}{}, fmt.Errorf("q.AddItem[%s]: %w", line.ProductID, err)
			}
		}

		return struct{}{}, nil
	})
	if err != nil {
		return fmt.Errorf("withTx: %w", err)
	}

	return nil
}

func (r *cartRepository) DeleteItem(ctx context.Context, ownerID string, productID uuid.UUID) (bool, error) {
	if ownerID == "" {
		return false, fmt.Errorf("ownerID is empty")
	}

	rowsAffected, err := r.q.DeleteItem(ctx, db.DeleteItemParams{
		OwnerID:   ownerID,
		ProductID: productID,
	})
	if err != nil {
		return false, fmt.Errorf("q.DeleteItem: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *cartRepository) DeleteCart(ctx context.Context, ownerID string) (bool, error) {
	if ownerID == "" {
		return false, fmt.Errorf("ownerID is empty")
	}

	rowsAffected, err := r.q.DeleteCart(ctx, ownerID)
	if err != nil {
		return false, fmt.Errorf("q.DeleteCart: %w", err)
	}

	return rowsAffected > 0, nil
}

func mapCartLineToAddItemParams(ownerID string, position int, line domain.CartLine, now time.Time) (db.AddItemParams, error) {
	if line.Quantity < 1 || line.Quantity > math.MaxInt32 {
		return db.AddItemParams{}, fmt.Errorf("quantity[%d] of product[%s] is out of range", line.Quantity, line.ProductID)
	}
	if position > math.MaxInt32 {
		return db.AddItemParams{}, fmt.Errorf("position[%d] is out of range", position)
	}

	createdAt := line.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	return db.AddItemParams{
		OwnerID:       ownerID,
		ProductID:     line.ProductID,
		ProductName:   line.Name,
		PriceAmount:   line.UnitPrice.Amount,
		PriceCurrency: line.UnitPrice.Currency.String(),
		Quantity:      int32(line.Quantity),
		Position:      int32(position),
		CreatedAt:     createdAt,
	}, nil
}

func mapGetCartRowToDomain(row db.GetCartRow) (domain.CartLine, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.CartLine{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	return domain.CartLine{
		ProductID: row.ProductID,
		Name:      row.ProductName,
		UnitPrice: domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
		Quantity:  int(row.Quantity),
		CreatedAt: row.CreatedAt,
	}, nil
}

func mapGetCartRowsToDomain(rows []db.GetCartRow) ([]domain.CartLine, error) {
	var lines []domain.CartLine

	for _, row := range rows {
		line, err := mapGetCartRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapGetCartRowToDomain: %w", err)
		}

		lines = append(lines, line)
	}

	return lines, nil
}
