package port

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/nikolayk812/petshop/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

type OrderSource interface {
	ListOrders(ctx context.Context) ([]domain.OrderRecord, error)
}

type ProductCatalog interface {
	GetProduct(ctx context.Context, productID uuid.UUID) (domain.Product, error)
}
