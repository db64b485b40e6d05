package port

import (
	"context"
	"github.com/google/uuid"
	"github.com/nikolayk812/petshop/internal/domain"
)

type CartRepository interface {
	GetCart(ctx context.Context, ownerID string) (domain.Cart, error)
	SaveCart(ctx context.Context, cart domain.Cart) error
	DeleteItem(ctx context.Context, ownerID string, productID uuid.UUID) (bool, error)
	DeleteCart(ctx context.Context, ownerID string) (bool, error)
}
