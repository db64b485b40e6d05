package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/petshop/internal/apperr"
	"github.com/nikolayk812/petshop/internal/domain"
	"github.com/nikolayk812/petshop/internal/logger"
	"github.com/nikolayk812/petshop/internal/metrics"
	"github.com/nikolayk812/petshop/internal/port"
	"golang.org/x/text/currency"
)

// CartView is the cart together with its derived totals.
type CartView struct {
	Cart  domain.Cart
	Count int
	Total domain.Money
}

// CartService loads a cart, applies one domain operation and stores it back.
// Concurrent writes for the same owner are last-writer-wins.
type CartService struct {
	carts    port.CartRepository
	catalog  port.ProductCatalog
	currency currency.Unit
	log      *logger.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
}

func NewCartService(
	carts port.CartRepository,
	catalog port.ProductCatalog,
	shopCurrency currency.Unit,
	log *logger.Logger,
	m *metrics.Metrics,
) (*CartService, error) {
	if carts == nil {
		return nil, fmt.Errorf("cart repository is nil")
	}
	if catalog == nil {
		return nil, fmt.Errorf("product catalog is nil")
	}
	if log == nil {
		log = logger.Nop()
	}
	if m == nil {
		m = metrics.New(nil)
	}

	return &CartService{
		carts:    carts,
		catalog:  catalog,
		currency: shopCurrency,
		log:      log,
		metrics:  m,
		now:      func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *CartService) Get(ctx context.Context, ownerID string) (CartView, error) {
	cart, err := s.load(ctx, ownerID)
	if err != nil {
		return CartView{}, err
	}
	return view(cart), nil
}

// AddProduct adds one unit of the product at its current catalog price.
func (s *CartService) AddProduct(ctx context.Context, ownerID string, productID uuid.UUID) (CartView, error) {
	cart, err := s.load(ctx, ownerID)
	if err != nil {
		return CartView{}, err
	}

	if _, ok := cart.Line(productID); !ok {
		product, err := s.catalog.GetProduct(ctx, productID)
		if errors.Is(err, port.ErrProductNotFound) {
			return CartView{}, apperr.Wrap(apperr.CodeNotFound, err, "product not found")
		}
		if err != nil {
			return CartView{}, apperr.Wrap(apperr.CodeDependency, fmt.Errorf("catalog.GetProduct: %w", err), "product catalog unavailable")
		}
		if !product.Price.SameCurrency(domain.Money{Currency: s.currency}) {
			return CartView{}, apperr.New(apperr.CodeValidation,
				fmt.Sprintf("product is priced in %s, shop currency is %s", product.Price.Currency, s.currency))
		}

		cart.Add(product, s.now())
	} else {
		// existing line keeps its captured price, only the quantity changes
		cart.Add(domain.Product{ID: productID}, s.now())
	}

	return s.save(ctx, cart, "add")
}

func (s *CartService) UpdateQuantity(ctx context.Context, ownerID string, productID uuid.UUID, quantity int) (CartView, error) {
	cart, err := s.load(ctx, ownerID)
	if err != nil {
		return CartView{}, err
	}

	cart.UpdateQuantity(productID, quantity)

	return s.save(ctx, cart, "update_quantity")
}

// Remove deletes the single stored line and returns the cart as it is after
// the delete. A missing line is not an error.
func (s *CartService) Remove(ctx context.Context, ownerID string, productID uuid.UUID) (CartView, error) {
	if ownerID == "" {
		return CartView{}, apperr.New(apperr.CodeValidation, "ownerID is empty")
	}

	removed, err := s.carts.DeleteItem(ctx, ownerID, productID)
	if err != nil {
		return CartView{}, fmt.Errorf("carts.DeleteItem: %w", err)
	}
	if removed {
		s.metrics.CartMutations.WithLabelValues("remove").Inc()
		s.log.Debug(s.log.WithFields(ctx, map[string]any{
			"owner_id":   ownerID,
			"product_id": productID.String(),
		}), "cart.item_removed")
	}

	cart, err := s.load(ctx, ownerID)
	if err != nil {
		return CartView{}, err
	}

	return view(cart), nil
}

func (s *CartService) Clear(ctx context.Context, ownerID string) error {
	if ownerID == "" {
		return apperr.New(apperr.CodeValidation, "ownerID is empty")
	}

	if _, err := s.carts.DeleteCart(ctx, ownerID); err != nil {
		return fmt.Errorf("carts.DeleteCart: %w", err)
	}

	s.metrics.CartMutations.WithLabelValues("clear").Inc()
	s.log.Info(s.log.WithField(ctx, "owner_id", ownerID), "cart.cleared")

	return nil
}

func (s *CartService) load(ctx context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, apperr.New(apperr.CodeValidation, "ownerID is empty")
	}

	cart, err := s.carts.GetCart(ctx, ownerID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("carts.GetCart: %w", err)
	}
	cart.Currency = s.currency

	return cart, nil
}

func (s *CartService) save(ctx context.Context, cart domain.Cart, op string) (CartView, error) {
	if err := s.carts.SaveCart(ctx, cart); err != nil {
		return CartView{}, fmt.Errorf("carts.SaveCart: %w", err)
	}

	s.metrics.CartMutations.WithLabelValues(op).Inc()
	s.log.Debug(s.log.WithFields(ctx, map[string]any{
		"owner_id": cart.OwnerID,
		"op":       op,
		"count":    cart.Count(),
	}), "cart.saved")

	return view(cart), nil
}

func view(cart domain.Cart) CartView {
	return CartView{
		Cart:  cart,
		Count: cart.Count(),
		Total: cart.Total(),
	}
}
