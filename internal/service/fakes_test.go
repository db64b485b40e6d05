package service_test

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/nikolayk812/petshop/internal/domain"
	"github.com/nikolayk812/petshop/internal/port"
)

type memoryCarts struct {
	carts   map[string]domain.Cart
	saveErr   error
	deleteErr error
	saves     int
	deletes   int
}

func newMemoryCarts() *memoryCarts {
	return &memoryCarts{carts: map[string]domain.Cart{}}
}

func (m *memoryCarts) GetCart(_ context.Context, ownerID string) (domain.Cart, error) {
	cart, ok := m.carts[ownerID]
	if !ok {
		return domain.Cart{OwnerID: ownerID}, nil
	}
	cart.Lines = append([]domain.CartLine(nil), cart.Lines...)
	return cart, nil
}

func (m *memoryCarts) SaveCart(_ context.Context, cart domain.Cart) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	cart.Lines = append([]domain.CartLine(nil), cart.Lines...)
	m.carts[cart.OwnerID] = cart
	return nil
}

func (m *memoryCarts) DeleteItem(ctx context.Context, ownerID string, productID uuid.UUID) (bool, error) {
	if m.deleteErr != nil {
		return false, m.deleteErr
	}
	cart, _ := m.GetCart(ctx, ownerID)
	if !cart.Remove(productID) {
		return false, nil
	}
	m.deletes++
	m.carts[ownerID] = cart
	return true, nil
}

func (m *memoryCarts) DeleteCart(_ context.Context, ownerID string) (bool, error) {
	_, ok := m.carts[ownerID]
	delete(m.carts, ownerID)
	return ok, nil
}

type fakeCatalog struct {
	products map[uuid.UUID]domain.Product
	err      error
	calls    int
}

func (f *fakeCatalog) GetProduct(_ context.Context, productID uuid.UUID) (domain.Product, error) {
	f.calls++
	if f.err != nil {
		return domain.Product{}, f.err
	}
	p, ok := f.products[productID]
	if !ok {
		return domain.Product{}, port.ErrProductNotFound
	}
	return p, nil
}

type fakeOrders struct {
	orders []domain.OrderRecord
	err    error
}

func (f fakeOrders) ListOrders(context.Context) ([]domain.OrderRecord, error) {
	return f.orders, f.err
}

var errBoom = errors.New("boom")
