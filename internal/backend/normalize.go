package backend

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/nikolayk812/petshop/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// rawOrder mirrors what the storefront backend returns. Older records carry
// totalPrice instead of totalAmount.
type rawOrder struct {
	ID          string           `json:"id" validate:"required"`
	Status      string           `json:"status"`
	TotalAmount *decimal.Decimal `json:"totalAmount"`
	TotalPrice  *decimal.Decimal `json:"totalPrice"`
	CreatedAt   time.Time        `json:"createdAt" validate:"required"`
	Customer    *rawCustomer     `json:"customer"`
}

type rawCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type rawProduct struct {
	ID       uuid.UUID        `json:"id" validate:"required"`
	Name     string           `json:"name" validate:"required"`
	Price    *decimal.Decimal `json:"price" validate:"required"`
	Currency string           `json:"currency" validate:"omitempty,len=3"`
}

var (
	errNoAmount       = errors.New("neither totalAmount nor totalPrice is set")
	errNegativeAmount = errors.New("amount is negative")
	errPriceScale     = errors.New("price has more than 2 decimal places")
)

// priceScale matches the cart_items.price_amount column.
const priceScale = 2

func normalizeOrder(v *validator.Validate, raw rawOrder) (domain.OrderRecord, error) {
	if err := v.Struct(raw); err != nil {
		return domain.OrderRecord{}, fmt.Errorf("v.Struct: %w", err)
	}

	amount := raw.TotalAmount
	if amount == nil {
		amount = raw.TotalPrice
	}
	if amount == nil {
		return domain.OrderRecord{}, errNoAmount
	}
	if amount.IsNegative() {
		return domain.OrderRecord{}, errNegativeAmount
	}

	var customer domain.Customer
	if raw.Customer != nil {
		customer = domain.Customer{
			Name:  strings.TrimSpace(raw.Customer.Name),
			Email: strings.TrimSpace(raw.Customer.Email),
			Phone: strings.TrimSpace(raw.Customer.Phone),
		}
	}

	return domain.OrderRecord{
		ID:          strings.TrimSpace(raw.ID),
		Status:      domain.ParseOrderStatus(raw.Status),
		TotalAmount: *amount,
		CreatedAt:   raw.CreatedAt.UTC(),
		Customer:    customer,
	}, nil
}

func normalizeProduct(v *validator.Validate, raw rawProduct, fallback currency.Unit) (domain.Product, error) {
	if err := v.Struct(raw); err != nil {
		return domain.Product{}, fmt.Errorf("v.Struct: %w", err)
	}
	if raw.Price.IsNegative() {
		return domain.Product{}, errNegativeAmount
	}
	if !raw.Price.Equal(raw.Price.Round(priceScale)) {
		return domain.Product{}, errPriceScale
	}

	unit := fallback
	if raw.Currency != "" {
		parsed, err := currency.ParseISO(raw.Currency)
		if err != nil {
			return domain.Product{}, fmt.Errorf("currency[%s] is not valid: %w", raw.Currency, err)
		}
		unit = parsed
	}

	return domain.Product{
		ID:    raw.ID,
		Name:  strings.TrimSpace(raw.Name),
		Price: domain.Money{Amount: *raw.Price, Currency: unit},
	}, nil
}
