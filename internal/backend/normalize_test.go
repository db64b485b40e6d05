package backend

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestNormalizeOrder(t *testing.T) {
	v := validator.New(validator.WithRequiredStructEnabled())
	amount := decimal.NewFromInt(10)
	price := decimal.NewFromInt(20)
	now := time.Now()

	tests := []struct {
		name       string
		raw        rawOrder
		wantAmount decimal.Decimal
		wantErr    error
		wantAnyErr bool
	}{
		{
			name:       "totalAmount wins over totalPrice",
			raw:        rawOrder{ID: "a", TotalAmount: &amount, TotalPrice: &price, CreatedAt: now},
			wantAmount: amount,
		},
		{
			name:       "totalPrice fallback",
			raw:        rawOrder{ID: "a", TotalPrice: &price, CreatedAt: now},
			wantAmount: price,
		},
		{
			name:    "no amount: rejected",
			raw:     rawOrder{ID: "a", CreatedAt: now},
			wantErr: errNoAmount,
		},
		{
			name:       "missing createdAt: rejected",
			raw:        rawOrder{ID: "a", TotalAmount: &amount},
			wantAnyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeOrder(v, tt.raw)
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.wantAnyErr:
				require.Error(t, err)
			default:
				require.NoError(t, err)
				assert.True(t, tt.wantAmount.Equal(got.TotalAmount))
			}
		})
	}
}

func TestNormalizeProductRejectsBadCurrency(t *testing.T) {
	v := validator.New(validator.WithRequiredStructEnabled())
	price := decimal.NewFromInt(1)

	_, err := normalizeProduct(v, rawProduct{ID: uuid.New(), Name: "Leash", Price: &price, Currency: "ZZZ"}, currency.USD)
	require.Error(t, err)
}

func TestNormalizeProductPriceScale(t *testing.T) {
	v := validator.New(validator.WithRequiredStructEnabled())

	tests := []struct {
		name    string
		price   string
		wantErr error
	}{
		{name: "two places", price: "9.99"},
		{name: "trailing zero beyond scale", price: "9.990"},
		{name: "integer", price: "10"},
		{name: "three places: rejected", price: "9.999", wantErr: errPriceScale},
		{name: "negative: rejected", price: "-1", wantErr: errNegativeAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price := decimal.RequireFromString(tt.price)

			got, err := normalizeProduct(v, rawProduct{ID: uuid.New(), Name: "Hamster Wheel", Price: &price}, currency.USD)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, price.Equal(got.Price.Amount))
			assert.Equal(t, currency.USD, got.Price.Currency)
		})
	}
}
