package repository

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/petshop/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestMapCartLineToAddItemParams(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name     string
		quantity int
		wantErr  bool
	}{
		{name: "one", quantity: 1},
		{name: "int32 max", quantity: math.MaxInt32},
		{name: "zero: error", quantity: 0, wantErr: true},
		{name: "wraps to 1 in int32: error", quantity: 1<<32 + 1, wantErr: true},
		{name: "wraps negative in int32: error", quantity: 3_000_000_000, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := domain.CartLine{
				ProductID: uuid.New(),
				Name:      "Hay Bale",
				UnitPrice: domain.Money{Amount: decimal.RequireFromString("7.50"), Currency: currency.USD},
				Quantity:  tt.quantity,
			}

			params, err := mapCartLineToAddItemParams("owner", 0, line, now)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, int64(tt.quantity), int64(params.Quantity))
			assert.Equal(t, now, params.CreatedAt)
			assert.Equal(t, "USD", params.PriceCurrency)
		})
	}
}
