package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

// Mul returns the amount multiplied by n in the same currency.
func (m Money) Mul(n int) Money {
	return Money{
		Amount:   m.Amount.Mul(decimal.NewFromInt(int64(n))),
		Currency: m.Currency,
	}
}

func (m Money) SameCurrency(other Money) bool {
	return m.Currency.String() == other.Currency.String()
}
