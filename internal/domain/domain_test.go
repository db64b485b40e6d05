package domain_test

import (
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/nikolayk812/petshop/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

func randomProduct() domain.Product {
	return domain.Product{
		ID:    uuid.MustParse(gofakeit.UUID()),
		Name:  gofakeit.ProductName(),
		Price: randomMoney(),
	}
}

func randomMoney() domain.Money {
	return domain.Money{
		Amount:   decimal.NewFromFloat(gofakeit.Price(1, 100)).Round(2),
		Currency: currency.USD,
	}
}
