package domain

import "github.com/google/uuid"

// Product is the catalog snapshot a cart line is created from.
type Product struct {
	ID    uuid.UUID
	Name  string
	Price Money
}
