package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// MaxLineQuantity bounds the quantity a client may set on a single line.
const MaxLineQuantity = 10_000

type Cart struct {
	OwnerID  string
	Currency currency.Unit
	Lines    []CartLine
}

type CartLine struct {
	ProductID uuid.UUID
	Name      string
	UnitPrice Money
	Quantity  int

	CreatedAt time.Time
}

func NewCart(ownerID string, cur currency.Unit) Cart {
	return Cart{
		OwnerID:  ownerID,
		Currency: cur,
	}
}

// Add puts one unit of p into the cart. The unit price of a new line is
// captured from p and never refreshed for subsequent adds.
func (c *Cart) Add(p Product, at time.Time) {
	if i := c.index(p.ID); i >= 0 {
		c.Lines[i].Quantity++
		return
	}

	c.Lines = append(c.Lines, CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  1,
		CreatedAt: at,
	})
}

// Remove reports whether a line for productID was present.
func (c *Cart) Remove(productID uuid.UUID) bool {
	i := c.index(productID)
	if i < 0 {
		return false
	}

	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	return true
}

// UpdateQuantity clamps negative quantities to zero; zero removes the line.
func (c *Cart) UpdateQuantity(productID uuid.UUID, quantity int) {
	i := c.index(productID)
	if i < 0 {
		return
	}

	if quantity <= 0 {
		c.Remove(productID)
		return
	}

	c.Lines[i].Quantity = quantity
}

func (c *Cart) Clear() {
	c.Lines = nil
}

func (c Cart) Line(productID uuid.UUID) (CartLine, bool) {
	if i := c.index(productID); i >= 0 {
		return c.Lines[i], true
	}
	return CartLine{}, false
}

func (c Cart) Total() Money {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.Subtotal().Amount)
	}

	return Money{Amount: total, Currency: c.Currency}
}

func (c Cart) Count() int {
	var count int
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (l CartLine) Subtotal() Money {
	return l.UnitPrice.Mul(l.Quantity)
}

func (c Cart) index(productID uuid.UUID) int {
	for i, line := range c.Lines {
		if line.ProductID == productID {
			return i
		}
	}
	return -1
}
