package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/petshop/internal/domain"
	"github.com/nikolayk812/petshop/internal/port"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

const keyPrefix = "petshop:cart:"

// redisStore keeps one JSON document per cart owner. Every write refreshes
// the TTL, so abandoned carts expire on their own.
type redisStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedis(rdb redis.Cmdable, ttl time.Duration) (port.CartRepository, error) {
	if rdb == nil {
		return nil, fmt.Errorf("redis client is nil")
	}

	return &redisStore{rdb: rdb, ttl: ttl}, nil
}

type cartDocument struct {
	Lines []lineDocument `json:"lines"`
}

type lineDocument struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Quantity  int             `json:"quantity"`
	CreatedAt time.Time       `json:"createdAt"`
}

func (s *redisStore) GetCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, fmt.Errorf("ownerID is empty")
	}

	raw, err := s.rdb.Get(ctx, key(ownerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Cart{OwnerID: ownerID}, nil
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("rdb.Get: %w", err)
	}

	var doc cartDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domain.Cart{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	lines, err := mapDocumentToLines(doc)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("mapDocumentToLines: %w", err)
	}

	return domain.Cart{OwnerID: ownerID, Lines: lines}, nil
}

func (s *redisStore) SaveCart(ctx context.Context, cart domain.Cart) error {
	if cart.OwnerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	if cart.IsEmpty() {
		if err := s.rdb.Del(ctx, key(cart.OwnerID)).Err(); err != nil {
			return fmt.Errorf("rdb.Del: %w", err)
		}
		return nil
	}

	raw, err := json.Marshal(mapCartToDocument(cart))
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := s.rdb.Set(ctx, key(cart.OwnerID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("rdb.Set: %w", err)
	}

	return nil
}

func (s *redisStore) DeleteItem(ctx context.Context, ownerID string, productID uuid.UUID) (bool, error) {
	cart, err := s.GetCart(ctx, ownerID)
	if err != nil {
		return false, err
	}

	if !cart.Remove(productID) {
		return false, nil
	}

	if err := s.SaveCart(ctx, cart); err != nil {
		return false, err
	}

	return true, nil
}

func (s *redisStore) DeleteCart(ctx context.Context, ownerID string) (bool, error) {
	if ownerID == "" {
		return false, fmt.Errorf("ownerID is empty")
	}

	deleted, err := s.rdb.Del(ctx, key(ownerID)).Result()
	if err != nil {
		return false, fmt.Errorf("rdb.Del: %w", err)
	}

	return deleted > 0, nil
}

func key(ownerID string) string {
	return keyPrefix + ownerID
}

func mapCartToDocument(cart domain.Cart) cartDocument {
	doc := cartDocument{Lines: make([]lineDocument, 0, len(cart.Lines))}
	for _, line := range cart.Lines {
		createdAt := line.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now().UTC()
		}

		doc.Lines = append(doc.Lines, lineDocument{
			ProductID: line.ProductID,
			Name:      line.Name,
			Amount:    line.UnitPrice.Amount,
			Currency:  line.UnitPrice.Currency.String(),
			Quantity:  line.Quantity,
			CreatedAt: createdAt,
		})
	}
	return doc
}

func mapDocumentToLines(doc cartDocument) ([]domain.CartLine, error) {
	var lines []domain.CartLine

	for _, l := range doc.Lines {
		parsedCurrency, err := currency.ParseISO(l.Currency)
		if err != nil {
			return nil, fmt.Errorf("currency[%s] is not valid: %w", l.Currency, err)
		}
		if l.Quantity < 1 {
			continue
		}

		lines = append(lines, domain.CartLine{
			ProductID: l.ProductID,
			Name:      l.Name,
			UnitPrice: domain.Money{Amount: l.Amount, Currency: parsedCurrency},
			Quantity:  l.Quantity,
			CreatedAt: l.CreatedAt,
		})
	}

	return lines, nil
}
