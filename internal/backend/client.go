package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/nikolayk812/petshop/internal/domain"
	"github.com/nikolayk812/petshop/internal/logger"
	"github.com/nikolayk812/petshop/internal/port"
	"golang.org/x/text/currency"
)

// Client talks to the storefront REST backend that owns orders and products.
type Client struct {
	baseURL  *url.URL
	http     *http.Client
	validate *validator.Validate
	currency currency.Unit
	log      *logger.Logger
}

// StatusError is returned for any non-2xx backend response.
type StatusError struct {
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.Path, e.StatusCode)
}

var (
	_ port.OrderSource    = (*Client)(nil)
	_ port.ProductCatalog = (*Client)(nil)
)

func New(baseURL string, timeout time.Duration, shopCurrency currency.Unit, log *logger.Logger) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("url.Parse: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("baseURL[%s] is not absolute", baseURL)
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Client{
		baseURL:  parsed,
		http:     &http.Client{Timeout: timeout},
		validate: validator.New(validator.WithRequiredStructEnabled()),
		currency: shopCurrency,
		log:      log,
	}, nil
}

// ListOrders returns the normalized orders. Records failing validation are
// logged and skipped so a single bad row does not blank the dashboard.
func (c *Client) ListOrders(ctx context.Context) ([]domain.OrderRecord, error) {
	var elems []json.RawMessage
	if err := c.getJSON(ctx, "/api/orders", &elems); err != nil {
		return nil, err
	}

	orders := make([]domain.OrderRecord, 0, len(elems))
	for i, elem := range elems {
		var raw rawOrder
		if err := json.Unmarshal(elem, &raw); err != nil {
			c.log.Warn(c.log.WithField(ctx, "index", i), "backend.order.rejected", fmt.Errorf("json.Unmarshal: %w", err))
			continue
		}

		order, err := normalizeOrder(c.validate, raw)
		if err != nil {
			c.log.Warn(c.log.WithField(ctx, "order_id", raw.ID), "backend.order.rejected", err)
			continue
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func (c *Client) GetProduct(ctx context.Context, productID uuid.UUID) (domain.Product, error) {
	var raw rawProduct
	if err := c.getJSON(ctx, "/api/products/"+productID.String(), &raw); err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return domain.Product{}, port.ErrProductNotFound
		}
		return domain.Product{}, err
	}

	product, err := normalizeProduct(c.validate, raw, c.currency)
	if err != nil {
		return domain.Product{}, fmt.Errorf("normalizeProduct: %w", err)
	}
	if product.ID != productID {
		return domain.Product{}, fmt.Errorf("product id mismatch: asked %s, got %s", productID, product.ID)
	}

	return product, nil
}

func (c *Client) getJSON(ctx context.Context, path string, dst any) error {
	endpoint := c.baseURL.JoinPath(path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Path: path, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("GET %s: decode: %w", path, err)
	}

	return nil
}
