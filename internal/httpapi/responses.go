package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/nikolayk812/petshop/internal/apperr"
	"github.com/nikolayk812/petshop/internal/domain"
	"github.com/nikolayk812/petshop/internal/logger"
	"github.com/nikolayk812/petshop/internal/service"
)

type errorEnvelope struct {
	Error apiError `json:"error"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type cartResponse struct {
	OwnerID  string         `json:"ownerId"`
	Currency string         `json:"currency"`
	Lines    []lineResponse `json:"lines"`
	Count    int            `json:"count"`
	Total    string         `json:"total"`
}

type lineResponse struct {
	ProductID string    `json:"productId"`
	Name      string    `json:"name"`
	UnitPrice string    `json:"unitPrice"`
	Quantity  int       `json:"quantity"`
	Subtotal  string    `json:"subtotal"`
	AddedAt   time.Time `json:"addedAt"`
}

type summaryResponse struct {
	ActiveOrderCount int                `json:"activeOrderCount"`
	TotalRevenue     string             `json:"totalRevenue"`
	Currency         string             `json:"currency"`
	RecentSales      []recentSaleResult `json:"recentSales"`
}

type recentSaleResult struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	Contact     string    `json:"contact"`
	Amount      string    `json:"amount"`
	CreatedAt   time.Time `json:"createdAt"`
}

func mapCartView(v service.CartView) cartResponse {
	resp := cartResponse{
		OwnerID:  v.Cart.OwnerID,
		Currency: v.Total.Currency.String(),
		Lines:    make([]lineResponse, 0, len(v.Cart.Lines)),
		Count:    v.Count,
		Total:    v.Total.Amount.StringFixed(2),
	}

	for _, line := range v.Cart.Lines {
		resp.Lines = append(resp.Lines, lineResponse{
			ProductID: line.ProductID.String(),
			Name:      line.Name,
			UnitPrice: line.UnitPrice.Amount.StringFixed(2),
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal().Amount.StringFixed(2),
			AddedAt:   line.CreatedAt,
		})
	}

	return resp
}

func mapDashboardView(v service.DashboardView) summaryResponse {
	resp := summaryResponse{
		ActiveOrderCount: v.ActiveOrderCount,
		TotalRevenue:     v.TotalRevenue.StringFixed(2),
		Currency:         v.Currency.String(),
		RecentSales:      make([]recentSaleResult, 0, len(v.RecentSales)),
	}

	for _, sale := range v.RecentSales {
		resp.RecentSales = append(resp.RecentSales, mapRecentSale(sale))
	}

	return resp
}

func mapRecentSale(sale domain.RecentSale) recentSaleResult {
	return recentSaleResult{
		ID:          sale.ID,
		DisplayName: sale.DisplayName,
		Contact:     sale.Contact,
		Amount:      sale.Amount.StringFixed(2),
		CreatedAt:   sale.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError hides the cause of internal errors from clients and logs it.
func writeError(ctx context.Context, log *logger.Logger, w http.ResponseWriter, err error) {
	typed := apperr.As(err)
	if typed == nil {
		typed = apperr.Wrap(apperr.CodeInternal, err, "internal error")
	}

	status := apperr.HTTPStatus(typed.Code())
	if status >= http.StatusInternalServerError {
		log.Error(log.WithField(ctx, "error_code", string(typed.Code())), "request.error", err)
	}

	writeJSON(w, status, errorEnvelope{Error: apiError{
		Code:    string(typed.Code()),
		Message: typed.Message(),
	}})
}
