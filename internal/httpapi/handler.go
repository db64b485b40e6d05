package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/nikolayk812/petshop/internal/apperr"
	"github.com/nikolayk812/petshop/internal/domain"
	"github.com/nikolayk812/petshop/internal/logger"
	"github.com/nikolayk812/petshop/internal/service"
)

type CartService interface {
	Get(ctx context.Context, ownerID string) (service.CartView, error)
	AddProduct(ctx context.Context, ownerID string, productID uuid.UUID) (service.CartView, error)
	UpdateQuantity(ctx context.Context, ownerID string, productID uuid.UUID, quantity int) (service.CartView, error)
	Remove(ctx context.Context, ownerID string, productID uuid.UUID) (service.CartView, error)
	Clear(ctx context.Context, ownerID string) error
}

type DashboardService interface {
	Summary(ctx context.Context) service.DashboardView
}

type handler struct {
	carts     CartService
	dashboard DashboardService
	validate  *validator.Validate
	log       *logger.Logger
}

type addItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

type updateQuantityRequest struct {
	// pointer so that a missing field is told apart from an explicit 0
	Quantity *int `json:"quantity" validate:"required"`
}

func (r updateQuantityRequest) validate() error {
	if *r.Quantity > domain.MaxLineQuantity {
		return apperr.New(apperr.CodeValidation, fmt.Sprintf("quantity must not exceed %d", domain.MaxLineQuantity))
	}
	return nil
}

func (h *handler) getCart(w http.ResponseWriter, r *http.Request) {
	v, err := h.carts.Get(r.Context(), chi.URLParam(r, "ownerID"))
	if err != nil {
		writeError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCartView(v))
}

func (h *handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := h.decode(r, &req); err != nil {
		writeError(r.Context(), h.log, w, err)
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		writeError(r.Context(), h.log, w, apperr.Wrap(apperr.CodeValidation, err, fmt.Sprintf("productId[%s] is not a uuid", req.ProductID)))
		return
	}

	v, err := h.carts.AddProduct(r.Context(), chi.URLParam(r, "ownerID"), productID)
	if err != nil {
		writeError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCartView(v))
}

func (h *handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	productID, err := productIDParam(r)
	if err != nil {
		writeError(r.Context(), h.log, w, err)
		return
	}

	var req updateQuantityRequest
	if err := h.decode(r, &req); err != nil {
		writeError(r.Context(), h.log, w, err)
		return
	}
	if err := req.validate(); err != nil {
		writeError(r.Context(), h.log, w, err)
		return
	}

	v, err := h.carts.UpdateQuantity(r.Context(), chi.URLParam(r, "ownerID"), productID, *req.Quantity)
	if err != nil {
		writeError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCartView(v))
}

func (h *handler) removeItem(w http.ResponseWriter, r *http.Request) {
	productID, err := productIDParam(r)
	if err != nil {
		writeError(r.Context(), h.log, w, err)
		return
	}

	v, err := h.carts.Remove(r.Context(), chi.URLParam(r, "ownerID"), productID)
	if err != nil {
		writeError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCartView(v))
}

func (h *handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.carts.Clear(r.Context(), chi.URLParam(r, "ownerID")); err != nil {
		writeError(r.Context(), h.log, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) dashboardSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, mapDashboardView(h.dashboard.Summary(r.Context())))
}

func (h *handler) decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Wrap(apperr.CodeValidation, err, "malformed json body")
	}
	if err := h.validate.Struct(dst); err != nil {
		return apperr.Wrap(apperr.CodeValidation, err, validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return "invalid request"
	}
	first := errs[0]
	return fmt.Sprintf("field %s failed %s", first.Field(), first.Tag())
}

func productIDParam(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "productID")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.Wrap(apperr.CodeValidation, err, fmt.Sprintf("productID[%s] is not a uuid", raw))
	}
	return id, nil
}
