package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/nikolayk812/petshop/internal/logger"
)

// NewRouter wires the cart and dashboard endpoints. metrics may be nil.
func NewRouter(log *logger.Logger, carts CartService, dashboard DashboardService, metrics http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}

	h := &handler{
		carts:     carts,
		dashboard: dashboard,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		log:       log,
	}

	r := chi.NewRouter()
	r.Use(
		requestID(log),
		recoverer(log),
		requestLogging(log),
	)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if metrics != nil {
		r.Handle("/metrics", metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/carts/{ownerID}", func(r chi.Router) {
			r.Get("/", h.getCart)
			r.Delete("/", h.clearCart)
			r.Post("/items", h.addItem)
			r.Put("/items/{productID}", h.updateQuantity)
			r.Delete("/items/{productID}", h.removeItem)
		})
		r.Get("/dashboard/summary", h.dashboardSummary)
	})

	return r
}
