package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/nikolayk812/petshop/internal/backend"
	"github.com/nikolayk812/petshop/internal/cartstore"
	"github.com/nikolayk812/petshop/internal/config"
	"github.com/nikolayk812/petshop/internal/httpapi"
	"github.com/nikolayk812/petshop/internal/logger"
	"github.com/nikolayk812/petshop/internal/metrics"
	"github.com/nikolayk812/petshop/internal/port"
	"github.com/nikolayk812/petshop/internal/repository"
	"github.com/nikolayk812/petshop/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "petshop: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional, real environment wins
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("godotenv.Load: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	log := logger.New(logger.Options{
		ServiceName: "petshop",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Console:     strings.EqualFold(cfg.App.LogFormat, "console"),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	shopCurrency := cfg.App.ShopCurrency()

	catalog, err := backend.New(cfg.Backend.BaseURL, cfg.Backend.Timeout, shopCurrency, log)
	if err != nil {
		return fmt.Errorf("backend.New: %w", err)
	}

	var pool *pgxpool.Pool
	if cfg.NeedsPostgres() {
		pool, err = pgxpool.New(ctx, cfg.DB.DSN)
		if err != nil {
			return fmt.Errorf("pgxpool.New: %w", err)
		}
		defer pool.Close()

		if err := pool.Ping(ctx); err != nil {
			return fmt.Errorf("pool.Ping: %w", err)
		}
	}

	carts, closeCarts, err := newCartRepository(cfg, pool)
	if err != nil {
		return err
	}
	defer closeCarts()

	var orders port.OrderSource = catalog
	if cfg.App.OrderSource == config.OrderSourcePostgres {
		orders, err = repository.NewOrder(pool)
		if err != nil {
			return fmt.Errorf("repository.NewOrder: %w", err)
		}
	}

	cartService, err := service.NewCartService(carts, catalog, shopCurrency, log, m)
	if err != nil {
		return fmt.Errorf("service.NewCartService: %w", err)
	}
	dashboardService, err := service.NewDashboardService(orders, shopCurrency, log, m)
	if err != nil {
		return fmt.Errorf("service.NewDashboardService: %w", err)
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.App.Port),
		Handler:           httpapi.NewRouter(log, cartService, dashboardService, promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(log.WithFields(ctx, map[string]any{
			"addr":         srv.Addr,
			"cart_store":   cfg.App.CartStore,
			"order_source": cfg.App.OrderSource,
		}), "server.start")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("srv.ListenAndServe: %w", err)
		}
	case <-ctx.Done():
		log.Info(context.Background(), "server.shutdown")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("srv.Shutdown: %w", err)
	}

	return nil
}

func newCartRepository(cfg *config.Config, pool *pgxpool.Pool) (port.CartRepository, func(), error) {
	if cfg.App.CartStore == config.CartStoreRedis {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("redis.ParseURL: %w", err)
		}
		rdb := redis.NewClient(opts)

		store, err := cartstore.NewRedis(rdb, cfg.Redis.CartTTL)
		if err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("cartstore.NewRedis: %w", err)
		}
		return store, func() { _ = rdb.Close() }, nil
	}

	repo, err := repository.NewCart(pool)
	if err != nil {
		return nil, nil, fmt.Errorf("repository.NewCart: %w", err)
	}
	return repo, func() {}, nil
}
