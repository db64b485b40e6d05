package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/text/currency"
)

const EnvPrefix = "PETSHOP"

const (
	CartStorePostgres = "postgres"
	CartStoreRedis    = "redis"

	OrderSourceBackend  = "backend"
	OrderSourcePostgres = "postgres"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	Backend BackendConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("envconfig.Process: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env         string `envconfig:"PETSHOP_APP_ENV" default:"dev"`
	Port        string `envconfig:"PETSHOP_APP_PORT" default:"8080"`
	LogLevel    string `envconfig:"PETSHOP_LOG_LEVEL" default:"info"`
	LogFormat   string `envconfig:"PETSHOP_LOG_FORMAT" default:"json"`
	Currency    string `envconfig:"PETSHOP_CURRENCY" default:"USD"`
	CartStore   string `envconfig:"PETSHOP_CART_STORE" default:"postgres"`
	OrderSource string `envconfig:"PETSHOP_ORDER_SOURCE" default:"backend"`
}

// ShopCurrency is valid once Load succeeded.
func (a AppConfig) ShopCurrency() currency.Unit {
	unit, _ := currency.ParseISO(a.Currency)
	return unit
}

type DBConfig struct {
	DSN string `envconfig:"PETSHOP_DB_DSN"`
}

type RedisConfig struct {
	URL     string        `envconfig:"PETSHOP_REDIS_URL" default:"redis://localhost:6379/0"`
	CartTTL time.Duration `envconfig:"PETSHOP_REDIS_CART_TTL" default:"168h"`
}

type BackendConfig struct {
	BaseURL string        `envconfig:"PETSHOP_BACKEND_BASE_URL" default:"http://localhost:3000"`
	Timeout time.Duration `envconfig:"PETSHOP_BACKEND_TIMEOUT" default:"5s"`
}

func (c *Config) validate() error {
	if _, err := currency.ParseISO(c.App.Currency); err != nil {
		return fmt.Errorf("currency[%s] is not valid: %w", c.App.Currency, err)
	}

	switch strings.ToLower(c.App.CartStore) {
	case CartStorePostgres, CartStoreRedis:
		c.App.CartStore = strings.ToLower(c.App.CartStore)
	default:
		return fmt.Errorf("cart store[%s] is not supported", c.App.CartStore)
	}

	switch strings.ToLower(c.App.OrderSource) {
	case OrderSourceBackend, OrderSourcePostgres:
		c.App.OrderSource = strings.ToLower(c.App.OrderSource)
	default:
		return fmt.Errorf("order source[%s] is not supported", c.App.OrderSource)
	}

	if c.NeedsPostgres() && c.DB.DSN == "" {
		return fmt.Errorf("db dsn is empty")
	}

	return nil
}

func (c *Config) NeedsPostgres() bool {
	return c.App.CartStore == CartStorePostgres || c.App.OrderSource == OrderSourcePostgres
}
