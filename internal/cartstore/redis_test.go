package cartstore_test

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/nikolayk812/petshop/internal/cartstore"
	"github.com/nikolayk812/petshop/internal/domain"
	"github.com/nikolayk812/petshop/internal/port"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/text/currency"
)

type redisStoreSuite struct {
	suite.Suite

	store     port.CartRepository
	rdb       *redis.Client
	container *tcredis.RedisContainer
}

func TestRedisStoreSuite(t *testing.T) {
	suite.Run(t, new(redisStoreSuite))
}

func (suite *redisStoreSuite) SetupSuite() {
	ctx := suite.T().Context()

	var err error
	suite.container, err = tcredis.Run(ctx, "redis:7.4-alpine")
	suite.Require().NoError(err)

	connStr, err := suite.container.ConnectionString(ctx)
	suite.Require().NoError(err)

	opts, err := redis.ParseURL(connStr)
	suite.Require().NoError(err)
	suite.rdb = redis.NewClient(opts)

	suite.store, err = cartstore.NewRedis(suite.rdb, time.Hour)
	suite.Require().NoError(err)
}

func (suite *redisStoreSuite) TearDownSuite() {
	if suite.rdb != nil {
		suite.NoError(suite.rdb.Close())
	}
	if suite.container != nil {
		suite.NoError(testcontainers.TerminateContainer(suite.container))
	}
}

func (suite *redisStoreSuite) TearDownTest() {
	suite.NoError(suite.rdb.FlushDB(suite.T().Context()).Err())
}

func (suite *redisStoreSuite) TestSaveAndGetCart() {
	t := suite.T()
	ctx := t.Context()

	now := time.Now().UTC().Truncate(time.Second)
	p1, p2 := randomProduct(), randomProduct()

	cart := domain.Cart{OwnerID: gofakeit.UUID()}
	cart.Add(p1, now)
	cart.Add(p2, now)
	cart.Add(p1, now)
	require.NoError(t, suite.store.SaveCart(ctx, cart))

	got, err := suite.store.GetCart(ctx, cart.OwnerID)
	require.NoError(t, err)

	opts := cmp.Options{
		cmp.Comparer(func(x, y currency.Unit) bool { return x.String() == y.String() }),
		cmp.Comparer(func(x, y decimal.Decimal) bool { return x.Equal(y) }),
	}
	assert.Empty(t, cmp.Diff(cart.Lines, got.Lines, opts))
	assert.Equal(t, 3, got.Count())

	ttl, err := suite.rdb.TTL(ctx, "petshop:cart:"+cart.OwnerID).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 59*time.Minute)
}

func (suite *redisStoreSuite) TestGetMissingCart() {
	t := suite.T()

	cart, err := suite.store.GetCart(t.Context(), gofakeit.UUID())
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	_, err = suite.store.GetCart(t.Context(), "")
	require.EqualError(t, err, "ownerID is empty")
}

func (suite *redisStoreSuite) TestSaveEmptyCartDeletesKey() {
	t := suite.T()
	ctx := t.Context()

	cart := domain.Cart{OwnerID: gofakeit.UUID()}
	cart.Add(randomProduct(), time.Now())
	require.NoError(t, suite.store.SaveCart(ctx, cart))

	cart.Clear()
	require.NoError(t, suite.store.SaveCart(ctx, cart))

	exists, err := suite.rdb.Exists(ctx, "petshop:cart:"+cart.OwnerID).Result()
	require.NoError(t, err)
	assert.Zero(t, exists)
}

func (suite *redisStoreSuite) TestDeleteItem() {
	t := suite.T()
	ctx := t.Context()

	p1, p2 := randomProduct(), randomProduct()
	cart := domain.Cart{OwnerID: gofakeit.UUID()}
	cart.Add(p1, time.Now())
	cart.Add(p2, time.Now())
	require.NoError(t, suite.store.SaveCart(ctx, cart))

	deleted, err := suite.store.DeleteItem(ctx, cart.OwnerID, p1.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = suite.store.DeleteItem(ctx, cart.OwnerID, uuid.New())
	require.NoError(t, err)
	assert.False(t, deleted)

	got, err := suite.store.GetCart(ctx, cart.OwnerID)
	require.NoError(t, err)
	require.Len(t, got.Lines, 1)
	assert.Equal(t, p2.ID, got.Lines[0].ProductID)
}

func (suite *redisStoreSuite) TestDeleteCart() {
	t := suite.T()
	ctx := t.Context()

	cart := domain.Cart{OwnerID: gofakeit.UUID()}
	cart.Add(randomProduct(), time.Now())
	require.NoError(t, suite.store.SaveCart(ctx, cart))

	deleted, err := suite.store.DeleteCart(ctx, cart.OwnerID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = suite.store.DeleteCart(ctx, cart.OwnerID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func randomProduct() domain.Product {
	return domain.Product{
		ID:   uuid.MustParse(gofakeit.UUID()),
		Name: gofakeit.ProductName(),
		Price: domain.Money{
			Amount:   decimal.NewFromFloat(gofakeit.Price(1, 100)),
			Currency: currency.USD,
		},
	}
}
