package checkout_test

import (
	"context"
	"fmt"
	"iter"
	"net/http"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/elouannasse/youshop-client/internal/cart"
	"github.com/elouannasse/youshop-client/internal/checkout"
	"github.com/elouannasse/youshop-client/internal/client"
	"github.com/elouannasse/youshop-client/internal/domain"
	"github.com/elouannasse/youshop-client/internal/persist"
	"github.com/elouannasse/youshop-client/internal/port"
)

type gatewayStub struct {
	calcTotals domain.CartTotals
	calcErr    error
	calcCalls  int

	created   domain.Order
	createErr error
	gotCreate port.CreateOrderRequest
}

func (g *gatewayStub) Calculate(_ context.Context, _ iter.Seq[domain.OrderLine]) (domain.CartTotals, error) {
	g.calcCalls++
	if g.calcErr != nil {
		return domain.CartTotals{}, g.calcErr
	}
	return g.calcTotals, nil
}

func (g *gatewayStub) CreateOrder(_ context.Context, req port.CreateOrderRequest) (domain.Order, error) {
	g.gotCreate = req
	if g.createErr != nil {
		return domain.Order{}, g.createErr
	}
	return g.created, nil
}

type checkoutSuite struct {
	suite.Suite

	store     *cart.Store
	persister *persist.Memory
	gateway   *gatewayStub
	service   *checkout.Service
}

func TestCheckoutSuite(t *testing.T) {
	suite.Run(t, new(checkoutSuite))
}

func (suite *checkoutSuite) SetupTest() {
	suite.persister = persist.NewMemory()

	store, err := cart.NewStore(suite.T().Context(), suite.persister, zerolog.Nop())
	suite.Require().NoError(err)
	suite.store = store

	suite.gateway = &gatewayStub{
		created: domain.Order{
			ID:          gofakeit.UUID(),
			OrderNumber: "YS-0042",
			Status:      domain.OrderPending,
		},
	}

	service, err := checkout.NewService(store, suite.gateway, zerolog.Nop())
	suite.Require().NoError(err)
	suite.service = service
}

func (suite *checkoutSuite) addRandomItem() {
	t := suite.T()
	p := domain.Product{
		ID:    gofakeit.UUID(),
		Name:  gofakeit.ProductName(),
		Price: domain.EUR(decimal.NewFromFloat(gofakeit.Price(1, 100))),
	}
	require.NoError(t, suite.store.AddItem(t.Context(), p, gofakeit.Number(1, 3)))
}

func (suite *checkoutSuite) TestConstructorGuards() {
	t := suite.T()

	_, err := checkout.NewService(nil, suite.gateway, zerolog.Nop())
	require.EqualError(t, err, "cartStore is nil")

	_, err = checkout.NewService(suite.store, nil, zerolog.Nop())
	require.EqualError(t, err, "gateway is nil")
}

func (suite *checkoutSuite) TestQuoteOnEmptyCart() {
	t := suite.T()

	_, err := suite.service.Quote(t.Context())
	require.ErrorIs(t, err, checkout.ErrEmptyCart)
	require.Zero(t, suite.gateway.calcCalls)
}

func (suite *checkoutSuite) TestQuoteReturnsServerTotals() {
	t := suite.T()

	suite.addRandomItem()
	suite.gateway.calcTotals = domain.CartTotals{
		Subtotal: domain.EURFromFloat(55),
		Tax:      domain.EURFromFloat(11),
		Total:    domain.EURFromFloat(66),
	}

	totals, err := suite.service.Quote(t.Context())
	require.NoError(t, err)
	require.True(t, totals.Total.Amount.Equal(decimal.NewFromInt(66)))
	require.Equal(t, 1, suite.gateway.calcCalls)
}

func (suite *checkoutSuite) TestPlaceOrderOnEmptyCart() {
	t := suite.T()

	_, err := suite.service.PlaceOrder(t.Context(), checkout.PlaceOrderInput{})
	require.ErrorIs(t, err, checkout.ErrEmptyCart)
}

func (suite *checkoutSuite) TestPlaceOrderClearsCartOnSuccess() {
	t := suite.T()
	ctx := t.Context()

	suite.addRandomItem()
	suite.addRandomItem()

	order, err := suite.service.PlaceOrder(ctx, checkout.PlaceOrderInput{
		ShippingAddress: domain.Address{City: "Paris"},
		PaymentMethod:   domain.PaymentCard,
	})
	require.NoError(t, err)
	require.Equal(t, "YS-0042", order.OrderNumber)

	// calculated before creating, lines forwarded, idempotency key set
	require.Equal(t, 1, suite.gateway.calcCalls)
	_, err = uuid.Parse(suite.gateway.gotCreate.IdempotencyKey)
	require.NoError(t, err)
	require.Equal(t, domain.PaymentCard, suite.gateway.gotCreate.PaymentMethod)

	var count int
	for range suite.gateway.gotCreate.Lines {
		count++
	}
	require.Equal(t, 2, count)

	// cart and its persisted copy are empty
	require.True(t, suite.store.IsEmpty())
	_, found, err := suite.persister.Load(ctx)
	require.NoError(t, err)
	require.False(t, found)
}

func (suite *checkoutSuite) TestCalculateFailureLeavesCartUntouched() {
	t := suite.T()

	suite.addRandomItem()
	before := suite.store.State()

	suite.gateway.calcErr = fmt.Errorf("server unreachable")

	_, err := suite.service.PlaceOrder(t.Context(), checkout.PlaceOrderInput{})
	require.Error(t, err)

	require.Len(t, suite.store.Lines(), len(before.Lines))
	require.False(t, suite.store.IsEmpty())
}

func (suite *checkoutSuite) TestStockErrorPropagatesAndLeavesCart() {
	t := suite.T()

	suite.addRandomItem()
	suite.gateway.createErr = &client.APIError{
		StatusCode: http.StatusBadRequest,
		Message:    "Insufficient stock for product",
	}

	_, err := suite.service.PlaceOrder(t.Context(), checkout.PlaceOrderInput{})
	require.ErrorIs(t, err, client.ErrInsufficientStock)
	require.False(t, suite.store.IsEmpty())
}
