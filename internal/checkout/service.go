package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/elouannasse/youshop-client/internal/cart"
	"github.com/elouannasse/youshop-client/internal/domain"
	"github.com/elouannasse/youshop-client/internal/port"
)

var ErrEmptyCart = errors.New("cart is empty")

// Service walks a cart through checkout. The backend owns stock and
// pricing: every checkout starts with a remote calculation, and the
// cart is only cleared once the order actually exists.
type Service struct {
	cart    *cart.Store
	gateway port.OrderGateway
	logger  zerolog.Logger
}

func NewService(cartStore *cart.Store, gateway port.OrderGateway, logger zerolog.Logger) (*Service, error) {
	if cartStore == nil {
		return nil, fmt.Errorf("cartStore is nil")
	}
	if gateway == nil {
		return nil, fmt.Errorf("gateway is nil")
	}

	return &Service{
		cart:    cartStore,
		gateway: gateway,
		logger:  logger,
	}, nil
}

// Quote returns the backend's authoritative totals for the current
// cart. The locally derived totals are display hints until this
// succeeds.
func (s *Service) Quote(ctx context.Context) (domain.CartTotals, error) {
	if s.cart.IsEmpty() {
		return domain.CartTotals{}, ErrEmptyCart
	}

	totals, err := s.gateway.Calculate(ctx, s.cart.OrderLines())
	if err != nil {
		return domain.CartTotals{}, fmt.Errorf("gateway.Calculate: %w", err)
	}

	return totals, nil
}

type PlaceOrderInput struct {
	ShippingAddress domain.Address
	PaymentMethod   domain.PaymentMethod
	Notes           string
}

// PlaceOrder revalidates the cart against the backend, creates the
// order and clears the cart. On any failure before creation the cart
// is left untouched so the user can correct it; a stock error unwraps
// to client.ErrInsufficientStock through the returned chain.
func (s *Service) PlaceOrder(ctx context.Context, input PlaceOrderInput) (domain.Order, error) {
	if s.cart.IsEmpty() {
		return domain.Order{}, ErrEmptyCart
	}

	if _, err := s.gateway.Calculate(ctx, s.cart.OrderLines()); err != nil {
		return domain.Order{}, fmt.Errorf("gateway.Calculate: %w", err)
	}

	order, err := s.gateway.CreateOrder(ctx, port.CreateOrderRequest{
		Lines:           s.cart.OrderLines(),
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   input.PaymentMethod,
		Notes:           input.Notes,
		IdempotencyKey:  uuid.NewString(),
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("gateway.CreateOrder: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID).
		Str("order_number", order.OrderNumber).
		Msg("order placed")

	if err := s.cart.Clear(ctx); err != nil {
		// The order exists; hand it back along with the storage error.
		return order, fmt.Errorf("cart.Clear: %w", err)
	}

	return order, nil
}
