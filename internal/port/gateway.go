package port

import (
	"context"
	"iter"

	"github.com/elouannasse/youshop-client/internal/domain"
)

// OrderGateway is what checkout needs from the backend: an
// authoritative totals calculation and order creation. The client
// implements it; tests substitute a double.
type OrderGateway interface {
	Calculate(ctx context.Context, lines iter.Seq[domain.OrderLine]) (domain.CartTotals, error)
	CreateOrder(ctx context.Context, req CreateOrderRequest) (domain.Order, error)
}

type CreateOrderRequest struct {
	Lines           iter.Seq[domain.OrderLine]
	ShippingAddress domain.Address
	PaymentMethod   domain.PaymentMethod
	Notes           string

	// IdempotencyKey makes order creation safe to resubmit after an
	// ambiguous network failure.
	IdempotencyKey string
}
