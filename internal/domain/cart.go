package domain

import (
	"github.com/shopspring/decimal"
)

// Business rules the client displays. The backend recomputes all of
// them at checkout and remains authoritative.
var (
	TaxRate               = decimal.NewFromFloat(0.20)
	ShippingFee           = decimal.NewFromFloat(5.99)
	FreeShippingThreshold = decimal.NewFromInt(50)
)

// CartLine is one product's presence in the cart. UnitPrice is a
// snapshot taken when the product was added, never re-fetched.
type CartLine struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	ImageURL  string `json:"image,omitempty"`
	UnitPrice Money  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

func (l CartLine) Subtotal() Money {
	return l.UnitPrice.MulInt(l.Quantity).Round2()
}

type CartTotals struct {
	Subtotal     Money `json:"subtotal"`
	Tax          Money `json:"tax"`
	ShippingCost Money `json:"shippingCost"`
	Total        Money `json:"total"`
}

// CartState is the persisted shape of the cart: lines plus the totals
// derived from them, so a restore needs no recomputation round-trip.
type CartState struct {
	Lines  []CartLine `json:"items"`
	Totals CartTotals `json:"totals"`
}

// OrderLine is one entry of the order-creation payload.
type OrderLine struct {
	ProductID string
	Quantity  int
	UnitPrice Money
}

// ComputeTotals derives cart totals from the lines: 20% tax on the
// subtotal, flat shipping below the free-shipping threshold, waived at
// or above it. Every figure is rounded to 2 decimal places.
func ComputeTotals(lines []CartLine) CartTotals {
	if len(lines) == 0 {
		return ZeroTotals()
	}

	subtotal := EUR(decimal.Zero)
	for _, line := range lines {
		subtotal = subtotal.Add(line.UnitPrice.MulInt(line.Quantity))
	}
	subtotal = subtotal.Round2()

	tax := subtotal.MulRate(TaxRate).Round2()

	shipping := NewMoney(decimal.Zero, subtotal.Currency)
	if subtotal.Amount.LessThan(FreeShippingThreshold) {
		shipping = NewMoney(ShippingFee, subtotal.Currency)
	}

	total := subtotal.Add(tax).Add(shipping).Round2()

	return CartTotals{
		Subtotal:     subtotal,
		Tax:          tax,
		ShippingCost: shipping,
		Total:        total,
	}
}

// ZeroTotals is the totals of an empty cart. No shipping fee is
// charged on nothing to ship.
func ZeroTotals() CartTotals {
	zero := EUR(decimal.Zero)
	return CartTotals{Subtotal: zero, Tax: zero, ShippingCost: zero, Total: zero}
}
