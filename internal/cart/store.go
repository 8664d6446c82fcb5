package cart

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/elouannasse/youshop-client/internal/domain"
	"github.com/elouannasse/youshop-client/internal/port"
)

// Store is the client-side cart: a collection of lines with derived
// totals, written through to a Persister after every mutation. Totals
// are display hints only; the backend recomputes them at checkout.
//
// Mutations always apply in memory first. A returned error means the
// write-through failed, not that the cart is in a bad state.
type Store struct {
	mu      sync.Mutex
	lines   []domain.CartLine
	totals  domain.CartTotals
	visible bool

	persister port.Persister
	logger    zerolog.Logger
}

// NewStore restores the cart from the persister, if a state was saved
// by a previous session. Totals are recomputed from the restored
// lines rather than trusted from storage.
func NewStore(ctx context.Context, persister port.Persister, logger zerolog.Logger) (*Store, error) {
	if persister == nil {
		return nil, fmt.Errorf("persister is nil")
	}

	s := &Store{
		totals:    domain.ZeroTotals(),
		persister: persister,
		logger:    logger,
	}

	state, found, err := persister.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("persister.Load: %w", err)
	}
	if found {
		s.lines = state.Lines
		s.totals = domain.ComputeTotals(s.lines)
	}

	return s, nil
}

// AddItem merges into an existing line for the same product or appends
// a new line with a snapshot of the product's price, name and image.
// Quantities below 1 are treated as 1. Opens the cart flag.
func (s *Store) AddItem(ctx context.Context, p domain.Product, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.lines, func(l domain.CartLine) bool {
		return l.ProductID == p.ID
	})

	if idx >= 0 {
		s.lines[idx].Quantity += quantity
	} else {
		s.lines = append(s.lines, domain.CartLine{
			ProductID: p.ID,
			Name:      p.Name,
			ImageURL:  p.ImageURL,
			UnitPrice: p.Price,
			Quantity:  quantity,
		})
	}

	s.totals = domain.ComputeTotals(s.lines)
	s.visible = true

	s.logger.Debug().
		Str("product_id", p.ID).
		Int("quantity", quantity).
		Msg("cart item added")

	return s.persistLocked(ctx)
}

// RemoveItem deletes the line for productID. Removing an absent
// product is a no-op, not an error.
func (s *Store) RemoveItem(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = slices.DeleteFunc(s.lines, func(l domain.CartLine) bool {
		return l.ProductID == productID
	})
	s.totals = domain.ComputeTotals(s.lines)

	s.logger.Debug().Str("product_id", productID).Msg("cart item removed")

	return s.persistLocked(ctx)
}

// UpdateQuantity sets the line's quantity. A quantity of zero or less
// removes the line. No upper bound is enforced here; the backend is
// authoritative on stock.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.lines, func(l domain.CartLine) bool {
		return l.ProductID == productID
	})
	if idx >= 0 {
		s.lines[idx].Quantity = quantity
	}
	s.totals = domain.ComputeTotals(s.lines)

	return s.persistLocked(ctx)
}

// Clear empties the cart and removes the persisted state.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.totals = domain.ZeroTotals()

	s.logger.Debug().Msg("cart cleared")

	if err := s.persister.Clear(ctx); err != nil {
		return fmt.Errorf("persister.Clear: %w", err)
	}
	return nil
}

func (s *Store) persistLocked(ctx context.Context) error {
	state := domain.CartState{
		Lines:  slices.Clone(s.lines),
		Totals: s.totals,
	}
	if err := s.persister.Save(ctx, state); err != nil {
		return fmt.Errorf("persister.Save: %w", err)
	}
	return nil
}

func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.lines)
}

func (s *Store) Totals() domain.CartTotals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totals
}

func (s *Store) State() domain.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CartState{Lines: slices.Clone(s.lines), Totals: s.totals}
}

func (s *Store) TotalItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for _, l := range s.lines {
		count += l.Quantity
	}
	return count
}

func (s *Store) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines) == 0
}

func (s *Store) Contains(productID string) bool {
	return s.Quantity(productID) > 0
}

func (s *Store) Quantity(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range s.lines {
		if l.ProductID == productID {
			return l.Quantity
		}
	}
	return 0
}

func (s *Store) IsFreeShipping() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totals.Subtotal.Amount.GreaterThanOrEqual(domain.FreeShippingThreshold)
}

// RemainingForFreeShipping is how much more spend waives the shipping
// fee; zero once the threshold is met.
func (s *Store) RemainingForFreeShipping() domain.Money {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := domain.FreeShippingThreshold.Sub(s.totals.Subtotal.Amount)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	return domain.EUR(remaining)
}

// OrderLines is the order-creation payload: a lazy, restartable
// sequence over a snapshot of the lines taken at call time.
func (s *Store) OrderLines() iter.Seq[domain.OrderLine] {
	lines := s.Lines()
	return func(yield func(domain.OrderLine) bool) {
		for _, l := range lines {
			ol := domain.OrderLine{
				ProductID: l.ProductID,
				Quantity:  l.Quantity,
				UnitPrice: l.UnitPrice,
			}
			if !yield(ol) {
				return
			}
		}
	}
}

// Visibility is a UI signal only, never persisted.

func (s *Store) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = true
}

func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = false
}

func (s *Store) Toggle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = !s.visible
}

func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}
