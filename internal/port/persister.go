package port

import (
	"context"

	"github.com/elouannasse/youshop-client/internal/domain"
)

// Persister stores the full cart state after every mutation and
// restores it on startup. Implementations are last-writer-wins; no
// cross-process coordination is attempted.
type Persister interface {
	// Load returns the persisted state and whether one was found.
	Load(ctx context.Context) (domain.CartState, bool, error)
	Save(ctx context.Context, state domain.CartState) error
	Clear(ctx context.Context) error
}
