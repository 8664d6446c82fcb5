package persist

import (
	"context"
	"slices"
	"sync"

	"github.com/elouannasse/youshop-client/internal/domain"
)

// Memory keeps the cart state in process memory. Used in tests and
// for sessions that should not survive a restart.
type Memory struct {
	mu    sync.Mutex
	state domain.CartState
	found bool
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(_ context.Context) (domain.CartState, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.found {
		return domain.CartState{}, false, nil
	}

	state := m.state
	state.Lines = slices.Clone(m.state.Lines)
	return state, true, nil
}

func (m *Memory) Save(_ context.Context, state domain.CartState) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	state.Lines = slices.Clone(state.Lines)
	m.state = state
	m.found = true
	return nil
}

func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = domain.CartState{}
	m.found = false
	return nil
}
