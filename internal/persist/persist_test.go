package persist_test

import (
	"path/filepath"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/elouannasse/youshop-client/internal/domain"
	"github.com/elouannasse/youshop-client/internal/persist"
	"github.com/elouannasse/youshop-client/internal/port"
)

func TestPersisters(t *testing.T) {
	builders := []struct {
		name  string
		build func(t *testing.T) port.Persister
	}{
		{
			name: "memory",
			build: func(t *testing.T) port.Persister {
				return persist.NewMemory()
			},
		},
		{
			name: "file",
			build: func(t *testing.T) port.Persister {
				p, err := persist.NewFile(filepath.Join(t.TempDir(), persist.DefaultStorageName))
				require.NoError(t, err)
				return p
			},
		},
	}

	for _, b := range builders {
		t.Run(b.name, func(t *testing.T) {
			t.Run("load before any save finds nothing", func(t *testing.T) {
				p := b.build(t)

				_, found, err := p.Load(t.Context())
				require.NoError(t, err)
				require.False(t, found)
			})

			t.Run("save then load round-trips the state", func(t *testing.T) {
				p := b.build(t)
				state := randomCartState()

				require.NoError(t, p.Save(t.Context(), state))

				loaded, found, err := p.Load(t.Context())
				require.NoError(t, err)
				require.True(t, found)
				requireSameState(t, state, loaded)
			})

			t.Run("save overwrites the previous state", func(t *testing.T) {
				p := b.build(t)

				require.NoError(t, p.Save(t.Context(), randomCartState()))

				second := randomCartState()
				require.NoError(t, p.Save(t.Context(), second))

				loaded, found, err := p.Load(t.Context())
				require.NoError(t, err)
				require.True(t, found)
				requireSameState(t, second, loaded)
			})

			t.Run("clear removes the state", func(t *testing.T) {
				p := b.build(t)

				require.NoError(t, p.Save(t.Context(), randomCartState()))
				require.NoError(t, p.Clear(t.Context()))

				_, found, err := p.Load(t.Context())
				require.NoError(t, err)
				require.False(t, found)
			})

			t.Run("clear on empty storage is a no-op", func(t *testing.T) {
				p := b.build(t)
				require.NoError(t, p.Clear(t.Context()))
			})
		})
	}
}

func TestFileRejectsEmptyPath(t *testing.T) {
	_, err := persist.NewFile("")
	require.EqualError(t, err, "path is empty")
}

func TestFileCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", persist.DefaultStorageName)
	p, err := persist.NewFile(path)
	require.NoError(t, err)

	require.NoError(t, p.Save(t.Context(), randomCartState()))

	_, found, err := p.Load(t.Context())
	require.NoError(t, err)
	require.True(t, found)
}

func randomCartLine() domain.CartLine {
	return domain.CartLine{
		ProductID: gofakeit.UUID(),
		Name:      gofakeit.ProductName(),
		ImageURL:  gofakeit.URL(),
		UnitPrice: domain.EUR(decimal.NewFromFloat(gofakeit.Price(1, 100))),
		Quantity:  gofakeit.Number(1, 9),
	}
}

func randomCartState() domain.CartState {
	lines := []domain.CartLine{randomCartLine(), randomCartLine()}
	return domain.CartState{
		Lines:  lines,
		Totals: domain.ComputeTotals(lines),
	}
}

var moneyComparer = cmp.Comparer(func(x, y domain.Money) bool {
	return x.Amount.Equal(y.Amount) && x.Currency.String() == y.Currency.String()
})

func requireSameState(t *testing.T, expected, actual domain.CartState) {
	t.Helper()

	diff := cmp.Diff(expected, actual, moneyComparer)
	require.Empty(t, diff)
}
