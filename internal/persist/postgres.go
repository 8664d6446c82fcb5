package persist

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/elouannasse/youshop-client/internal/domain"
)

// Postgres keeps one row per cart line, keyed by owner. Save rewrites
// the owner's lines in a single transaction so a reader never observes
// a half-saved cart. Totals are not stored; Load recomputes them from
// the lines.
type Postgres struct {
	pool    *pgxpool.Pool
	ownerID string
}

func NewPostgres(pool *pgxpool.Pool, ownerID string) (*Postgres, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}

	return &Postgres{pool: pool, ownerID: ownerID}, nil
}

func (p *Postgres) Load(ctx context.Context) (domain.CartState, bool, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT product_id, name, image_url, unit_price_amount::text, unit_price_currency, quantity
		FROM cart_lines
		WHERE owner_id = $1
		ORDER BY position`, p.ownerID)
	if err != nil {
		return domain.CartState{}, false, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var lines []domain.CartLine
	for rows.Next() {
		line, err := scanCartLine(rows)
		if err != nil {
			return domain.CartState{}, false, fmt.Errorf("scanCartLine: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return domain.CartState{}, false, fmt.Errorf("rows.Err: %w", err)
	}

	if len(lines) == 0 {
		return domain.CartState{}, false, nil
	}

	return domain.CartState{
		Lines:  lines,
		Totals: domain.ComputeTotals(lines),
	}, true, nil
}

func (p *Postgres) Save(ctx context.Context, state domain.CartState) error {
	err := withTx(ctx, p.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM cart_lines WHERE owner_id = $1`, p.ownerID); err != nil {
			return fmt.Errorf("tx.Exec delete: %w", err)
		}

		for i, line := range state.Lines {
			_, err := tx.Exec(ctx, `
				INSERT INTO cart_lines (owner_id, product_id, name, image_url, unit_price_amount, unit_price_currency, quantity, position)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				p.ownerID,
				line.ProductID,
				line.Name,
				line.ImageURL,
				line.UnitPrice.Amount.String(),
				line.UnitPrice.Currency.String(),
				line.Quantity,
				i,
			)
			if err != nil {
				return fmt.Errorf("tx.Exec insert: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("withTx: %w", err)
	}

	return nil
}

func (p *Postgres) Clear(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, `DELETE FROM cart_lines WHERE owner_id = $1`, p.ownerID); err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}
	return nil
}

func scanCartLine(rows pgx.Rows) (domain.CartLine, error) {
	var (
		line         domain.CartLine
		amountText   string
		currencyCode string
	)

	err := rows.Scan(&line.ProductID, &line.Name, &line.ImageURL, &amountText, &currencyCode, &line.Quantity)
	if err != nil {
		return domain.CartLine{}, fmt.Errorf("rows.Scan: %w", err)
	}

	amount, err := decimal.NewFromString(amountText)
	if err != nil {
		return domain.CartLine{}, fmt.Errorf("decimal.NewFromString: %w", err)
	}

	parsedCurrency, err := currency.ParseISO(currencyCode)
	if err != nil {
		return domain.CartLine{}, fmt.Errorf("currency[%s] is not valid: %w", currencyCode, err)
	}

	line.UnitPrice = domain.Money{Amount: amount, Currency: parsedCurrency}
	return line, nil
}

func withTx(ctx context.Context, pool *pgxpool.Pool, fn func(tx pgx.Tx) error) (txErr error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("pool.Begin: %w", err)
	}

	defer func() {
		if txErr != nil {
			rollbackErr := tx.Rollback(ctx)
			if rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				txErr = errors.Join(txErr, fmt.Errorf("tx.Rollback: %w", rollbackErr))
			}
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("tx.Commit: %w", err)
	}

	return nil
}
