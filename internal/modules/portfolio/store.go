// README: Holdings store backed by PostgreSQL (stocks and mutual_funds tables).
package portfolio

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Holdings(ctx context.Context) (Holdings, error) {
	rows, err := s.db.Query(ctx, `
		SELECT symbol, name, quantity, avg_price, current_price, currency, sector, country, market_cap
		FROM stocks
		ORDER BY position, symbol`)
	if err != nil {
		return Holdings{}, fmt.Errorf("query stocks: %w", err)
	}
	stocks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Stock, error) {
		var st Stock
		err := row.Scan(
			&st.Symbol, &st.Name, &st.Quantity, &st.AvgPrice, &st.CurrentPrice,
			&st.Currency, &st.Sector, &st.Country, &st.MarketCap,
		)
		return st, err
	})
	if err != nil {
		return Holdings{}, fmt.Errorf("scan stocks: %w", err)
	}

	rows, err = s.db.Query(ctx, `
		SELECT name, quantity, nav, current_nav, category
		FROM mutual_funds
		ORDER BY position, name`)
	if err != nil {
		return Holdings{}, fmt.Errorf("query mutual_funds: %w", err)
	}
	funds, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Fund, error) {
		var f Fund
		err := row.Scan(&f.Name, &f.Quantity, &f.NAV, &f.CurrentNAV, &f.Category)
		return f, err
	})
	if err != nil {
		return Holdings{}, fmt.Errorf("scan mutual_funds: %w", err)
	}

	if len(stocks) == 0 && len(funds) == 0 {
		return Holdings{}, ErrNoHoldings
	}
	return Holdings{Stocks: stocks, Funds: funds}, nil
}

// Seed upserts h, keeping slice order as the listing position.
func (s *Store) Seed(ctx context.Context, h Holdings) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for i, st := range h.Stocks {
		_, err := tx.Exec(ctx, `
			INSERT INTO stocks (
				symbol, name, quantity, avg_price, current_price,
				currency, sector, country, market_cap, position
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (symbol) DO UPDATE SET
				name = EXCLUDED.name,
				quantity = EXCLUDED.quantity,
				avg_price = EXCLUDED.avg_price,
				current_price = EXCLUDED.current_price,
				currency = EXCLUDED.currency,
				sector = EXCLUDED.sector,
				country = EXCLUDED.country,
				market_cap = EXCLUDED.market_cap,
				position = EXCLUDED.position`,
			st.Symbol, st.Name, st.Quantity, st.AvgPrice, st.CurrentPrice,
			st.Currency, st.Sector, st.Country, st.MarketCap, i,
		)
		if err != nil {
			return fmt.Errorf("seed stock %s: %w", st.Symbol, err)
		}
	}
	for i, f := range h.Funds {
		_, err := tx.Exec(ctx, `
			INSERT INTO mutual_funds (name, quantity, nav, current_nav, category, position)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (name) DO UPDATE SET
				quantity = EXCLUDED.quantity,
				nav = EXCLUDED.nav,
				current_nav = EXCLUDED.current_nav,
				category = EXCLUDED.category,
				position = EXCLUDED.position`,
			f.Name, f.Quantity, f.NAV, f.CurrentNAV, f.Category, i,
		)
		if err != nil {
			return fmt.Errorf("seed fund %s: %w", f.Name, err)
		}
	}
	return tx.Commit(ctx)
}
