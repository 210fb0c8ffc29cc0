package rates

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Rate is a stored exchange rate relative to the base currency.
type Rate struct {
	Code      string          `json:"code"`
	Rate      decimal.Decimal `json:"rate"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// RateRepository defines persistent storage for exchange rates.
type RateRepository interface {
	SaveRate(ctx context.Context, code string, rate decimal.Decimal) error
	GetAllRates(ctx context.Context) ([]Rate, error)
}

// PgRateRepository implements RateRepository with PostgreSQL.
type PgRateRepository struct {
	pool *pgxpool.Pool
}

// NewPgRateRepository creates a new PostgreSQL rate repository.
func NewPgRateRepository(pool *pgxpool.Pool) *PgRateRepository {
	return &PgRateRepository{pool: pool}
}

func (r *PgRateRepository) SaveRate(ctx context.Context, code string, rate decimal.Decimal) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO exchange_rates (code, rate, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (code) DO UPDATE SET rate = $2, updated_at = NOW()`,
		code, rate)
	if err != nil {
		return fmt.Errorf("saving rate for %s: %w", code, err)
	}
	return nil
}

func (r *PgRateRepository) GetAllRates(ctx context.Context) ([]Rate, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT code, rate, updated_at FROM exchange_rates ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("getting all rates: %w", err)
	}
	defer rows.Close()

	var out []Rate
	for rows.Next() {
		var rate Rate
		if err := rows.Scan(&rate.Code, &rate.Rate, &rate.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning rate: %w", err)
		}
		out = append(out, rate)
	}
	return out, rows.Err()
}
