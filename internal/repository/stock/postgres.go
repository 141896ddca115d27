package stock

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"rocketshoes-cart/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) GetByProductID(ctx context.Context, productID int64) (*domain.Stock, error) {
	const q = `SELECT product_id, amount FROM stock WHERE product_id = $1`
	var s domain.Stock
	err := r.pool.QueryRow(ctx, q, productID).Scan(&s.ID, &s.Amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("stock repo: get product_id=%d not found", productID)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("stock repo: get product_id=%d error=%v", productID, err)
		return nil, err
	}
	return &s, nil
}

func (r *postgresRepo) Set(ctx context.Context, s domain.Stock) error {
	if s.Amount < 0 {
		return fmt.Errorf("stock repo: negative amount %d for product_id=%d", s.Amount, s.ID)
	}
	const q = `
INSERT INTO stock (product_id, amount, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (product_id) DO UPDATE SET
    amount = EXCLUDED.amount,
    updated_at = now()
`
	if _, err := r.pool.Exec(ctx, q, s.ID, s.Amount); err != nil {
		r.logger.Printf("stock repo: set product_id=%d error=%v", s.ID, err)
		return err
	}
	r.logger.Printf("stock repo: set product_id=%d amount=%d", s.ID, s.Amount)
	return nil
}
