package storage

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres keeps blobs in the cart_snapshots table.
type Postgres struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) *Postgres {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Postgres{pool: pool, logger: logger}
}

func (p *Postgres) Load(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT payload FROM cart_snapshots WHERE key = $1`
	var payload []byte
	if err := p.pool.QueryRow(ctx, q, key).Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		p.logger.Printf("snapshot store: load key=%s error=%v", key, err)
		return nil, err
	}
	return payload, nil
}

func (p *Postgres) Save(ctx context.Context, key string, blob []byte) error {
	const q = `
INSERT INTO cart_snapshots (key, payload, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET
    payload = EXCLUDED.payload,
    updated_at = now()
`
	if _, err := p.pool.Exec(ctx, q, key, blob); err != nil {
		p.logger.Printf("snapshot store: save key=%s error=%v", key, err)
		return err
	}
	p.logger.Printf("snapshot store: saved key=%s bytes=%d", key, len(blob))
	return nil
}
