// Package storage holds the key-value byte stores the cart snapshot is
// mirrored to. Every backend reports a missing key as domain.ErrNotFound.
package storage

import (
	"context"
	"fmt"
	"log"

	"rocketshoes-cart/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Store is a durable key-value byte store.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
}

// ErrNotFound is returned by Load when the key has never been saved.
var ErrNotFound = domain.ErrNotFound

// Options carries what the individual backends need to be built.
type Options struct {
	Driver string
	File   string
	Redis  *redis.Client
	Pool   *pgxpool.Pool
	Logger *log.Logger
}

// Open builds the backend selected by opts.Driver.
func Open(opts Options) (Store, error) {
	switch opts.Driver {
	case "", "file":
		return NewFile(opts.File), nil
	case "memory":
		return NewMemory(), nil
	case "redis":
		if opts.Redis == nil {
			return nil, fmt.Errorf("storage: redis driver needs a client")
		}
		return NewRedis(opts.Redis), nil
	case "postgres":
		if opts.Pool == nil {
			return nil, fmt.Errorf("storage: postgres driver needs a pool")
		}
		return NewPostgres(opts.Pool, opts.Logger), nil
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", opts.Driver)
	}
}
