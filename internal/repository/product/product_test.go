package product

import (
	"context"
	"errors"
	"os"
	"testing"

	"rocketshoes-cart/internal/domain"
	"rocketshoes-cart/internal/migrate"
	"github.com/jackc/pgx/v5/pgxpool"
)

func TestPostgres_UpsertListAndGet(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool, nil)

	created, err := repo.Upsert(ctx, domain.Product{ID: 1, Title: "Tênis de Caminhada", Price: 179.9, Image: "https://img/1.jpg"})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if created.ID != 1 || created.Price != 179.9 {
		t.Fatalf("unexpected product %+v", created)
	}

	updated, err := repo.Upsert(ctx, domain.Product{ID: 1, Title: "Tênis VR", Price: 139.9, Image: "https://img/1.jpg"})
	if err != nil {
		t.Fatalf("Upsert update: %v", err)
	}
	if updated.Title != "Tênis VR" || updated.Price != 139.9 {
		t.Fatalf("expected updated product, got %+v", updated)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 product, got %d", len(list))
	}

	got, err := repo.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "Tênis VR" {
		t.Fatalf("unexpected product %+v", got)
	}

	if _, err := repo.GetByID(ctx, 99); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}

func resetTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(ctx, `TRUNCATE stock, products, cart_snapshots`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
}
