package seed

import (
	"context"
	"fmt"

	"rocketshoes-cart/internal/domain"
)

type productWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

type stockWriter interface {
	Set(ctx context.Context, stock domain.Stock) error
}

type productSeed struct {
	Product domain.Product
	Stock   int
}

const imageBase = "https://rocketseat-cdn.s3-sa-east-1.amazonaws.com/modulo-redux/"

var catalog = []productSeed{
	{domain.Product{ID: 1, Title: "Tênis de Caminhada Leve Confortável", Price: 179.9, Image: imageBase + "tenis1.jpg"}, 3},
	{domain.Product{ID: 2, Title: "Tênis VR Caminhada Confortável Detalhes Couro Masculino", Price: 139.9, Image: imageBase + "tenis2.jpg"}, 5},
	{domain.Product{ID: 3, Title: "Tênis Adidas Duramo Lite 2.0", Price: 219.9, Image: imageBase + "tenis3.jpg"}, 2},
	{domain.Product{ID: 4, Title: "Tênis de Caminhada Leve Confortável", Price: 179.9, Image: imageBase + "tenis1.jpg"}, 1},
	{domain.Product{ID: 5, Title: "Tênis VR Caminhada Confortável Detalhes Couro Masculino", Price: 139.9, Image: imageBase + "tenis2.jpg"}, 5},
	{domain.Product{ID: 6, Title: "Tênis Adidas Duramo Lite 2.0", Price: 219.9, Image: imageBase + "tenis3.jpg"}, 10},
}

// Apply upserts the demo catalog with its stock levels. It is idempotent.
func Apply(ctx context.Context, products productWriter, stock stockWriter) error {
	for _, s := range catalog {
		if _, err := products.Upsert(ctx, s.Product); err != nil {
			return fmt.Errorf("upsert product %d: %w", s.Product.ID, err)
		}
		if err := stock.Set(ctx, domain.Stock{ID: s.Product.ID, Amount: s.Stock}); err != nil {
			return fmt.Errorf("set stock %d: %w", s.Product.ID, err)
		}
	}
	return nil
}
