package main

import (
	"context"
	"log"
	"os"

	"rocketshoes-cart/internal/config"
	"rocketshoes-cart/internal/db"
	productrepo "rocketshoes-cart/internal/repository/product"
	stockrepo "rocketshoes-cart/internal/repository/stock"
	"rocketshoes-cart/internal/seed"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	if err := seed.Apply(ctx, productrepo.NewPostgres(pool, logger), stockrepo.NewPostgres(pool, logger)); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Println("seed applied")
}
