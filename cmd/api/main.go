package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"rocketshoes-cart/internal/cartstore"
	"rocketshoes-cart/internal/cartview"
	"rocketshoes-cart/internal/catalog"
	"rocketshoes-cart/internal/config"
	"rocketshoes-cart/internal/db"
	"rocketshoes-cart/internal/httpserver"
	"rocketshoes-cart/internal/storage"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	opts := storage.Options{Driver: cfg.CartStorage, File: cfg.CartFile, Logger: logger}
	var storageReady func(context.Context) error
	switch cfg.CartStorage {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Fatalf("redis ping: %v", err)
		}
		opts.Redis = rdb
		storageReady = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	case "postgres":
		pool, err := db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatalf("connect to db: %v", err)
		}
		defer pool.Close()
		opts.Pool = pool
		storageReady = pool.Ping
	}

	persist, err := storage.Open(opts)
	if err != nil {
		logger.Fatalf("open cart storage: %v", err)
	}
	logger.Printf("cart storage driver=%s key=%s", cfg.CartStorage, cfg.CartKey)

	catalogClient := catalog.New(cfg.CatalogURL, cfg.CatalogTimeout, catalog.WithLogger(logger))
	ready := func(ctx context.Context) error {
		if storageReady != nil {
			if err := storageReady(ctx); err != nil {
				return fmt.Errorf("cart storage: %w", err)
			}
		}
		if _, err := catalogClient.ListProducts(ctx); err != nil {
			return fmt.Errorf("catalog: %w", err)
		}
		return nil
	}

	store := cartstore.New(ctx, catalogClient, persist, cfg.CartKey, logger)

	formatter, err := cartview.NewFormatter(cfg.Locale, cfg.Currency)
	if err != nil {
		logger.Fatalf("init formatter: %v", err)
	}
	view := cartview.New(store, formatter, cartview.NewLogNotifier(logger))

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Cart:        view,
		Ready:       ready,
		CORSOrigins: cfg.CORSOrigins,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting cart api on %s (catalog %s)", cfg.HTTPAddr, cfg.CatalogURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
