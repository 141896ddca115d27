package httpserver

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"rocketshoes-cart/internal/cartview"
	"rocketshoes-cart/internal/domain"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type cartView interface {
	Render() cartview.Page
	Add(ctx context.Context, productID int64) error
	Increment(ctx context.Context, productID int64) error
	Decrement(ctx context.Context, productID int64) error
	SetAmount(ctx context.Context, productID int64, amount int) error
	Delete(ctx context.Context, productID int64) error
	PlaceOrder(ctx context.Context) error
}

type productReader interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

type stockReader interface {
	GetByProductID(ctx context.Context, productID int64) (*domain.Stock, error)
}

// Deps selects the route groups: the cart API when Cart is set, the catalog
// API when Products and Stock are set.
type Deps struct {
	Cart        cartView
	Products    productReader
	Stock       stockReader
	Ready       func(context.Context) error
	CORSOrigins []string
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, deps Deps) (*gin.Engine, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	catalogEnabled := deps.Products != nil || deps.Stock != nil
	if catalogEnabled && (deps.Products == nil || deps.Stock == nil) {
		return nil, errors.New("catalog routes need both product and stock readers")
	}
	if deps.Cart == nil && !catalogEnabled {
		return nil, errors.New("no routes configured")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestIDMiddleware(), gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	if len(deps.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     deps.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", requestIDHeader},
			ExposeHeaders:    []string{requestIDHeader},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Ready))

	if deps.Cart != nil {
		registerCartRoutes(router, deps.Cart, logger)
	}
	if catalogEnabled {
		registerCatalogRoutes(router, deps.Products, deps.Stock, logger)
	}

	return router, nil
}
