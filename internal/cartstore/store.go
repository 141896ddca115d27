// Package cartstore owns the shopping cart: the ordered line items, the stock
// rules every quantity change is checked against, and the snapshot mirrored
// to the persistence store after each successful mutation.
package cartstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"rocketshoes-cart/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Catalog is the subset of the Catalog Service the store needs.
type Catalog interface {
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	GetStock(ctx context.Context, id int64) (*domain.Stock, error)
}

// Persistence is a key-value byte store.
type Persistence interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
}

// Store is the cart state container. Mutations are serialized; readers get
// copies and never observe a half-applied change.
type Store struct {
	catalog Catalog
	persist Persistence
	key     string
	logger  *log.Logger

	// opMu is held for a whole mutation, network calls included.
	opMu sync.Mutex

	mu        sync.RWMutex
	cart      domain.Cart
	listeners map[int]func(domain.Cart)
	nextID    int
}

// New loads the cart saved under key and returns a Store that owns it. A
// missing or unreadable snapshot yields an empty cart.
func New(ctx context.Context, catalog Catalog, persist Persistence, key string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Store{
		catalog:   catalog,
		persist:   persist,
		key:       key,
		logger:    logger,
		cart:      domain.Cart{},
		listeners: make(map[int]func(domain.Cart)),
	}

	blob, err := persist.Load(ctx, key)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		logger.Printf("cart store: no snapshot under key=%s, starting empty", key)
	case err != nil:
		logger.Printf("cart store: load key=%s error=%v, starting empty", key, err)
	default:
		cart, err := Decode(blob)
		if err != nil {
			logger.Printf("cart store: discard snapshot key=%s error=%v", key, err)
		} else {
			s.cart = cart
			logger.Printf("cart store: loaded key=%s items=%d", key, len(cart))
		}
	}
	return s
}

// Cart returns a copy of the current cart.
func (s *Store) Cart() domain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.Clone()
}

// Subscribe registers fn to be called with the new cart after every committed
// mutation. The returned func removes the listener.
func (s *Store) Subscribe(fn func(domain.Cart)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// AddProduct puts one unit of productID in the cart. A product already in the
// cart has its amount raised by one instead, subject to the same stock check.
func (s *Store) AddProduct(ctx context.Context, productID int64) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	var (
		product *domain.Product
		stock   *domain.Stock
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.catalog.GetProduct(gctx, productID)
		product = p
		return err
	})
	g.Go(func() error {
		st, err := s.catalog.GetStock(gctx, productID)
		stock = st
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Printf("cart store: add product_id=%d lookup error=%v", productID, err)
		return fmt.Errorf("%w: %w", domain.ErrAdd, err)
	}

	current := s.Cart()
	if idx := current.Find(productID); idx >= 0 {
		if err := s.updateAmount(ctx, current, productID, current[idx].Amount+1); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrAdd, err)
		}
		return nil
	}

	if stock.Amount < 1 {
		s.logger.Printf("cart store: add product_id=%d out of stock", productID)
		return fmt.Errorf("%w: %w", domain.ErrAdd, domain.ErrOutOfStock)
	}

	next := append(current, domain.NewLineItem(*product, 1))
	if err := s.commit(ctx, next); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrAdd, err)
	}
	s.logger.Printf("cart store: added product_id=%d", productID)
	return nil
}

// RemoveProduct drops productID from the cart.
func (s *Store) RemoveProduct(ctx context.Context, productID int64) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	current := s.Cart()
	idx := current.Find(productID)
	if idx < 0 {
		return fmt.Errorf("%w: product %d: %w", domain.ErrRemoval, productID, domain.ErrNotFound)
	}

	next := make(domain.Cart, 0, len(current)-1)
	next = append(next, current[:idx]...)
	next = append(next, current[idx+1:]...)
	if err := s.commit(ctx, next); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrRemoval, err)
	}
	s.logger.Printf("cart store: removed product_id=%d", productID)
	return nil
}

// UpdateProductAmount sets the amount of a product already in the cart. An
// amount of zero or less is ignored without touching state or storage.
func (s *Store) UpdateProductAmount(ctx context.Context, productID int64, amount int) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	return s.updateAmount(ctx, s.Cart(), productID, amount)
}

// updateAmount expects opMu to be held.
func (s *Store) updateAmount(ctx context.Context, current domain.Cart, productID int64, amount int) error {
	idx := current.Find(productID)
	if idx < 0 {
		return fmt.Errorf("%w: product %d: %w", domain.ErrAmend, productID, domain.ErrNotFound)
	}
	if amount <= 0 {
		return nil
	}

	stock, err := s.catalog.GetStock(ctx, productID)
	if err != nil {
		s.logger.Printf("cart store: stock lookup product_id=%d error=%v", productID, err)
		return fmt.Errorf("%w: %w", domain.ErrAmend, err)
	}
	if stock.Amount < amount {
		s.logger.Printf("cart store: product_id=%d requested=%d stock=%d", productID, amount, stock.Amount)
		return fmt.Errorf("%w: %w", domain.ErrAmend, domain.ErrOutOfStock)
	}

	current[idx].Amount = amount
	if err := s.commit(ctx, current); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrAmend, err)
	}
	s.logger.Printf("cart store: product_id=%d amount=%d", productID, amount)
	return nil
}

// commit writes next to storage and, only if that succeeds, makes it the
// current cart and notifies listeners.
func (s *Store) commit(ctx context.Context, next domain.Cart) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	blob, err := Encode(next)
	if err != nil {
		return err
	}
	if err := s.persist.Save(ctx, s.key, blob); err != nil {
		s.logger.Printf("cart store: save key=%s error=%v", s.key, err)
		return fmt.Errorf("save cart: %w", err)
	}

	s.mu.Lock()
	s.cart = next
	listeners := make([]func(domain.Cart), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(next.Clone())
	}
	return nil
}
