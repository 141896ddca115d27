// Package cartview derives what the cart page shows from the cart store and
// turns the page's button presses into store operations.
package cartview

import (
	"context"
	"fmt"

	"rocketshoes-cart/internal/domain"
	"github.com/shopspring/decimal"
)

// CartSource is the cart store as seen by the view.
type CartSource interface {
	Cart() domain.Cart
	Subscribe(fn func(domain.Cart)) func()
	AddProduct(ctx context.Context, productID int64) error
	RemoveProduct(ctx context.Context, productID int64) error
	UpdateProductAmount(ctx context.Context, productID int64, amount int) error
}

// Row is one rendered line of the cart table.
type Row struct {
	domain.LineItem
	PriceFormatted string          `json:"priceFormatted"`
	SubTotal       string          `json:"subTotal"`
	SubTotalValue  decimal.Decimal `json:"-"`
	CanDecrement   bool            `json:"canDecrement"`
}

// Page is the rendered cart.
type Page struct {
	Rows       []Row           `json:"products"`
	Total      string          `json:"total"`
	TotalValue decimal.Decimal `json:"-"`
	// Size counts distinct products, as the header badge shows it.
	Size int `json:"cartSize"`
}

// View renders the cart held by a CartSource. It keeps no cart data itself.
type View struct {
	source   CartSource
	format   *Formatter
	notifier Notifier
}

func New(source CartSource, format *Formatter, notifier Notifier) *View {
	if notifier == nil {
		notifier = NewLogNotifier(nil)
	}
	return &View{source: source, format: format, notifier: notifier}
}

// Render derives the page from the current cart.
func (v *View) Render() Page {
	return v.render(v.source.Cart())
}

// Watch calls fn with a freshly rendered page after every cart change.
func (v *View) Watch(fn func(Page)) func() {
	return v.source.Subscribe(func(c domain.Cart) {
		fn(v.render(c))
	})
}

func (v *View) render(cart domain.Cart) Page {
	rows := make([]Row, 0, len(cart))
	total := decimal.Zero
	for _, item := range cart {
		price := decimal.NewFromFloat(item.Price)
		sub := price.Mul(decimal.NewFromInt(int64(item.Amount)))
		total = total.Add(sub)
		rows = append(rows, Row{
			LineItem:       item,
			PriceFormatted: v.format.Format(price),
			SubTotal:       v.format.Format(sub),
			SubTotalValue:  sub,
			CanDecrement:   item.Amount > 1,
		})
	}
	return Page{
		Rows:       rows,
		Total:      v.format.Format(total),
		TotalValue: total,
		Size:       len(cart),
	}
}

// Add puts a product in the cart from the product listing.
func (v *View) Add(ctx context.Context, productID int64) error {
	return v.report(v.source.AddProduct(ctx, productID))
}

// Increment asks for one more unit of a product in the cart.
func (v *View) Increment(ctx context.Context, productID int64) error {
	item, err := v.lookup(productID)
	if err != nil {
		return v.report(err)
	}
	return v.report(v.source.UpdateProductAmount(ctx, productID, item.Amount+1))
}

// Decrement asks for one unit less. It is disabled at amount 1, so it never
// removes a product.
func (v *View) Decrement(ctx context.Context, productID int64) error {
	item, err := v.lookup(productID)
	if err != nil {
		return v.report(err)
	}
	if item.Amount <= 1 {
		return nil
	}
	return v.report(v.source.UpdateProductAmount(ctx, productID, item.Amount-1))
}

// SetAmount sets an explicit amount.
func (v *View) SetAmount(ctx context.Context, productID int64, amount int) error {
	return v.report(v.source.UpdateProductAmount(ctx, productID, amount))
}

// Delete removes a product from the cart.
func (v *View) Delete(ctx context.Context, productID int64) error {
	return v.report(v.source.RemoveProduct(ctx, productID))
}

// PlaceOrder is the "finish order" button. There is no checkout behind it.
func (v *View) PlaceOrder(context.Context) error {
	return nil
}

func (v *View) lookup(productID int64) (domain.LineItem, error) {
	cart := v.source.Cart()
	idx := cart.Find(productID)
	if idx < 0 {
		return domain.LineItem{}, fmt.Errorf("%w: product %d: %w", domain.ErrAmend, productID, domain.ErrNotFound)
	}
	return cart[idx], nil
}

func (v *View) report(err error) error {
	if err != nil {
		v.notifier.Notify(Notification{Level: LevelError, Message: domain.Message(err)})
	}
	return err
}
