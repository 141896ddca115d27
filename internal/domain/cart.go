package domain

// LineItem is one product in the cart together with its quantity.
type LineItem struct {
	ID     int64   `json:"id"`
	Title  string  `json:"title"`
	Price  float64 `json:"price"`
	Image  string  `json:"image"`
	Amount int     `json:"amount"`
}

// Cart is the ordered list of line items. Ids are unique within a cart.
type Cart []LineItem

// Find returns the index of the line item with the given product id, or -1.
func (c Cart) Find(productID int64) int {
	for i, item := range c {
		if item.ID == productID {
			return i
		}
	}
	return -1
}

// Clone returns a copy that shares no backing array with c.
func (c Cart) Clone() Cart {
	out := make(Cart, len(c))
	copy(out, c)
	return out
}

// NewLineItem builds a line item for p with the given amount.
func NewLineItem(p Product, amount int) LineItem {
	return LineItem{
		ID:     p.ID,
		Title:  p.Title,
		Price:  p.Price,
		Image:  p.Image,
		Amount: amount,
	}
}
