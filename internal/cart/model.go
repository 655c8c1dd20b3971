package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is one sku's line in a cart. UnitPrice and ProductName are fixed
// by the first add for that sku; later adds only raise the quantity.
type Item struct {
	SKU         string          `json:"sku"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// LineSubtotal is UnitPrice * Quantity.
func (it Item) LineSubtotal() decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// Cart holds a shopper's line items in insertion order. Items are keyed
// by sku; uniqueness is kept by merging on add rather than rejecting.
// A cart with zero items is still a valid cart.
type Cart struct {
	ID    string `json:"cartId"`
	Items []Item `json:"items"`
}

// New returns an empty cart with a fresh random id.
func New() *Cart {
	return &Cart{ID: uuid.NewString()}
}

// NewWithID returns an empty cart using the supplied id verbatim. Used
// for restoration flows; the store enforces key uniqueness at insert.
func NewWithID(id string) *Cart {
	return &Cart{ID: id}
}

// AddItem merges quantity into an existing line with the same sku, or
// appends a new line. Name and price of an existing line are left as the
// first add set them. Quantity and price are not validated here; the
// boundary layer is expected to do that.
func (c *Cart) AddItem(sku, productName string, quantity int, unitPrice decimal.Decimal) {
	for i := range c.Items {
		if c.Items[i].SKU == sku {
			c.Items[i].Quantity += quantity
			return
		}
	}
	c.Items = append(c.Items, Item{
		SKU:         sku,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	})
}

// RemoveItem deletes the line with the given sku. Returns false if the
// sku is not in the cart; that is a normal outcome, not an error.
func (c *Cart) RemoveItem(sku string) bool {
	for i := range c.Items {
		if c.Items[i].SKU == sku {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateQuantity sets the quantity for a sku. A quantity of zero or less
// removes the line instead and reports whether a line was removed.
func (c *Cart) UpdateQuantity(sku string, newQuantity int) bool {
	if newQuantity <= 0 {
		return c.RemoveItem(sku)
	}
	for i := range c.Items {
		if c.Items[i].SKU == sku {
			c.Items[i].Quantity = newQuantity
			return true
		}
	}
	return false
}

// GetItem returns the line for a sku, or false if absent.
func (c *Cart) GetItem(sku string) (Item, bool) {
	for _, it := range c.Items {
		if it.SKU == sku {
			return it, true
		}
	}
	return Item{}, false
}

// Subtotal is the exact decimal sum of all line subtotals. Recomputed on
// every call; an empty cart yields decimal zero.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.LineSubtotal())
	}
	return total
}

// ItemCount is the sum of quantities across all lines.
func (c *Cart) ItemCount() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// Clear drops all lines. The cart keeps its id and stays in the store.
func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Clone returns an independent copy. Item values are copied wholesale;
// decimal.Decimal is immutable so sharing its internals is fine.
func (c *Cart) Clone() *Cart {
	cp := &Cart{ID: c.ID}
	if len(c.Items) > 0 {
		cp.Items = make([]Item, len(c.Items))
		copy(cp.Items, c.Items)
	}
	return cp
}
