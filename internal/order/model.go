package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID         int             `json:"id"`
	MID        int             `json:"mid"`
	OrderID    string          `json:"orderid"`
	CustomerID int             `json:"customer"`
	Total      decimal.Decimal `json:"orderTotal"`
	// CartID points back at the ephemeral cart this order was checked
	// out from, when there was one.
	CartID    string    `json:"cartId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
