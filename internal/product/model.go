package product

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int             `json:"id"`
	MID         int             `json:"mid"`
	Merchant    string          `json:"merchant"`
	ProductCode string          `json:"product"`
	ProductName string          `json:"productName"`
	Category    string          `json:"category"`
	BasePrice   decimal.Decimal `json:"basePrice"`
	BaseCost    decimal.Decimal `json:"baseCost"`
	CreatedAt   time.Time       `json:"createdAt"`
}
