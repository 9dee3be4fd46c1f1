package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type SnapshotItem struct {
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	Size      string          `json:"size"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// OrderSnapshot is the immutable-at-capture copy of the cart taken when
// checkout starts. Both payment paths read from it so the persisted
// order matches what the buyer reviewed even if the live cart changes.
type OrderSnapshot struct {
	Reference  string          `json:"reference"`
	Items      []SnapshotItem  `json:"items"`
	GrandTotal decimal.Decimal `json:"grand_total"`
	Address    *Address        `json:"address,omitempty"`
	PlacedAt   time.Time       `json:"placed_at"`
}
