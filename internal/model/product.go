package model

import "errors"

// ErrStockMismatch is returned whenever a stock write would break the
// total_quantity == party_stock + yard_stock identity.
var ErrStockMismatch = errors.New("total_quantity must equal party_stock + yard_stock")

// Product is a rentable inventory item. TotalQuantity is always the sum of
// the party-held and yard-held splits.
type Product struct {
	BaseModel
	SerialNumber  string  `gorm:"type:varchar(50);uniqueIndex;not null" json:"serial_number" validate:"required"`
	ItemName      string  `gorm:"type:varchar(255);not null" json:"item_name" validate:"required"`
	RatePerMonth  float64 `gorm:"not null;default:0" json:"rate_per_month" validate:"gte=0"`
	TotalQuantity int     `gorm:"not null;default:0" json:"total_quantity" validate:"gte=0"`
	PartyStock    int     `gorm:"not null;default:0" json:"party_stock" validate:"gte=0"`
	YardStock     int     `gorm:"not null;default:0" json:"yard_stock" validate:"gte=0"`

	Transactions []Transaction `json:"transactions,omitempty"`
}

func (Product) TableName() string {
	return "products"
}

// CheckStock verifies the stock identity.
func (p *Product) CheckStock() error {
	if p.TotalQuantity != p.PartyStock+p.YardStock {
		return ErrStockMismatch
	}
	return nil
}
