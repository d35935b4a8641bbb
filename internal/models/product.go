// internal/models/product.go
package models

import (
	"github.com/lib/pq"
)

type Product struct {
	BaseModel
	Name          string         `json:"name" gorm:"size:255;not null"`
	Price         float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	OriginalPrice *float64       `json:"original_price,omitempty" gorm:"type:decimal(10,2)"`
	Image         string         `json:"image" gorm:"size:512"`
	Category      string         `json:"category" gorm:"size:100;index"`
	Brand         string         `json:"brand" gorm:"size:100;index"`
	Description   string         `json:"description" gorm:"type:text"`
	Features      pq.StringArray `json:"features" gorm:"type:text[]"`
	Compatibility pq.StringArray `json:"compatibility" gorm:"type:text[]"`
	Stock         StockStatus    `json:"stock" gorm:"type:varchar(20);default:'in-stock';index"`
	StockQuantity int            `json:"stock_quantity" gorm:"default:0"`
	Weight        float64        `json:"weight" gorm:"type:decimal(8,3)"`
	ProductNumber string         `json:"product_number" gorm:"uniqueIndex;size:64;not null"`
	ShippingDate  string         `json:"shipping_date" gorm:"size:100"`
	Rating        *float64       `json:"rating,omitempty" gorm:"type:decimal(3,2)"`
	ReviewCount   *int           `json:"review_count,omitempty"`
	Specifications StringMap     `json:"specifications" gorm:"type:jsonb"`
}

// InStock reports whether at least one unit can be added to a cart.
func (p *Product) InStock() bool {
	return p.Stock != StockOutOfStock && p.StockQuantity > 0
}
